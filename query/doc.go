/*
Package query is a lazy, composable sequence-query layer over iter.Seq.

A [Query] wraps a source (slice, sequence, producer function, channel, or a
lists.List) and exposes deferred operations: [Query.Where], [Select],
[Query.Take], [Query.Skip], [Query.Concat], [Query.Splice], [Distinct] and
friends compose without pulling a single element. Only terminal calls
([Query.Count], [Query.ElementAt], [Query.ToArray], the aggregates) run the
chain, one element at a time, and stopping early stops the whole chain.

# Seekability

The interesting part is not any one operation but what each one preserves.
A query over a slice knows its length and can answer ElementAt in O(1); it is
"seekable". Filtering it destroys both properties, while Take/Skip/Select
keep them, and Concat keeps them only when both operands have them. Each
operation records these rules as capability hooks on the query it returns,
and the hooks are resolved lazily, at most once per query.

The API splits accessors along that line. [Query.Count] always works,
scanning when it must; [Query.Length] refuses with [ErrNotSeekable] rather
than hide an O(n) scan behind a property read. Likewise [Query.ElementAt]
answers on any query but is only O(1) on a seekable one; check
[Query.Seekable] when the access pattern matters.

	evens := query.Range(0, 1000).Where(func(v int) bool { return v%2 == 0 })
	evens.Count()            // 500, by scanning; Length would fail
	first3 := query.Range(0, 1000).Take(3)
	first3.Length()          // 3, closed form, no iteration

# Repeatability

Iterating a query twice replays it from its source, except for single-use
sources (channels), which yield only what is left. That is deliberate and
documented behavior, not corrected; attach a logger via [Query.WithLogger]
to have the reuse flagged, or pin a snapshot with [Query.Materialize].

Evaluation is synchronous, single-threaded and pull-based. Queries are not
safe for concurrent use.
*/
package query
