/*
Package seqs provides combinators for Go 1.23+ iterators (iter.Seq).

It is the low-level layer the query package builds its deferred producers on:

  - **Functional Transformations**: [Map], [Filter], [Reduce], [FlatMap], [Zip], etc.
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile], [Window], [Chunk].
  - **Generation**: [Range], [Repeat], [Empty].
  - **Consumption**: [First], [Last], [At], [Count], [Any], [All].

# Error Handling

Many functions come in "Try" variants (e.g., [TryMap], [TryFilter]) to handle errors gracefully
within the stream. If a predicate or transformer returns an error, it is propagated to the consumer.

# Laziness

Every combinator returns a new sequence without pulling from its input; work happens
only when the result is ranged over, and stopping early stops the whole chain.
*/
package seqs
