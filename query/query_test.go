package query_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"lazyq/lists"
	"lazyq/logger"
	"lazyq/query"
)

func countingSource(pulled *int, vals ...int) func() iter.Seq[int] {
	return func() iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, v := range vals {
				*pulled++
				if !yield(v) {
					return
				}
			}
		}
	}
}

func TestFrom(t *testing.T) {
	want := []int{1, 2, 3}

	t.Run("Slice", func(t *testing.T) {
		q, err := query.From[int]([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
		assert.True(t, q.Seekable())
	})

	t.Run("Seq", func(t *testing.T) {
		q, err := query.From[int](slices.Values([]int{1, 2, 3}))
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
		assert.False(t, q.Seekable())
	})

	t.Run("BareFunc", func(t *testing.T) {
		src := func(yield func(int) bool) {
			for _, v := range []int{1, 2, 3} {
				if !yield(v) {
					return
				}
			}
		}
		q, err := query.From[int](src)
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
	})

	t.Run("Producer", func(t *testing.T) {
		q, err := query.From[int](func() iter.Seq[int] {
			return slices.Values([]int{1, 2, 3})
		})
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
		// producers replay: a second pass sees the same elements
		assert.Equal(t, want, q.ToArray())
	})

	t.Run("Channel", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)
		q, err := query.From[int](ch)
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
	})

	t.Run("List", func(t *testing.T) {
		q, err := query.From[int](lists.List[int](lists.NewArrayListOf(1, 2, 3)))
		require.NoError(t, err)
		assert.Equal(t, want, q.ToArray())
		assert.True(t, q.Seekable())
	})

	t.Run("QueryIsIdempotent", func(t *testing.T) {
		inner := query.FromSlice([]int{1, 2, 3})
		q, err := query.From[int](inner)
		require.NoError(t, err)
		assert.Same(t, inner, q)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := query.From[int](42)
		require.ErrorIs(t, err, query.ErrInvalidSource)

		_, err = query.From[int](nil)
		require.ErrorIs(t, err, query.ErrInvalidSource)

		// a slice of the wrong element type is not a []int source
		_, err = query.From[int]([]string{"a"})
		require.ErrorIs(t, err, query.ErrInvalidSource)
	})

	t.Run("ConstructionDoesNotIterate", func(t *testing.T) {
		pulled := 0
		_, err := query.From[int](countingSource(&pulled, 1, 2, 3))
		require.NoError(t, err)
		assert.Zero(t, pulled)
	})
}

func TestFromString(t *testing.T) {
	q := query.FromString("abc")
	assert.True(t, q.Seekable())

	n, err := q.Length()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	b, err := q.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, byte('b'), b)

	assert.Equal(t, []byte{'a', 'b', 'c'}, q.ToArray())
}

func TestFactories(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		q := query.Empty[string]()
		assert.Zero(t, q.Count())
		assert.True(t, q.Seekable())

		_, ok := q.FirstOrDefault()
		assert.False(t, ok)
	})

	t.Run("Range", func(t *testing.T) {
		q := query.Range(5, 3)
		assert.Equal(t, []int{5, 6, 7}, q.ToArray())
		assert.True(t, q.Seekable())

		// element access is computed, no iteration involved
		v, err := q.ElementAt(2)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		assert.Empty(t, query.Range(0, -1).ToArray())
	})

	t.Run("Repeat", func(t *testing.T) {
		q := query.Repeat("x", 3)
		assert.Equal(t, []string{"x", "x", "x"}, q.ToArray())
		assert.True(t, q.Seekable())

		v, err := q.ElementAt(2)
		require.NoError(t, err)
		assert.Equal(t, "x", v)

		assert.Zero(t, query.Repeat("x", -1).Count())
	})
}

func TestLengthVersusCount(t *testing.T) {
	t.Run("SeekableLength", func(t *testing.T) {
		q := query.FromSlice([]int{1, 2, 3})
		n, err := q.Length()
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("NonSeekableLengthRefuses", func(t *testing.T) {
		pulled := 0
		q := query.FromFunc(countingSource(&pulled, 1, 2, 3))

		_, err := q.Length()
		require.ErrorIs(t, err, query.ErrNotSeekable)
		assert.Zero(t, pulled, "Length must not fall back to scanning")

		// Count is the explicit opt-in to the scan
		assert.Equal(t, 3, q.Count())
		assert.Equal(t, 3, pulled)
	})

	t.Run("ScanStrategyIsCachedResultIsNot", func(t *testing.T) {
		data := []int{1, 2}
		q := query.FromFunc(func() iter.Seq[int] {
			return slices.Values(data)
		})
		assert.Equal(t, 2, q.Count())

		// the strategy re-scans, so it observes source growth
		data = append(data, 3)
		assert.Equal(t, 3, q.Count())
	})
}

func TestSingleUseChannel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)

	q := query.FromChannel(ch).WithLogger(&logger.ZapLogger{Logger: zap.New(core)})
	assert.False(t, q.Seekable())
	assert.Equal(t, []int{1, 2}, q.ToArray())

	// drained: the second pass yields nothing, and the logger says why
	assert.Empty(t, q.ToArray())
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "single-use")
}

func TestMaterialize(t *testing.T) {
	pulled := 0
	q := query.FromFunc(countingSource(&pulled, 3, 1, 2)).Materialize()

	assert.True(t, q.Seekable())
	assert.Equal(t, 3, pulled, "exactly one full pass to snapshot")

	n, err := q.Length()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v, err := q.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, pulled, "no further pulls after the snapshot")
}

func TestToList(t *testing.T) {
	l := query.Range(1, 3).ToList()
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, 3, l.Size())

	// a list round-trips into a seekable query
	q := query.FromList[int](l)
	assert.True(t, q.Seekable())
	v, err := q.ElementAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestFromListLinked(t *testing.T) {
	q := query.FromList[int](lists.NewLinkedListOf(1, 2, 3))

	// cheap length, but Get scans: count is closed-form, seek is not claimed
	assert.False(t, q.Seekable())
	_, err := q.Length()
	require.ErrorIs(t, err, query.ErrNotSeekable)
	assert.Equal(t, 3, q.Count())

	v, err := q.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestToArrayCountProperty(t *testing.T) {
	queries := map[string]*query.Query[int]{
		"slice":    query.FromSlice([]int{1, 2, 3, 4}),
		"range":    query.Range(0, 10),
		"filtered": query.Range(0, 10).Where(func(v int) bool { return v%2 == 0 }),
		"empty":    query.Empty[int](),
	}
	for name, q := range queries {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, len(q.ToArray()), q.Count())
		})
	}
}
