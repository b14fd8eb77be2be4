package itlist_test

import (
	"errors"
	"testing"

	"github.com/kchristidis/itlist/itlist"
	"github.com/stretchr/testify/require"
)

func TestListIterator(t *testing.T) {
	t.Run("remove after next", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(1)
		require.NoError(t, err)

		v, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, 2, v)

		require.NoError(t, it.Remove())
		require.Equal(t, 1, it.NextIndex())

		v, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, 3, v)

		require.Equal(t, []int{1, 3}, l.ToArray())
	})

	t.Run("remove after previous", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(l.Len())
		require.NoError(t, err)
		require.False(t, it.HasNext())

		v, err := it.Previous()
		require.NoError(t, err)
		require.Equal(t, 3, v)
		v, err = it.Previous()
		require.NoError(t, err)
		require.Equal(t, 2, v)
		require.Equal(t, 1, it.NextIndex())

		require.NoError(t, it.Remove())
		require.Equal(t, 1, it.NextIndex())

		v, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, 3, v)

		v, err = it.Previous()
		require.NoError(t, err)
		require.Equal(t, 3, v)
		v, err = it.Previous()
		require.NoError(t, err)
		require.Equal(t, 1, v)
		require.Equal(t, -1, it.PreviousIndex())

		require.Equal(t, []int{1, 3}, l.ToArray())
	})

	t.Run("remove after next moves the index back", func(t *testing.T) {
		l := itlist.From("a", "b", "c")
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		_, err = it.Next()
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, 2, it.NextIndex())

		require.NoError(t, it.Remove())
		require.Equal(t, 1, it.NextIndex())
		require.Equal(t, []string{"a", "c"}, l.ToArray())
	})

	t.Run("remove the only element", func(t *testing.T) {
		l := itlist.From(1)
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())

		require.Equal(t, 0, it.NextIndex())
		require.False(t, it.HasNext())
		require.False(t, it.HasPrevious())
		require.True(t, l.IsEmpty())

		require.NoError(t, it.Add(2))
		require.Equal(t, []int{2}, l.ToArray())
	})

	t.Run("set", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		require.True(t, errors.Is(it.Set(9), itlist.ErrIllegalState))

		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Set(9))
		require.NoError(t, it.Set(8))

		_, err = it.Next()
		require.NoError(t, err)
		_, err = it.Previous()
		require.NoError(t, err)
		require.NoError(t, it.Set(7))

		require.Equal(t, []int{8, 7, 3}, l.ToArray())
	})

	t.Run("illegal state", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		require.True(t, errors.Is(it.Remove(), itlist.ErrIllegalState))

		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		require.True(t, errors.Is(it.Remove(), itlist.ErrIllegalState))
		require.True(t, errors.Is(it.Set(1), itlist.ErrIllegalState))

		require.NoError(t, it.Add(5))
		require.True(t, errors.Is(it.Remove(), itlist.ErrIllegalState))
		require.Equal(t, []int{5, 2, 3}, l.ToArray())
	})

	t.Run("add", func(t *testing.T) {
		l := itlist.From(1, 3)
		it, err := l.ListIterator(1)
		require.NoError(t, err)

		require.NoError(t, it.Add(2))
		require.Equal(t, 2, it.NextIndex())

		v, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, 3, v)

		require.NoError(t, it.Add(4))
		require.False(t, it.HasNext())

		v, err = it.Previous()
		require.NoError(t, err)
		require.Equal(t, 4, v)

		require.Equal(t, []int{1, 2, 3, 4}, l.ToArray())
		requireConsistent(t, l)
	})

	t.Run("add to an empty list", func(t *testing.T) {
		l := itlist.New[string]()
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		require.NoError(t, it.Add("a"))
		require.NoError(t, it.Add("b"))
		require.Equal(t, []string{"a", "b"}, l.ToArray())
	})

	t.Run("exhausted", func(t *testing.T) {
		l := itlist.From(1)
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		_, err = it.Previous()
		require.True(t, errors.Is(err, itlist.ErrNoSuchElement))

		_, err = it.Next()
		require.NoError(t, err)
		_, err = it.Next()
		require.True(t, errors.Is(err, itlist.ErrNoSuchElement))
	})

	t.Run("out of range", func(t *testing.T) {
		l := itlist.From(1, 2)
		_, err := l.ListIterator(3)
		require.True(t, errors.Is(err, itlist.ErrIndexOutOfRange))
		_, err = l.ListIterator(-1)
		require.True(t, errors.Is(err, itlist.ErrIndexOutOfRange))
	})

	t.Run("stale after an outside change", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(0)
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)

		l.Append(4)

		_, err = it.Next()
		require.True(t, errors.Is(err, itlist.ErrStaleIterator))
		require.True(t, errors.Is(it.Remove(), itlist.ErrStaleIterator))
		require.True(t, errors.Is(it.Add(0), itlist.ErrStaleIterator))
		require.Equal(t, []int{1, 2, 3, 4}, l.ToArray())
	})

	t.Run("set by index does not make it stale", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		it, err := l.ListIterator(0)
		require.NoError(t, err)

		_, err = l.Set(1, 9)
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		v, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, 9, v)
	})

	t.Run("removal repairs the embedded cursor", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		require.NoError(t, l.MoveToIndex(1))

		it, err := l.ListIterator(1)
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())

		v, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, 3, v)
	})
}
