package itlist_test

import (
	"errors"
	"testing"

	"github.com/kchristidis/itlist/itlist"
	"github.com/stretchr/testify/require"
)

func TestBulk(t *testing.T) {
	t.Run("add all", func(t *testing.T) {
		l := itlist.From(1)
		require.NoError(t, l.AddAll(itlist.Of(2, 3)))
		require.NoError(t, l.AddAll(itlist.From(4)))
		require.Equal(t, []int{1, 2, 3, 4}, l.ToArray())
	})

	t.Run("add all of itself", func(t *testing.T) {
		l := itlist.From(1, 2)
		require.NoError(t, l.AddAll(l))
		require.Equal(t, []int{1, 2, 1, 2}, l.ToArray())
	})

	t.Run("insert all at", func(t *testing.T) {
		l := itlist.From(1, 4)
		require.NoError(t, l.InsertAllAt(1, itlist.Of(2, 3)))
		require.NoError(t, l.InsertAllAt(0, itlist.Of(0)))
		require.NoError(t, l.InsertAllAt(l.Len(), itlist.Of(5)))
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.ToArray())

		err := l.InsertAllAt(7, itlist.Of(9))
		require.True(t, errors.Is(err, itlist.ErrIndexOutOfRange))
		require.Equal(t, 6, l.Len())
	})

	t.Run("contains all", func(t *testing.T) {
		l := itlist.From("a", "b", "c")

		ok, err := l.ContainsAll(itlist.Of("c", "a"))
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = l.ContainsAll(itlist.Of("a", "z"))
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = l.ContainsAll(itlist.Of[string]())
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("remove value", func(t *testing.T) {
		l := itlist.From(1, 2, 3, 2)
		require.True(t, l.RemoveValue(2))
		require.Equal(t, []int{1, 3, 2}, l.ToArray())
		require.False(t, l.RemoveValue(9))
	})

	t.Run("remove all instances", func(t *testing.T) {
		l := itlist.From(2, 1, 2, 2, 3, 2)
		require.True(t, l.RemoveAllInstances(2))
		require.Equal(t, []int{1, 3}, l.ToArray())
		require.False(t, l.RemoveAllInstances(2))
		requireConsistent(t, l)
	})

	t.Run("remove all", func(t *testing.T) {
		l := itlist.From(1, 2, 3, 4, 5)
		changed, err := l.RemoveAll(itlist.Of(1, 3, 5, 7))
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, []int{2, 4}, l.ToArray())

		changed, err = l.RemoveAll(itlist.Of(9))
		require.NoError(t, err)
		require.False(t, changed)
	})

	t.Run("remove all of itself", func(t *testing.T) {
		l := itlist.From(1, 2, 3)
		changed, err := l.RemoveAll(l)
		require.NoError(t, err)
		require.True(t, changed)
		require.True(t, l.IsEmpty())
	})

	t.Run("retain all", func(t *testing.T) {
		l := itlist.From(1, 2, 3, 4, 5)
		changed, err := l.RetainAll(itlist.Of(2, 4))
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, []int{2, 4}, l.ToArray())

		changed, err = l.RetainAll(l)
		require.NoError(t, err)
		require.False(t, changed)
	})

	t.Run("removal keeps the cursor in place", func(t *testing.T) {
		l := itlist.From(1, 2, 3, 4)
		require.NoError(t, l.MoveToIndex(1))

		_, err := l.RemoveAll(itlist.Of(2, 3))
		require.NoError(t, err)

		v, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, 4, v)
	})

	t.Run("nil collection", func(t *testing.T) {
		l := itlist.From(1, 2)
		var nilList *itlist.List[int]

		require.True(t, errors.Is(l.AddAll(nil), itlist.ErrNilCollection))
		require.True(t, errors.Is(l.AddAll(nilList), itlist.ErrNilCollection))
		require.True(t, errors.Is(l.InsertAllAt(0, nil), itlist.ErrNilCollection))

		_, err := l.ContainsAll(nil)
		require.True(t, errors.Is(err, itlist.ErrNilCollection))
		_, err = l.RemoveAll(nil)
		require.True(t, errors.Is(err, itlist.ErrNilCollection))
		_, err = l.RetainAll(nil)
		require.True(t, errors.Is(err, itlist.ErrNilCollection))

		require.Equal(t, []int{1, 2}, l.ToArray())
	})
}
