package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-guarded-collections/collections"
)

func TestUntypedCollection(t *testing.T) {
	u := collections.Untyped[string](collections.NewList("a"))

	require.NoError(t, u.Add("b"))
	assert.ErrorIs(t, u.Add(42), collections.ErrInvalidArgument)
	assert.ErrorIs(t, u.Add(nil), collections.ErrInvalidArgument, "string cannot hold nil")
	assert.Equal(t, []any{"a", "b"}, u.Items())

	ok, err := u.Contains("b")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = u.Contains(1.5)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	ok, err = u.Remove("a")
	require.NoError(t, err)
	assert.True(t, ok)

	dst := make([]any, 1)
	require.NoError(t, u.CopyTo(dst, 0))
	assert.Equal(t, []any{"b"}, dst)

	require.NoError(t, u.Clear())
	assert.Equal(t, 0, u.Count())
}

func TestUntypedNilForNillableTypes(t *testing.T) {
	l := collections.NewList[*int]()
	u := collections.Untyped[*int](l)
	require.NoError(t, u.Add(nil))
	assert.Equal(t, 1, l.Count())
}

func TestUntypedList(t *testing.T) {
	l := collections.NewList(1, 2)
	u := collections.UntypedList[int](l)

	require.NoError(t, u.Insert(0, 0))
	require.NoError(t, u.Set(2, 20))
	assert.ErrorIs(t, u.Set(0, "x"), collections.ErrInvalidArgument)
	assert.Equal(t, []int{0, 1, 20}, l.All())

	v, err := u.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = u.Get(5)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)

	i, err := u.IndexOf(1)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = u.IndexOf("1")
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.Equal(t, -1, i)

	require.NoError(t, u.RemoveAt(0))
	assert.False(t, u.IsFixedSize())
	assert.Equal(t, []int{1, 20}, l.All())
}

func TestUntypedAcceptsInterfaceElements(t *testing.T) {
	type stringer interface{ String() string }
	l := collections.NewList[stringer]()
	u := collections.Untyped[stringer](l)

	require.NoError(t, u.Add(collections.Entry[string, int]{Key: "a", Value: 1}))
	assert.ErrorIs(t, u.Add(3), collections.ErrInvalidArgument)
	assert.Equal(t, 1, l.Count())
}

func TestUntypedDictionary(t *testing.T) {
	d := collections.NewOrderedDict[string, int]()
	u := collections.UntypedDictionary[string, int](d)

	require.NoError(t, u.AddEntry("a", 1))
	require.NoError(t, u.Set("b", 2))
	require.NoError(t, u.Add(entry{"c", 3}))
	assert.ErrorIs(t, u.AddEntry(1, 1), collections.ErrInvalidArgument)
	assert.ErrorIs(t, u.AddEntry("d", "4"), collections.ErrInvalidArgument)
	assert.ErrorIs(t, u.Add("c"), collections.ErrInvalidArgument)

	assert.Equal(t, []any{"a", "b", "c"}, u.Keys())
	assert.Equal(t, []any{1, 2, 3}, u.Values())
	assert.Equal(t, []any{entry{"a", 1}, entry{"b", 2}, entry{"c", 3}}, u.Items())

	v, err := u.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	ok, err := u.Contains(entry{"a", 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.Remove(entry{"a", 99})
	require.NoError(t, err)
	assert.False(t, ok, "value mismatch leaves the entry")

	ok, err = u.Remove(entry{"a", 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.RemoveKey("b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.ContainsKey("c")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, u.Clear())
	assert.Equal(t, 0, d.Count())
}
