package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-guarded-collections/collections"
	"github.com/hasbyte1/go-guarded-collections/guard"
)

func ptr[T any](v T) *T { return &v }

func TestNonNullableCollection(t *testing.T) {
	inner := collections.NewList[*int]()
	c, err := guard.AsNonNullable[*int](inner)
	require.NoError(t, err)

	one := ptr(1)
	require.NoError(t, c.Add(one))
	assert.ErrorIs(t, c.Add(nil), guard.ErrNilArgument)

	_, err = c.Contains(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = c.Remove(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	assert.ErrorIs(t, c.CopyTo(nil, 0), guard.ErrNilArgument)

	ok, err := c.Contains(one)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, inner.Count())
}

func TestNonNullableLeavesExistingNils(t *testing.T) {
	items := []*int{nil, ptr(1)}
	l, err := guard.AsNonNullableList[*int](collections.Wrap(&items))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Count())

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNonNullableList(t *testing.T) {
	items := []*string{}
	l, err := guard.AsNonNullableList[*string](collections.Wrap(&items))
	require.NoError(t, err)

	a := ptr("a")
	require.NoError(t, l.Add(a))
	assert.ErrorIs(t, l.Insert(0, nil), guard.ErrNilArgument)
	assert.ErrorIs(t, l.Set(0, nil), guard.ErrNilArgument)
	_, err = l.IndexOf(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)

	i, err := l.IndexOf(a)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, []*string{a}, items)
}

func TestNonNullableValueTypesPass(t *testing.T) {
	l, err := guard.AsNonNullableList[int](collections.NewList[int]())
	require.NoError(t, err)
	require.NoError(t, l.Add(0))
	assert.Equal(t, []int{0}, l.All())
}

func TestNonNullableThroughUntypedAdapter(t *testing.T) {
	l, err := guard.AsNonNullableList[*int](collections.NewList[*int]())
	require.NoError(t, err)
	u := collections.UntypedList[*int](l)
	assert.ErrorIs(t, u.Add(nil), guard.ErrNilArgument)
	assert.Equal(t, 0, l.Count())
}

func TestNonNullableDictionary(t *testing.T) {
	inner := collections.NewOrderedDict[*string, *int]()
	d, err := guard.AsNonNullableDictionary[*string, *int](inner)
	require.NoError(t, err)

	k, v := ptr("k"), ptr(1)
	require.NoError(t, d.Add(k, v))
	assert.ErrorIs(t, d.Add(nil, v), guard.ErrNilArgument)
	assert.ErrorIs(t, d.Add(ptr("x"), nil), guard.ErrNilArgument)
	assert.ErrorIs(t, d.Set(k, nil), guard.ErrNilArgument)

	_, err = d.Get(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, _, err = d.TryGetValue(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = d.Remove(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = d.ContainsKey(nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = d.Contains(collections.Entry[*string, *int]{Key: k})
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	assert.ErrorIs(t, d.CopyTo(nil, 0), guard.ErrNilArgument)

	got, err := d.Get(k)
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, 1, inner.Count())
}
