package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-guarded-collections/collections"
	"github.com/hasbyte1/go-guarded-collections/guard"
)

func TestUniqueRepairsAndRefusesDuplicates(t *testing.T) {
	items := []string{"test", "test"}
	c, err := guard.AsUnique[string](collections.Wrap(&items))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, []string{"test"}, items)

	err = c.Add("test")
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)
	assert.Equal(t, 1, c.Count())

	require.NoError(t, c.Add("other"))
	ok, err := c.Remove("test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"other"}, items)

	// a removed value may be added again
	require.NoError(t, c.Add("test"))
	assert.Equal(t, []string{"other", "test"}, c.All())
}

func TestUniqueKeepsFirstOccurrence(t *testing.T) {
	items := []int{3, 1, 3, 2, 1, 3}
	l, err := guard.AsUniqueList[int](collections.Wrap(&items))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, items)
	assert.Equal(t, 3, l.ElementsSet().Count())
}

func TestUniqueCollectionRefillsNonListInner(t *testing.T) {
	// a non-nullable collection is a Collection but not a List
	list := collections.NewList("a", "b", "a", "c", "b")
	nn, err := guard.AsNonNullable[string](list)
	require.NoError(t, err)

	u, err := guard.AsUnique[string](nn)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list.All())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, u.ElementsSet().All())
}

func TestUniqueList(t *testing.T) {
	items := []string{"a", "b"}
	l, err := guard.AsUniqueList[string](collections.Wrap(&items))
	require.NoError(t, err)

	assert.ErrorIs(t, l.Insert(0, "b"), guard.ErrInvalidOperation)
	require.NoError(t, l.Insert(0, "z"))

	require.NoError(t, l.Set(1, "a"), "same value in place")
	assert.ErrorIs(t, l.Set(1, "b"), guard.ErrInvalidOperation)
	require.NoError(t, l.Set(1, "c"))
	assert.Equal(t, []string{"z", "c", "b"}, items)

	set := l.ElementsSet()
	assert.False(t, set.Contains("a"))
	assert.True(t, set.Contains("c"))

	require.NoError(t, l.Add("a"), "replaced value is free again")
	require.NoError(t, l.RemoveAt(0))
	assert.False(t, set.Contains("z"))
	require.NoError(t, l.Add("z"))

	assert.ErrorIs(t, l.RemoveAt(10), guard.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Set(10, "q"), guard.ErrIndexOutOfRange)

	require.NoError(t, l.Clear())
	assert.Equal(t, 0, set.Count())
	require.NoError(t, l.Add("c"))
}

func TestUniqueListPreservesOrder(t *testing.T) {
	items := []int{}
	l, err := guard.AsUniqueList[int](collections.Wrap(&items))
	require.NoError(t, err)
	for _, n := range []int{5, 3, 9, 1} {
		require.NoError(t, l.Add(n))
	}
	assert.Equal(t, []int{5, 3, 9, 1}, l.All())
	assert.Equal(t, items, l.All())
}

func TestUniqueReindexAfterExternalMutation(t *testing.T) {
	items := []string{"a"}
	l, err := guard.AsUniqueList[string](collections.Wrap(&items))
	require.NoError(t, err)

	// the owner writes around the decorator
	items = append(items, "a", "b")
	assert.False(t, l.ElementsSet().Contains("b"))

	require.NoError(t, l.Reindex())
	assert.Equal(t, []string{"a", "b"}, items)
	assert.True(t, l.ElementsSet().Contains("b"))
	assert.ErrorIs(t, l.Add("b"), guard.ErrInvalidOperation)
}

func TestUniqueCollectionReindex(t *testing.T) {
	items := []int{1}
	c, err := guard.AsUnique[int](collections.Wrap(&items))
	require.NoError(t, err)

	items = append(items, 1, 2)
	require.NoError(t, c.Reindex())
	assert.Equal(t, []int{1, 2}, items)
	assert.Equal(t, 2, c.ElementsSet().Count())

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.ElementsSet().Count())
}

func TestUniqueDictionary(t *testing.T) {
	inner := collections.NewOrderedDict(
		collections.Entry[string, int]{Key: "a", Value: 1},
		collections.Entry[string, int]{Key: "b", Value: 2},
		collections.Entry[string, int]{Key: "c", Value: 1},
	)
	d, err := guard.AsUniqueDictionary[string, int](inner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, inner.Keys())

	assert.ErrorIs(t, d.Add("d", 2), guard.ErrInvalidOperation)
	require.NoError(t, d.Set("a", 1), "same value under the same key")
	assert.ErrorIs(t, d.Set("a", 2), guard.ErrInvalidOperation)

	require.NoError(t, d.Set("a", 3))
	require.NoError(t, d.Add("e", 1), "value 1 was released by the Set")

	ok, err := d.Remove("b")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, d.Add("f", 2))

	ok, err = d.Remove("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ElementsMatch(t, []int{3, 1, 2}, d.ElementsSet().All())

	require.NoError(t, d.Clear())
	assert.Equal(t, 0, d.ElementsSet().Count())
}

func TestUniqueDictionaryReindex(t *testing.T) {
	m := map[string]int{"a": 1}
	d, err := guard.AsUniqueDictionary[string, int](collections.WrapMap(m))
	require.NoError(t, err)

	m["b"] = 1
	m["c"] = 2
	require.NoError(t, d.Reindex())
	assert.Len(t, m, 2)
	assert.Equal(t, 2, d.ElementsSet().Count())
	assert.True(t, d.ElementsSet().Contains(2))
}

func TestUniqueNilSource(t *testing.T) {
	_, err := guard.AsUnique[int](nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = guard.AsUniqueList[int](nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	_, err = guard.AsUniqueDictionary[string, int](nil)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
}

func TestUniqueRepairRestoresCollectionOnRefusal(t *testing.T) {
	a := ptr("a")
	items := []*string{nil, nil, a}
	nn, err := guard.AsNonNullable[*string](collections.Wrap(&items))
	require.NoError(t, err)

	// refilling through the non-nil layer refuses the nil it just cleared
	_, err = guard.AsUnique[*string](nn)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
	assert.Equal(t, []*string{nil, nil, a}, items)
}

var errRemoveRefused = errors.New("remove refused")

// brittleList refuses every RemoveAt after the first.
type brittleList struct {
	*collections.ListBase[int]
	removals int
}

func (l *brittleList) RemoveAt(index int) error {
	l.removals++
	if l.removals > 1 {
		return errRemoveRefused
	}
	return l.ListBase.RemoveAt(index)
}

func TestUniqueRepairRestoresListOnRefusal(t *testing.T) {
	items := []int{1, 1, 2, 2}
	l := &brittleList{ListBase: collections.NewListBase[int](collections.Wrap(&items), collections.Flags{})}

	_, err := guard.AsUniqueList[int](l)
	assert.ErrorIs(t, err, errRemoveRefused)
	assert.Equal(t, []int{1, 1, 2, 2}, items)
}

func TestUniqueRepairRestoresDictionaryOnRefusal(t *testing.T) {
	inner := collections.NewOrderedDict(
		collections.Entry[string, int]{Key: "a", Value: 1},
		collections.Entry[string, int]{Key: "b", Value: 1},
		collections.Entry[string, int]{Key: "c", Value: 1},
	)
	sized, err := guard.AsSizedDictionary[string, int](inner, 2, 10)
	require.NoError(t, err)

	// dropping b is allowed, dropping c would go below the minimum
	_, err = guard.AsUniqueDictionary[string, int](sized)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)
	assert.Equal(t, []collections.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 1},
		{Key: "c", Value: 1},
	}, inner.Entries())
}
