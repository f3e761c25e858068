package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-guarded-collections/collections"
	"github.com/hasbyte1/go-guarded-collections/guard"
)

func TestMaxSizedAcceptsFirstNAdds(t *testing.T) {
	items := []int{}
	c, err := guard.AsMaxSized[int](collections.Wrap(&items), 2)
	require.NoError(t, err)

	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(2))
	err = c.Add(3)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)
	assert.Equal(t, []int{1, 2}, items)

	max, ok := c.Max()
	assert.True(t, ok)
	assert.Equal(t, 2, max)
	_, ok = c.Min()
	assert.False(t, ok)
}

func TestMaxSizedNonPositiveRefusesEveryAdd(t *testing.T) {
	for _, max := range []int{0, -1} {
		c, err := guard.AsMaxSized[int](collections.NewList[int](), max)
		require.NoError(t, err)
		assert.ErrorIs(t, c.Add(1), guard.ErrInvalidOperation, "max %d", max)
		assert.Equal(t, 0, c.Count())
	}
}

func TestMaxSizedRefusesOversizedContent(t *testing.T) {
	_, err := guard.AsMaxSized[int](collections.NewList(1, 2, 3), 2)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)

	c, err := guard.AsMaxSized[int](collections.NewList(1, 2), 2)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Add(3), guard.ErrInvalidOperation)
}

func TestMinSized(t *testing.T) {
	_, err := guard.AsMinSized[int](collections.NewList(1), 2)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)

	_, err = guard.AsMinSized[int](collections.NewList(1), -1)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)

	items := []int{1, 2}
	c, err := guard.AsMinSized[int](collections.Wrap(&items), 2)
	require.NoError(t, err)

	_, err = c.Remove(1)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)
	assert.ErrorIs(t, c.Clear(), guard.ErrInvalidOperation)
	assert.Equal(t, []int{1, 2}, items)

	// an absent element is not a removal
	ok, err := c.Remove(99)
	require.NoError(t, err)
	assert.False(t, ok)

	// adds are unrestricted
	require.NoError(t, c.Add(3))
	ok, err = c.Remove(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 3}, items)
}

func TestSizedBounds(t *testing.T) {
	_, err := guard.AsSized[int](collections.NewList[int](), 3, 1)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)

	_, err = guard.AsSized[int](collections.NewList(1, 2, 3, 4), 1, 3)
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)

	c, err := guard.AsSized[int](collections.NewList(1), 1, 2)
	require.NoError(t, err)
	require.NoError(t, c.Add(2))
	assert.ErrorIs(t, c.Add(3), guard.ErrInvalidOperation)

	min, ok := c.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, min)
}

func TestSizedCollectionNilSource(t *testing.T) {
	_, err := guard.AsSized[int](nil, 0, 1)
	assert.ErrorIs(t, err, guard.ErrNilArgument)
}

func TestMaxSizedDictionary(t *testing.T) {
	d, err := guard.AsMaxSizedDictionary[string, int](collections.NewOrderedDict[string, int](), 1)
	require.NoError(t, err)

	require.NoError(t, d.Set("a", 1))
	require.NoError(t, d.Set("a", 2), "replacing a value is not growth")
	assert.ErrorIs(t, d.Set("b", 1), guard.ErrInvalidOperation)
	assert.ErrorIs(t, d.Add("b", 1), guard.ErrInvalidOperation)
	assert.Equal(t, []string{"a"}, d.Keys())
}

func TestSizedDictionaryMinimum(t *testing.T) {
	inner := collections.NewOrderedDict(collections.Entry[string, int]{Key: "a", Value: 1})
	d, err := guard.AsSizedDictionary[string, int](inner, 1, 2)
	require.NoError(t, err)

	_, err = d.Remove("a")
	assert.ErrorIs(t, err, guard.ErrInvalidOperation)
	assert.ErrorIs(t, d.Clear(), guard.ErrInvalidOperation)

	ok, err := d.Remove("zz")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Add("b", 2))
	ok, err = d.Remove("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, inner.Count())

	_, err = guard.AsSizedDictionary[string, int](inner, 2, 1)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)
}
