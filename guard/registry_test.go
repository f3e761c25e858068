package guard_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-guarded-collections/guard"
)

func lowercase(v any) error {
	s, ok := v.(string)
	if !ok || s != strings.ToLower(s) {
		return guard.ErrConstraintFailed
	}
	return nil
}

func TestRegisterConstraint(t *testing.T) {
	guard.FlushConstraints()
	t.Cleanup(guard.FlushConstraints)

	assert.False(t, guard.HasConstraint("lowercase"))
	require.NoError(t, guard.RegisterConstraint("lowercase", lowercase))
	assert.True(t, guard.HasConstraint("lowercase"))

	assert.NoError(t, guard.CallConstraint("lowercase", "abc"))
	assert.ErrorIs(t, guard.CallConstraint("lowercase", "ABC"), guard.ErrConstraintFailed)
	assert.ErrorIs(t, guard.CallConstraint("lowercase", 1), guard.ErrConstraintFailed)
}

func TestRegisterConstraintRejectsBadInput(t *testing.T) {
	guard.FlushConstraints()
	t.Cleanup(guard.FlushConstraints)

	assert.ErrorIs(t, guard.RegisterConstraint("", lowercase), guard.ErrInvalidArgument)
	assert.ErrorIs(t, guard.RegisterConstraint("lowercase", nil), guard.ErrNilArgument)
	assert.Empty(t, guard.Constraints())
}

func TestConstraintNotFoundListsRegistered(t *testing.T) {
	guard.FlushConstraints()
	t.Cleanup(guard.FlushConstraints)

	require.NoError(t, guard.RegisterConstraint("upper", lowercase))
	require.NoError(t, guard.RegisterConstraint("lower", lowercase))
	assert.Equal(t, []string{"lower", "upper"}, guard.Constraints())

	err := guard.CallConstraint("missing", "abc")
	assert.ErrorIs(t, err, guard.ErrConstraintNotFound)
	assert.EqualError(t, err, `guard: constraint not found: "missing" (registered: [lower upper])`)

	_, err = guard.LoadPolicy([]byte("constraints: [missing]"))
	assert.ErrorIs(t, err, guard.ErrConstraintNotFound)
	assert.ErrorContains(t, err, "[lower upper]")
}

func TestRegisterConstraintReplaces(t *testing.T) {
	guard.FlushConstraints()
	t.Cleanup(guard.FlushConstraints)

	require.NoError(t, guard.RegisterConstraint("any", func(any) error { return guard.ErrConstraintFailed }))
	require.NoError(t, guard.RegisterConstraint("any", func(any) error { return nil }))
	assert.NoError(t, guard.CallConstraint("any", 1))

	guard.FlushConstraints()
	assert.False(t, guard.HasConstraint("any"))
}

func TestRegisterConstraintConcurrent(t *testing.T) {
	guard.FlushConstraints()
	t.Cleanup(guard.FlushConstraints)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("c%d", i)
			assert.NoError(t, guard.RegisterConstraint(name, lowercase))
			_ = guard.CallConstraint(name, "x")
		}(i)
	}
	wg.Wait()

	assert.Len(t, guard.Constraints(), 20)
	for i := 0; i < 20; i++ {
		require.True(t, guard.HasConstraint(fmt.Sprintf("c%d", i)))
	}
}
