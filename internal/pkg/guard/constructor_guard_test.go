package guard_test

import (
	"errors"
	"testing"

	"checkout/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value fails with the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		sentinel := errors.New("command must be created via its constructor")

		assert.Equal(t, sentinel, g.Validate(sentinel))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

// A struct literal that skips the constructor must be caught by Validate,
// which is how every command and query in the application layer rejects
// zero-value instances.
func TestConstructorGuard_CatchesStructLiterals(t *testing.T) {
	errNotConstructed := errors.New("query must be created via its constructor")

	type orderQuery struct {
		number string
		guard  guard.ConstructorGuard
	}

	newOrderQuery := func(number string) orderQuery {
		return orderQuery{number: number, guard: guard.NewConstructorGuard()}
	}

	built := newOrderQuery("R123456789")
	require.NoError(t, built.guard.Validate(errNotConstructed))

	bypassed := orderQuery{number: "R123456789"}
	assert.Equal(t, errNotConstructed, bypassed.guard.Validate(errNotConstructed))

	var zero orderQuery
	assert.Equal(t, errNotConstructed, zero.guard.Validate(errNotConstructed))
}

func TestConstructorGuard_CopiesStayValid(t *testing.T) {
	original := guard.NewConstructorGuard()
	copied := original

	require.NoError(t, copied.Validate(errors.New("not constructed")))
	require.NoError(t, original.Validate(errors.New("not constructed")))
}
