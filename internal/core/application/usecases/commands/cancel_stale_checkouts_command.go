package commands

import (
	"errors"
	"time"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrCancelStaleCheckoutsCommandIsNotConstructed = errors.New(
	"CancelStaleCheckoutsCommand must be created via NewCancelStaleCheckoutsCommand constructor",
)

// CancelStaleCheckoutsCommand requests cancellation of checkouts that have
// seen no activity for longer than the configured idle window.
type CancelStaleCheckoutsCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleCheckoutsCommand creates a command to sweep abandoned
// checkouts. staleAfter must be positive.
func NewCancelStaleCheckoutsCommand(staleAfter time.Duration) (CancelStaleCheckoutsCommand, error) {
	if staleAfter <= 0 {
		return CancelStaleCheckoutsCommand{}, errs.NewValueIsInvalidError("stale after")
	}

	return CancelStaleCheckoutsCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleCheckoutsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleCheckoutsCommandIsNotConstructed)
}

// StaleAfter returns the idle window after which a checkout counts as abandoned.
func (c CancelStaleCheckoutsCommand) StaleAfter() time.Duration {
	return c.staleAfter
}
