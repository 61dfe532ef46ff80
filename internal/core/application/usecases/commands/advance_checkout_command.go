package commands

import (
	"errors"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/guard"
)

var (
	ErrAdvanceCheckoutCommandIsNotConstructed = errors.New(
		"AdvanceCheckoutCommand must be created via NewAdvanceCheckoutCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// AdvanceCheckoutCommand requests a single forward transition for an order.
// An optional requested state overrides the order's recorded state before
// the transition is attempted, allowing "retry from this step" flows.
//
// Example:
//
//	cmd, err := NewAdvanceCheckoutCommand("R123456789", order.StatePayment)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	outcome, err := handler.Handle(ctx, cmd)
type AdvanceCheckoutCommand struct { //nolint:recvcheck //using for validation
	orderNumber    string
	requestedState order.CheckoutState

	guard guard.ConstructorGuard
}

// NewAdvanceCheckoutCommand creates a command to advance a checkout.
// requestedState may be empty, meaning "advance from the recorded state".
// A non-empty requestedState must be a known checkout state name.
func NewAdvanceCheckoutCommand(orderNumber string, requestedState order.CheckoutState) (AdvanceCheckoutCommand, error) {
	cmd := AdvanceCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setRequestedState(requestedState),
	); err != nil {
		return AdvanceCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCheckoutCommandIsNotConstructed)
}

// OrderNumber returns the public number of the order to advance.
func (c AdvanceCheckoutCommand) OrderNumber() string {
	return c.orderNumber
}

// RequestedState returns the explicit state override, or "" when absent.
func (c AdvanceCheckoutCommand) RequestedState() order.CheckoutState {
	return c.requestedState
}

// HasRequestedState reports whether an explicit override was supplied.
func (c AdvanceCheckoutCommand) HasRequestedState() bool {
	return c.requestedState != ""
}

func (c *AdvanceCheckoutCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AdvanceCheckoutCommand) setRequestedState(state order.CheckoutState) error {
	if state == "" {
		return nil
	}
	if err := state.Validate(); err != nil {
		return err
	}

	c.requestedState = state
	return nil
}
