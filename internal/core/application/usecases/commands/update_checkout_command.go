package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrUpdateCheckoutCommandIsNotConstructed = errors.New(
	"UpdateCheckoutCommand must be created via NewUpdateCheckoutCommand constructor",
)

// UpdateCheckoutCommand carries a checkout-form submission: the target order,
// the raw nested payload, and the acting user. Replace marks idempotent
// replace-style submissions, which reset previously submitted payment data.
//
// Example:
//
//	payload := commands.Payload{
//	    "order": map[string]any{"email": "buyer@example.com"},
//	}
//	cmd, err := NewUpdateCheckoutCommand("R123456789", payload, actingUserID, true)
type UpdateCheckoutCommand struct { //nolint:recvcheck //using for validation
	orderNumber  string
	payload      Payload
	actingUserID kernel.UUID
	replace      bool

	guard guard.ConstructorGuard
}

// NewUpdateCheckoutCommand creates a command for a checkout-form submission.
// The payload may be empty; an empty payload is a bare advance request.
func NewUpdateCheckoutCommand(
	orderNumber string,
	payload Payload,
	actingUserID kernel.UUID,
	replace bool,
) (UpdateCheckoutCommand, error) {
	cmd := UpdateCheckoutCommand{
		payload: payload.Clone(),
		replace: replace,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setActingUserID(actingUserID),
	); err != nil {
		return UpdateCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutCommandIsNotConstructed)
}

// OrderNumber returns the public number of the order to update.
func (c UpdateCheckoutCommand) OrderNumber() string {
	return c.orderNumber
}

// Payload returns the raw nested request payload.
func (c UpdateCheckoutCommand) Payload() Payload {
	return c.payload
}

// ActingUserID returns the identity performing the submission.
func (c UpdateCheckoutCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Replace reports whether this is a replace-style submission.
func (c UpdateCheckoutCommand) Replace() bool {
	return c.replace
}

func (c *UpdateCheckoutCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateCheckoutCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}
