package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPayloadIsRequired = errors.New("order payload is required")
)

// CreateOrderCommand represents a request to build a new checkout order from
// a raw nested payload on behalf of an authorized buyer.
//
// Example:
//
//	payload := commands.Payload{
//	    "order": map[string]any{
//	        "email": "buyer@example.com",
//	        "line_items": []any{
//	            map[string]any{"sku": "MUG-1", "name": "Mug", "quantity": 2, "price": 12.50},
//	        },
//	    },
//	}
//	cmd, err := NewCreateOrderCommand(buyerID, payload)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	payload Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new checkout order.
// Validates that the buyer identity is valid and the payload carries an
// order structure.
func NewCreateOrderCommand(buyerID kernel.UUID, payload Payload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setPayload(payload),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BuyerID returns the identity of the buyer creating the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Payload returns the raw nested order payload.
func (c CreateOrderCommand) Payload() Payload {
	return c.payload
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setPayload(payload Payload) error {
	if payload.Map("order").IsEmpty() {
		return ErrPayloadIsRequired
	}

	c.payload = payload.Clone()
	return nil
}
