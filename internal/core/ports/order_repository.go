package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lookup is by the public order number, which is what the API layer
// addresses orders with.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its public order number.
	// Returns an errs.ObjectNotFoundError when the number is unknown.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// AssociateUser links the order with the given user as a direct write.
	// The association is persisted independently of later pipeline failures.
	AssociateUser(ctx context.Context, aggregate *order.Order, userID kernel.UUID) error

	// GetStaleCheckouts retrieves non-terminal orders not touched since the cutoff.
	// Used by the abandoned-checkout sweeper.
	GetStaleCheckouts(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
