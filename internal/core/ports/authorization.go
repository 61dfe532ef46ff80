package ports

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
)

// AuthorizationService answers the two access questions the checkout
// pipeline asks. Authentication itself lives outside this core.
type AuthorizationService interface {
	// CanCreateOrder reports whether the buyer identity may create orders.
	CanCreateOrder(ctx context.Context, buyerID kernel.UUID) (bool, error)

	// IsPrivileged reports whether the acting user holds elevated privilege,
	// allowing it to associate an order with another user.
	IsPrivileged(ctx context.Context, userID kernel.UUID) (bool, error)
}
