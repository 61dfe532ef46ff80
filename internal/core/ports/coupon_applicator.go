package ports

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// CouponResult is the outcome of a single coupon application attempt.
// When Applied is false, Reason carries the human-readable rejection
// message to surface verbatim to the caller.
type CouponResult struct {
	Applied bool
	Reason  string
}

// CouponApplicator is the boundary to the external promotion service.
// A single attempt is made per transition request; retry logic does not
// live here. A returned error signals an infrastructure failure of the
// collaborator, not a domain rejection.
type CouponApplicator interface {
	Apply(ctx context.Context, aggregate *order.Order, couponCode string) (CouponResult, error)
}
