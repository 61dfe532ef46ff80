package queries

import (
	"errors"
	"time"

	"checkout/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// GetOrderQuery retrieves a summary of one order by its public number.
// Used by the API layer to render checkout status without loading the
// full aggregate.
//
// Example:
//
//	query, err := NewGetOrderQuery("R123456789")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for an order summary.
// The order number must be non-empty.
func NewGetOrderQuery(number string) (GetOrderQuery, error) {
	if number == "" {
		return GetOrderQuery{}, ErrOrderNumberIsRequired
	}

	return GetOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Number returns the public order number to look up.
func (q GetOrderQuery) Number() string {
	return q.number
}

// GetOrderQueryResponse is the read-side summary of an order.
// TotalCents is the order total in minor currency units.
type GetOrderQueryResponse struct {
	Number     string
	Email      string
	State      string
	CouponCode string
	TotalCents int64
	Currency   string
	UpdatedAt  time.Time
}
