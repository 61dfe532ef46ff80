package queries

import (
	"context"
	"database/sql"
	"errors"

	"checkout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order summaries straight from the database,
// bypassing the aggregate. The write side keeps the orders table current;
// this handler only projects it.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery("R123456789")
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//	fmt.Printf("Order %s is at %s\n", summary.Number, summary.State)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when the
// order number is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			email,
			state,
			coupon_code,
			total_cents,
			currency,
			updated_at
		FROM orders
		WHERE number = ?
	`, query.Number()).Row()

	err := row.Scan(
		&response.Number,
		&response.Email,
		&response.State,
		&response.CouponCode,
		&response.TotalCents,
		&response.Currency,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.Number())
		}
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
