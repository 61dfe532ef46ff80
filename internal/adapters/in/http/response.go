package http

import (
	"net/http"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// orderResponse is the wire representation of an order. Every response that
// reports a domain refusal still carries it, so clients always see the
// order's current, possibly partially updated, attributes.
type orderResponse struct {
	Number         string              `json:"number"`
	State          string              `json:"state"`
	Email          string              `json:"email,omitempty"`
	CouponCode     string              `json:"coupon_code,omitempty"`
	Total          float64             `json:"total"`
	Currency       string              `json:"currency"`
	CheckoutSteps  []string            `json:"checkout_steps"`
	LineItems      []lineItemResponse  `json:"line_items"`
	BillAddress    *addressResponse    `json:"bill_address,omitempty"`
	ShipAddress    *addressResponse    `json:"ship_address,omitempty"`
	Payments       []paymentResponse   `json:"payments,omitempty"`
	Shipments      []shipmentResponse  `json:"shipments,omitempty"`
	UserID         string              `json:"user_id,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Moved          *bool               `json:"moved,omitempty"`
	Errors         map[string][]string `json:"errors,omitempty"`
	UnavailableSKU []string            `json:"unavailable_skus,omitempty"`
	CouponMessage  string              `json:"coupon_message,omitempty"`
}

type lineItemResponse struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Shippable bool    `json:"shippable"`
}

type addressResponse struct {
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country,omitempty"`
}

type paymentResponse struct {
	PaymentMethodID string  `json:"payment_method_id"`
	Amount          float64 `json:"amount"`
}

type shipmentResponse struct {
	SKUs []string `json:"skus"`
}

// renderOutcome maps a pipeline outcome onto the response contract. The
// completed pipeline answers successStatus; every domain refusal answers
// 422 with the refusal details attached to the order representation.
func renderOutcome(ctx echo.Context, outcome commands.Outcome, successStatus int) error {
	body := orderToResponse(outcome.Order())

	switch outcome.Kind() {
	case commands.OutcomeAdvanced:
		moved := outcome.Moved()
		body.Moved = &moved
		return ctx.JSON(successStatus, body)

	case commands.OutcomeTransitionRejected:
		body.Errors = map[string][]string{
			"base": {"checkout may not advance from the " + outcome.State().String() + " state"},
		}
		return ctx.JSON(http.StatusUnprocessableEntity, body)

	case commands.OutcomeValidationFailed:
		body.Errors = outcome.FieldErrors()
		return ctx.JSON(http.StatusUnprocessableEntity, body)

	case commands.OutcomeInsufficientStock:
		skus := make([]string, 0, len(outcome.InsufficientStockLines()))
		for _, li := range outcome.InsufficientStockLines() {
			skus = append(skus, li.SKU())
		}
		body.UnavailableSKU = skus
		body.Errors = map[string][]string{
			"line_items": {"some line items are out of stock"},
		}
		return ctx.JSON(http.StatusUnprocessableEntity, body)

	case commands.OutcomeCouponRejected:
		body.CouponMessage = outcome.CouponReason()
		body.Errors = map[string][]string{
			"coupon_code": {outcome.CouponReason()},
		}
		return ctx.JSON(http.StatusUnprocessableEntity, body)
	}

	return ctx.JSON(http.StatusInternalServerError, errorBody{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func orderToResponse(aggregate *order.Order) orderResponse {
	if aggregate == nil {
		return orderResponse{}
	}

	steps := make([]string, 0)
	for _, s := range aggregate.StepSet().Steps() {
		steps = append(steps, s.String())
	}

	lineItems := make([]lineItemResponse, 0)
	for _, li := range aggregate.LineItems() {
		lineItems = append(lineItems, lineItemResponse{
			SKU:       li.SKU(),
			Name:      li.Name(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice().Float64(),
			Shippable: li.IsShippable(),
		})
	}

	payments := make([]paymentResponse, 0)
	for _, p := range aggregate.Payments() {
		payments = append(payments, paymentResponse{
			PaymentMethodID: p.MethodID(),
			Amount:          p.Amount().Float64(),
		})
	}

	shipments := make([]shipmentResponse, 0)
	for _, s := range aggregate.Shipments() {
		shipments = append(shipments, shipmentResponse{SKUs: s.SKUs()})
	}

	userID := ""
	if id := aggregate.UserID(); id != nil {
		userID = id.String()
	}

	return orderResponse{
		Number:        aggregate.Number(),
		State:         aggregate.State().String(),
		Email:         aggregate.Email(),
		CouponCode:    aggregate.CouponCode(),
		Total:         aggregate.Total().Float64(),
		Currency:      aggregate.Total().Currency(),
		CheckoutSteps: steps,
		LineItems:     lineItems,
		BillAddress:   addressToResponse(aggregate.BillAddress()),
		ShipAddress:   addressToResponse(aggregate.ShipAddress()),
		Payments:      payments,
		Shipments:     shipments,
		UserID:        userID,
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func addressToResponse(address *order.Address) *addressResponse {
	if address == nil {
		return nil
	}
	return &addressResponse{
		FirstName: address.FirstName(),
		LastName:  address.LastName(),
		Address1:  address.Street(),
		City:      address.City(),
		Zipcode:   address.Zip(),
		Country:   address.Country(),
	}
}
