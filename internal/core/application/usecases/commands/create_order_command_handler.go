package commands

import (
	"context"
	"errors"
	"fmt"
	"math"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

// ErrNotAuthorized is the sentinel wrapped when the acting identity may not
// perform the requested operation. The transport layer classifies it with
// errors.Is.
var ErrNotAuthorized = errors.New("not authorized")

// newOrderAttributes is the decoded shape of an order-creation payload.
// Unlike the mid-checkout attribute set, line items here describe new
// positions with a name and a price rather than quantity adjustments.
type newOrderAttributes struct {
	Email     string                  `mapstructure:"email"`
	LineItems []newLineItemAttributes `mapstructure:"line_items"`
}

type newLineItemAttributes struct {
	SKU      string  `mapstructure:"sku"`
	Name     string  `mapstructure:"name"`
	Quantity int     `mapstructure:"quantity"`
	Price    float64 `mapstructure:"price"`
	Digital  bool    `mapstructure:"digital"`
}

// CreateOrderCommandHandler handles order creation: check authorization,
// decode the nested payload into line items, pick the checkout step sequence
// for the order type, and persist the new aggregate.
//
// Orders holding only digital positions get the shortened step sequence
// without the delivery step.
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	auth           ports.AuthorizationService
	config         ports.ConfigProvider
	paymentMethods []string
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// paymentMethods lists the payment method identifiers newly created orders
// may pay with.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auth ports.AuthorizationService,
	config ports.ConfigProvider,
	paymentMethods []string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		auth:           auth,
		config:         config,
		paymentMethods: append([]string(nil), paymentMethods...),
	}
}

// Handle processes the creation command. Unauthorized buyers and malformed
// payloads are reported as validation outcomes; a returned error signals an
// infrastructure fault.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	allowed, err := h.auth.CanCreateOrder(ctx, cmd.BuyerID())
	if err != nil {
		return Outcome{}, err
	}
	if !allowed {
		return Outcome{}, fmt.Errorf("%w: user %s may not create orders", ErrNotAuthorized, cmd.BuyerID())
	}

	orderParams := cmd.Payload().Map("order")

	attrs := newOrderAttributes{}
	if err = decodePayload(orderParams, &attrs); err != nil {
		fieldErrors := order.FieldErrors{}
		fieldErrors.Add("base", "payload is malformed")
		return ValidationFailedOutcome(nil, fieldErrors), nil
	}

	lineItems, fieldErrors := h.buildLineItems(attrs.LineItems)
	if fieldErrors.HasAny() {
		return ValidationFailedOutcome(nil, fieldErrors), nil
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		attrs.Email,
		stepSetFor(lineItems),
		lineItems,
		h.paymentMethods,
	)
	if err != nil {
		return Outcome{}, err
	}

	if err = aggregate.AssociateUser(cmd.BuyerID()); err != nil {
		return Outcome{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Outcome{}, err
	}

	return AdvancedOutcome(aggregate, false), nil
}

func (h *CreateOrderCommandHandler) buildLineItems(attrs []newLineItemAttributes) ([]order.LineItem, order.FieldErrors) {
	fieldErrors := order.FieldErrors{}
	if len(attrs) == 0 {
		fieldErrors.Add("line_items", "at least one line item is required")
		return nil, fieldErrors
	}

	currency := h.config.Currency()
	lineItems := make([]order.LineItem, 0, len(attrs))
	for _, liAttrs := range attrs {
		if liAttrs.Price < 0 {
			fieldErrors.Add("line_items", fmt.Sprintf("price for %s cannot be negative", liAttrs.SKU))
			continue
		}

		unitPrice, err := kernel.NewMoney(int64(math.Round(liAttrs.Price*100)), currency)
		if err != nil {
			fieldErrors.Add("line_items", err.Error())
			continue
		}

		// Stock equals the ordered quantity at creation time; divergence
		// appears later when availability is refreshed from inventory.
		li, err := order.NewLineItem(
			liAttrs.SKU,
			liAttrs.Name,
			liAttrs.Quantity,
			liAttrs.Quantity,
			unitPrice,
			!liAttrs.Digital,
		)
		if err != nil {
			fieldErrors.Add("line_items", err.Error())
			continue
		}
		lineItems = append(lineItems, li)
	}

	if fieldErrors.HasAny() {
		return nil, fieldErrors
	}
	return lineItems, order.FieldErrors{}
}

// stepSetFor selects the checkout step sequence by order content: orders
// with no shippable position skip the delivery step.
func stepSetFor(lineItems []order.LineItem) order.StepSet {
	for _, li := range lineItems {
		if li.IsShippable() {
			return order.DefaultStepSet()
		}
	}
	return order.DigitalStepSet()
}
