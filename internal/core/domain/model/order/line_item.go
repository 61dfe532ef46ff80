package order

import (
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// LineItem is an entity describing one purchasable position of an order:
// a SKU, the ordered quantity, the unit price, and the stock known to be
// available when the order was loaded. Stock availability drives the
// insufficient-stock short-circuit in the checkout pipeline.
type LineItem struct {
	sku          string
	name         string
	quantity     int
	availableQty int
	unitPrice    kernel.Money
	shippable    bool
}

// NewLineItem creates a validated line item.
// Quantity must be positive; available quantity may be zero.
func NewLineItem(sku, name string, quantity, availableQty int, unitPrice kernel.Money, shippable bool) (LineItem, error) {
	if sku == "" {
		return LineItem{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if availableQty < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"available quantity",
			fmt.Errorf("%d is negative", availableQty),
		)
	}

	return LineItem{
		sku:          sku,
		name:         name,
		quantity:     quantity,
		availableQty: availableQty,
		unitPrice:    unitPrice,
		shippable:    shippable,
	}, nil
}

// SKU returns the stock keeping unit of the item.
func (li LineItem) SKU() string { return li.sku }

// Name returns the display name of the item.
func (li LineItem) Name() string { return li.name }

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int { return li.quantity }

// AvailableQuantity returns the stock known to be available for the item.
func (li LineItem) AvailableQuantity() int { return li.availableQty }

// UnitPrice returns the per-unit price of the item.
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// IsShippable reports whether the item requires physical delivery.
func (li LineItem) IsShippable() bool { return li.shippable }

// HasInsufficientStock reports whether the ordered quantity exceeds the
// known available stock.
func (li LineItem) HasInsufficientStock() bool {
	return li.quantity > li.availableQty
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() kernel.Money {
	total, err := kernel.NewMoney(li.unitPrice.Cents()*int64(li.quantity), li.unitPrice.Currency())
	if err != nil {
		return kernel.Money{}
	}
	return total
}
