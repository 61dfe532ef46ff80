package order

import "checkout/internal/pkg/errs"

// Shipment is a proposed grouping of shippable line items, attached to the
// order while it sits at the delivery step.
type Shipment struct {
	skus []string
}

// NewShipment creates a shipment covering the given line item SKUs.
func NewShipment(skus []string) (Shipment, error) {
	if len(skus) == 0 {
		return Shipment{}, errs.NewValueIsRequiredError("shipment skus")
	}
	return Shipment{skus: append([]string(nil), skus...)}, nil
}

// SKUs returns the SKUs covered by the shipment.
func (s Shipment) SKUs() []string {
	return append([]string(nil), s.skus...)
}
