package services

import (
	"checkout/internal/core/domain/model/order"
)

// ShipmentProposer is a domain service that computes proposed shipments for
// an order at the delivery step. All shippable line items are grouped into a
// single shipment; digital items never ship.
//
// The proposer is invoked by the delivery-step hook only when the incoming
// request carries no explicit order attributes, so a data-bearing submission
// never has its shipment selection overwritten.
//
// Example usage:
//
//	proposer := services.NewShipmentProposer()
//	shipments := proposer.Propose(o)
//	o.SetProposedShipments(shipments)
type ShipmentProposer struct{}

// NewShipmentProposer creates a new ShipmentProposer instance.
func NewShipmentProposer() ShipmentProposer {
	return ShipmentProposer{}
}

// Propose computes the shipments for the order's shippable line items.
// Returns an empty slice when nothing ships.
func (ShipmentProposer) Propose(o *order.Order) []order.Shipment {
	var skus []string
	for _, li := range o.LineItems() {
		if li.IsShippable() {
			skus = append(skus, li.SKU())
		}
	}

	if len(skus) == 0 {
		return nil
	}

	shipment, err := order.NewShipment(skus)
	if err != nil {
		return nil
	}

	return []order.Shipment{shipment}
}
