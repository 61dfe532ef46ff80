// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the checkout system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShipmentProposer: A domain service computing proposed shipments for the
//     shippable line items of an order at the delivery step
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
