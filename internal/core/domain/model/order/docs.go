// Package order provides domain entities and business logic for checkout
// management in the commerce system. It implements the Order aggregate root
// with lifecycle management and checkout state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, attributes, and lifecycle
//   - CheckoutState and StepSet: A state machine that enforces the configured
//     forward-only checkout sequence
//   - Address, LineItem, Payment, Shipment: supporting value objects and entities
//
// Key business rules:
//   - Orders must have a valid unique identifier, a public number, and at least one line item
//   - The checkout walks forward along the order's configured step sequence,
//     e.g. cart -> address -> delivery -> payment -> confirm -> complete
//   - Digital-only orders omit the delivery step; orchestration code must query
//     the step set instead of hardcoding the sequence
//   - Each step has a guard condition for leaving it; guard failures are
//     reported as ErrInvalidTransition, never as panics
//   - Attribute application is atomic and reports field-level errors
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
