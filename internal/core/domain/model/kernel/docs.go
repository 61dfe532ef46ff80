// Package kernel holds the primitive value objects the rest of the domain
// model is built from:
//
//   - UUID: identity for orders and buyers, wrapping github.com/google/uuid
//   - Money: monetary amounts as integer cents in a single currency
//
// Both are immutable, validate themselves, and reject their zero values, so
// an aggregate holding them never has to re-check identifier or amount
// well-formedness.
package kernel
