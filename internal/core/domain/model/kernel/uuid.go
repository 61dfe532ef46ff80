package kernel

import (
	"fmt"

	"checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// bypassed the factory functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies entities and aggregates. It wraps github.com/google/uuid
// so the rest of the domain never touches the library type directly.
// The zero value is invalid; construct through NewUUID, UUIDFromString,
// or UUIDFromBytes. Immutable, safe to copy and compare.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	buyerID, err := kernel.UUIDFromString(header.Get("X-User-Id"))
//	if err != nil {
//	    return fmt.Errorf("invalid buyer id: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. This is how new orders and
// line-item owners get their identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, and urn:uuid text forms.
// Used when identifiers arrive from HTTP headers or request payloads.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores a UUID from its 16-byte wire form, as stored in
// the uuid columns of the orders table. The nil UUID is rejected so a
// zeroed column cannot masquerade as a constructed identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Value exposes the underlying uuid.UUID for persistence mapping.
// Slice it (id.Value()[:]) when raw bytes are needed.
func (u UUID) Value() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value with ErrUUIDIsNotConstructed.
// Every aggregate constructor calls this on identifiers it receives.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
