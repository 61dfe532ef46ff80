package ports

import (
	"checkout/internal/core/domain/model/order"
)

// DefaultAddressProvider supplies the system default address used to fill
// missing bill/ship addresses when an order enters the address step.
type DefaultAddressProvider interface {
	DefaultAddress() order.Address
}
