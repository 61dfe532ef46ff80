// Package addressbook supplies the store's default address. Orders entering
// the address step with missing addresses are filled from it.
package addressbook

import (
	"checkout/internal/core/domain/model/order"
)

// StaticAddressProvider implements ports.DefaultAddressProvider with a
// fixed address taken from configuration.
type StaticAddressProvider struct {
	address order.Address
}

// NewStaticAddressProvider creates a provider returning the given address.
func NewStaticAddressProvider(address order.Address) *StaticAddressProvider {
	return &StaticAddressProvider{address: address}
}

// DefaultAddress returns the configured default address.
func (p *StaticAddressProvider) DefaultAddress() order.Address {
	return p.address
}
