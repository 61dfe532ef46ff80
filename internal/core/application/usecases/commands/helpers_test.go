package commands_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// orderFixture accumulates the pieces of a restored order under test.
type orderFixture struct {
	state          order.CheckoutState
	stepSet        order.StepSet
	lineItems      []order.LineItem
	billAddress    *order.Address
	shipAddress    *order.Address
	payments       []order.Payment
	paymentMethods []string
	shipments      []order.Shipment
}

func defaultFixture(t *testing.T) *orderFixture {
	t.Helper()
	return &orderFixture{
		state:          order.StateCart,
		stepSet:        order.DefaultStepSet(),
		lineItems:      []order.LineItem{testLineItem(t, "MUG-1", 2, 10, 2100)},
		paymentMethods: []string{"credit_card"},
	}
}

func (f *orderFixture) atState(state order.CheckoutState) *orderFixture {
	f.state = state
	return f
}

func (f *orderFixture) withLineItems(items ...order.LineItem) *orderFixture {
	f.lineItems = items
	return f
}

func (f *orderFixture) withAddresses(t *testing.T) *orderFixture {
	t.Helper()
	address, err := order.NewAddress("Jo", "Buyer", "1 Main St", "Springfield", "12345", "US")
	require.NoError(t, err)
	f.billAddress = &address
	f.shipAddress = &address
	return f
}

func (f *orderFixture) withShipments(t *testing.T, skus ...string) *orderFixture {
	t.Helper()
	shipment, err := order.NewShipment(skus)
	require.NoError(t, err)
	f.shipments = []order.Shipment{shipment}
	return f
}

func (f *orderFixture) build(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:             kernel.NewUUID(),
		Number:         "R123456789",
		Email:          "buyer@example.com",
		State:          f.state,
		StepSet:        f.stepSet,
		LineItems:      f.lineItems,
		BillAddress:    f.billAddress,
		ShipAddress:    f.shipAddress,
		Payments:       f.payments,
		PaymentMethods: f.paymentMethods,
		Shipments:      f.shipments,
		UpdatedAt:      time.Now(),
	})
	require.NoError(t, err)
	return aggregate
}

func testLineItem(t *testing.T, sku string, quantity, availableQty int, unitPriceCents int64) order.LineItem {
	t.Helper()
	price, err := kernel.NewMoney(unitPriceCents, "USD")
	require.NoError(t, err)
	li, err := order.NewLineItem(sku, "Item "+sku, quantity, availableQty, price, true)
	require.NoError(t, err)
	return li
}

func digitalLineItem(t *testing.T, sku string, quantity int, unitPriceCents int64) order.LineItem {
	t.Helper()
	price, err := kernel.NewMoney(unitPriceCents, "USD")
	require.NoError(t, err)
	li, err := order.NewLineItem(sku, "Item "+sku, quantity, quantity, price, false)
	require.NoError(t, err)
	return li
}

func testDefaultAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("", "", "1 Warehouse Way", "Springfield", "12345", "US")
	require.NoError(t, err)
	return address
}
