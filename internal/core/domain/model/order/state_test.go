package order_test

import (
	"testing"

	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   order.CheckoutState
		wantErr bool
	}{
		{"cart", order.StateCart, false},
		{"address", order.StateAddress, false},
		{"delivery", order.StateDelivery, false},
		{"payment", order.StatePayment, false},
		{"confirm", order.StateConfirm, false},
		{"complete", order.StateComplete, false},
		{"canceled", order.StateCanceled, false},
		{"unknown name", order.CheckoutState("shipped"), true},
		{"empty", order.CheckoutState(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutState_IsTerminal(t *testing.T) {
	assert.True(t, order.StateComplete.IsTerminal())
	assert.True(t, order.StateCanceled.IsTerminal())
	assert.False(t, order.StateCart.IsTerminal())
	assert.False(t, order.StateConfirm.IsTerminal())
}

func TestNewStepSet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		steps   []order.CheckoutState
		wantErr bool
	}{
		{
			"full sequence",
			[]order.CheckoutState{
				order.StateCart, order.StateAddress, order.StateDelivery,
				order.StatePayment, order.StateConfirm, order.StateComplete,
			},
			false,
		},
		{
			"digital sequence",
			[]order.CheckoutState{
				order.StateCart, order.StateAddress, order.StatePayment,
				order.StateConfirm, order.StateComplete,
			},
			false,
		},
		{"empty", nil, true},
		{
			"missing complete terminator",
			[]order.CheckoutState{order.StateCart, order.StateAddress},
			true,
		},
		{
			"duplicate step",
			[]order.CheckoutState{order.StateCart, order.StateCart, order.StateComplete},
			true,
		},
		{
			"canceled in sequence",
			[]order.CheckoutState{order.StateCart, order.StateCanceled, order.StateComplete},
			true,
		},
		{
			"unknown step",
			[]order.CheckoutState{order.StateCart, order.CheckoutState("review"), order.StateComplete},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewStepSet(tt.steps...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStepSet_SuccessorOf(t *testing.T) {
	set := order.DefaultStepSet()

	next, ok := set.SuccessorOf(order.StateCart)
	require.True(t, ok)
	assert.Equal(t, order.StateAddress, next)

	next, ok = set.SuccessorOf(order.StateConfirm)
	require.True(t, ok)
	assert.Equal(t, order.StateComplete, next)

	_, ok = set.SuccessorOf(order.StateComplete)
	assert.False(t, ok)

	_, ok = set.SuccessorOf(order.StateCanceled)
	assert.False(t, ok)
}

func TestDigitalStepSet_OmitsDelivery(t *testing.T) {
	set := order.DigitalStepSet()

	assert.False(t, set.Has(order.StateDelivery))
	assert.True(t, set.Has(order.StatePayment))

	// Address flows straight into payment.
	next, ok := set.SuccessorOf(order.StateAddress)
	require.True(t, ok)
	assert.Equal(t, order.StatePayment, next)
}

func TestStepSet_First(t *testing.T) {
	assert.Equal(t, order.StateCart, order.DefaultStepSet().First())
	assert.Equal(t, order.StateCart, order.DigitalStepSet().First())
}
