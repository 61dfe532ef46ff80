package commands_test

import (
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSanitizer_Sanitize_PassThroughOffPaymentStep(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	aggregate := defaultFixture(t).atState(order.StateAddress).build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"email": "buyer@example.com",
			"payments_attributes": []any{
				map[string]any{"payment_method_id": "credit_card", "amount": 999.0},
			},
		},
		"payment_source": map[string]any{
			"credit_card": map[string]any{"number": "4111"},
		},
	}

	sanitized := sanitizer.Sanitize(aggregate, raw)

	assert.Equal(t, "buyer@example.com", sanitized.String("email"))
	payments := sanitized.Maps("payments_attributes")
	require.Len(t, payments, 1)
	// Off the payment step nothing is relocated or overwritten.
	assert.Equal(t, 999.0, payments[0]["amount"])
	assert.NotContains(t, payments[0], "source_attributes")
}

func TestAttributeSanitizer_Sanitize_PaymentStepOverridesAmountWithTotal(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	// Total is 2 * 21.00 = 42.00.
	aggregate := defaultFixture(t).
		atState(order.StatePayment).
		withAddresses(t).
		build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"payments_attributes": []any{
				map[string]any{"payment_method_id": "credit_card", "amount": 999.0},
			},
		},
	}

	sanitized := sanitizer.Sanitize(aggregate, raw)

	payments := sanitized.Maps("payments_attributes")
	require.Len(t, payments, 1)
	assert.Equal(t, 42.0, payments[0]["amount"])
}

func TestAttributeSanitizer_Sanitize_PaymentStepRelocatesSource(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	aggregate := defaultFixture(t).
		atState(order.StatePayment).
		withAddresses(t).
		build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"payments_attributes": []any{
				map[string]any{"payment_method_id": "credit_card"},
			},
		},
		"payment_source": map[string]any{
			"credit_card": map[string]any{"number": "4111", "name": "Jo Buyer"},
			"wallet":      map[string]any{"wallet_id": "w-1"},
		},
	}

	sanitized := sanitizer.Sanitize(aggregate, raw)

	payments := sanitized.Maps("payments_attributes")
	require.Len(t, payments, 1)
	source, ok := payments[0]["source_attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "4111", source["number"])
	assert.NotContains(t, source, "wallet_id")
}

func TestAttributeSanitizer_Sanitize_IdempotentAcrossRepeats(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	aggregate := defaultFixture(t).
		atState(order.StatePayment).
		withAddresses(t).
		build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"payments_attributes": []any{
				map[string]any{"payment_method_id": "credit_card", "amount": 999.0},
			},
		},
		"payment_source": map[string]any{
			"credit_card": map[string]any{"number": "4111"},
		},
	}

	first := sanitizer.Sanitize(aggregate, raw)
	second := sanitizer.Sanitize(aggregate, raw)

	assert.Equal(t, first, second)
	// The input payload was never mutated.
	originalPayments := raw.Map("order").Maps("payments_attributes")
	require.Len(t, originalPayments, 1)
	assert.Equal(t, 999.0, originalPayments[0]["amount"])
	assert.NotContains(t, originalPayments[0], "source_attributes")
}

func TestAttributeSanitizer_Sanitize_NormalizesAliases(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	aggregate := defaultFixture(t).build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"bill_address": map[string]any{"address1": "1 Main St"},
			"line_items":   []any{map[string]any{"sku": "MUG-1", "quantity": 3}},
		},
	}

	sanitized := sanitizer.Sanitize(aggregate, raw)

	assert.NotContains(t, sanitized, "bill_address")
	assert.NotContains(t, sanitized, "line_items")
	assert.Equal(t, "1 Main St", sanitized.Map("bill_address_attributes").String("address1"))
	require.Len(t, sanitized.Maps("line_items_attributes"), 1)
}

func TestAttributeSanitizer_Sanitize_NoPaymentMethodsMeansNoOverride(t *testing.T) {
	sanitizer := commands.NewAttributeSanitizer()
	fixture := defaultFixture(t).
		atState(order.StatePayment).
		withAddresses(t)
	fixture.paymentMethods = nil
	aggregate := fixture.build(t)

	raw := commands.Payload{
		"order": map[string]any{
			"payments_attributes": []any{
				map[string]any{"payment_method_id": "credit_card", "amount": 999.0},
			},
		},
	}

	sanitized := sanitizer.Sanitize(aggregate, raw)

	payments := sanitized.Maps("payments_attributes")
	require.Len(t, payments, 1)
	assert.Equal(t, 999.0, payments[0]["amount"])
}
