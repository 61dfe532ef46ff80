package commands

import (
	"checkout/internal/core/domain/model/order"
)

// payloadAliases maps public payload field names to the canonical
// nested-attribute keys the persistence layer accepts.
var payloadAliases = map[string]string{
	"bill_address": "bill_address_attributes",
	"ship_address": "ship_address_attributes",
	"line_items":   "line_items_attributes",
	"payments":     "payments_attributes",
}

// AttributeSanitizer reshapes a raw request payload into the canonical
// attribute set for the order, scoped to the order's current checkout step.
//
// It is a pure transform: the input payload is never mutated, the canonical
// payload is returned. For the payment step it enforces two invariants:
//
//   - when the request carries a payment_source structure keyed by payment
//     method id and the first payment entry names that method, the matching
//     source structure is relocated into the entry's source_attributes
//   - the first payment entry's amount is overwritten with the order total;
//     the client-submitted amount for the first payment is never trusted
//
// For every other step the order payload passes through with only alias
// normalization applied.
type AttributeSanitizer struct{}

// NewAttributeSanitizer creates a sanitizer.
func NewAttributeSanitizer() AttributeSanitizer {
	return AttributeSanitizer{}
}

// Sanitize extracts the order attributes from the raw request payload and
// returns their canonical form. Absent keys are treated as absent data.
func (s AttributeSanitizer) Sanitize(o *order.Order, raw Payload) Payload {
	orderParams := normalizeAliases(raw.Map("order").Clone())

	if !o.HasCheckoutStep(order.StatePayment) || !o.IsAt(order.StatePayment) || !o.HasAvailablePaymentMethods() {
		return orderParams
	}

	payments := orderParams.Maps("payments_attributes")
	if len(payments) == 0 {
		return orderParams
	}

	first := payments[0]
	if methodID := first.String("payment_method_id"); methodID != "" {
		if source, ok := raw.Map("payment_source")[methodID].(map[string]any); ok {
			first["source_attributes"] = map[string]any(Payload(source).Clone())
		}
	}
	first["amount"] = o.Total().Float64()

	return orderParams
}

// normalizeAliases rewrites public field aliases to their canonical keys,
// leaving already-canonical keys untouched. Operates on an owned copy.
func normalizeAliases(params Payload) Payload {
	for alias, canonical := range payloadAliases {
		value, ok := params[alias]
		if !ok {
			continue
		}
		if _, taken := params[canonical]; !taken {
			params[canonical] = value
		}
		delete(params, alias)
	}
	return params
}
