package order

import (
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Payment is a payment attempt recorded against the order. The amount of the
// first payment is always set to the order total by the sanitization pipeline;
// a client-submitted amount is never trusted there.
type Payment struct {
	methodID string
	amount   kernel.Money
	source   map[string]any
}

// NewPayment creates a validated payment attempt.
// The source holds method-specific attributes (card token, wallet id, ...)
// and may be nil.
func NewPayment(methodID string, amount kernel.Money, source map[string]any) (Payment, error) {
	if methodID == "" {
		return Payment{}, errs.NewValueIsRequiredError("payment method id")
	}

	var copied map[string]any
	if source != nil {
		copied = make(map[string]any, len(source))
		for k, v := range source {
			copied[k] = v
		}
	}

	return Payment{methodID: methodID, amount: amount, source: copied}, nil
}

// MethodID returns the identifier of the payment method used.
func (p Payment) MethodID() string { return p.methodID }

// Amount returns the amount of the payment attempt.
func (p Payment) Amount() kernel.Money { return p.amount }

// Source returns a copy of the method-specific source attributes.
func (p Payment) Source() map[string]any {
	if p.source == nil {
		return nil
	}
	copied := make(map[string]any, len(p.source))
	for k, v := range p.source {
		copied[k] = v
	}
	return copied
}
