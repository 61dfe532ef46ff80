package order

import (
	"fmt"
	"sort"
	"strings"
)

// OrderAttributes is the canonical attribute set accepted by the order
// aggregate. The application layer decodes sanitized request payloads into
// this shape before calling ApplyAttributes.
type OrderAttributes struct {
	Email       string                `mapstructure:"email"`
	CouponCode  string                `mapstructure:"coupon_code"`
	BillAddress *AddressAttributes    `mapstructure:"bill_address_attributes"`
	ShipAddress *AddressAttributes    `mapstructure:"ship_address_attributes"`
	LineItems   []LineItemAttributes  `mapstructure:"line_items_attributes"`
	Payments    []PaymentAttributes   `mapstructure:"payments_attributes"`
}

// IsEmpty reports whether the attribute set carries no data at all.
// A bare "advance" request decodes to an empty set.
func (a OrderAttributes) IsEmpty() bool {
	return a.Email == "" &&
		a.CouponCode == "" &&
		a.BillAddress == nil &&
		a.ShipAddress == nil &&
		len(a.LineItems) == 0 &&
		len(a.Payments) == 0
}

// AddressAttributes carries raw address fields from a request payload.
type AddressAttributes struct {
	FirstName string `mapstructure:"firstname"`
	LastName  string `mapstructure:"lastname"`
	Street    string `mapstructure:"address1"`
	City      string `mapstructure:"city"`
	Zip       string `mapstructure:"zipcode"`
	Country   string `mapstructure:"country"`
}

// LineItemAttributes carries a quantity adjustment for an existing line item.
type LineItemAttributes struct {
	SKU      string `mapstructure:"sku"`
	Quantity int    `mapstructure:"quantity"`
}

// PaymentAttributes carries a raw payment submission. Amount is expressed in
// major currency units, as clients submit it.
type PaymentAttributes struct {
	PaymentMethodID string         `mapstructure:"payment_method_id"`
	Amount          float64        `mapstructure:"amount"`
	Source          map[string]any `mapstructure:"source_attributes"`
}

// FieldErrors collects field-level validation messages produced while
// applying attributes to the order. A nil or empty FieldErrors means the
// attributes were accepted.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasAny reports whether at least one field carries an error.
func (fe FieldErrors) HasAny() bool {
	return len(fe) > 0
}

// Error renders all messages in a stable order. Implements the error
// interface so field errors can travel through error returns.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], ", ")))
	}
	return strings.Join(parts, "; ")
}
