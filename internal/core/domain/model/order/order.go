package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidTransition is the sentinel wrapped by every state-guard failure.
	// Callers classify transition rejections with errors.Is.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Order represents a checkout order in the system. It is the aggregate root that
// walks the order through its configured checkout step sequence while enforcing
// the per-step guard conditions.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a public order number
//   - State transitions only move forward along the configured step set,
//     or jump to the terminal canceled state
//   - Attribute application is atomic: either every attribute is accepted
//     or none is and field errors are reported
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	number         string
	email          string
	state          CheckoutState
	stepSet        StepSet
	lineItems      []LineItem
	billAddress    *Address
	shipAddress    *Address
	payments       []Payment
	paymentMethods []string
	shipments      []Shipment
	couponCode     string
	userID         *kernel.UUID
	total          kernel.Money
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder creates a new Order at the first step of the given step sequence.
//
// Parameters:
//   - id: unique identifier for the order
//   - number: public order number used by the API layer to address the order
//   - email: buyer email, may be empty at creation time
//   - stepSet: the checkout step sequence configured for this order type
//   - lineItems: the purchased positions, at least one
//   - paymentMethods: identifiers of the payment methods available to this order
//
// The order total is computed from the line items.
func NewOrder(
	id kernel.UUID,
	number string,
	email string,
	stepSet StepSet,
	lineItems []LineItem,
	paymentMethods []string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := stepSet.Validate(); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	o := &Order{
		id:             id,
		number:         number,
		email:          email,
		state:          stepSet.First(),
		stepSet:        stepSet,
		lineItems:      append([]LineItem(nil), lineItems...),
		paymentMethods: append([]string(nil), paymentMethods...),
		updatedAt:      time.Now(),
		isConstructed:  true,
	}

	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted form of an order for rehydration.
type RestoreOrderParams struct {
	ID             kernel.UUID
	Number         string
	Email          string
	State          CheckoutState
	StepSet        StepSet
	LineItems      []LineItem
	BillAddress    *Address
	ShipAddress    *Address
	Payments       []Payment
	PaymentMethods []string
	Shipments      []Shipment
	CouponCode     string
	UserID         *kernel.UUID
	UpdatedAt      time.Time
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid state, since the persisted order may be mid-checkout.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.State.Validate(),
		p.StepSet.Validate(),
	); err != nil {
		return nil, err
	}
	if p.Number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if p.State != StateCanceled && !p.StepSet.Has(p.State) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"checkout state",
			fmt.Errorf("%s is not part of the order's step sequence", p.State),
		)
	}

	o := &Order{
		id:             p.ID,
		number:         p.Number,
		email:          p.Email,
		state:          p.State,
		stepSet:        p.StepSet,
		lineItems:      append([]LineItem(nil), p.LineItems...),
		billAddress:    p.BillAddress,
		shipAddress:    p.ShipAddress,
		payments:       append([]Payment(nil), p.Payments...),
		paymentMethods: append([]string(nil), p.PaymentMethods...),
		shipments:      append([]Shipment(nil), p.Shipments...),
		couponCode:     p.CouponCode,
		userID:         p.UserID,
		updatedAt:      p.UpdatedAt,
		isConstructed:  true,
	}

	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the public order number.
func (o *Order) Number() string { return o.number }

// Email returns the buyer email recorded on the order.
func (o *Order) Email() string { return o.email }

// State returns the current checkout state.
func (o *Order) State() CheckoutState { return o.state }

// StepSet returns the checkout step sequence configured for the order.
func (o *Order) StepSet() StepSet { return o.stepSet }

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// BillAddress returns the billing address, or nil when not set.
func (o *Order) BillAddress() *Address { return o.billAddress }

// ShipAddress returns the shipping address, or nil when not set.
func (o *Order) ShipAddress() *Address { return o.shipAddress }

// Payments returns a copy of the recorded payment attempts.
func (o *Order) Payments() []Payment {
	return append([]Payment(nil), o.payments...)
}

// PaymentMethods returns the identifiers of the payment methods available to the order.
func (o *Order) PaymentMethods() []string {
	return append([]string(nil), o.paymentMethods...)
}

// Shipments returns the proposed shipments attached to the order.
func (o *Order) Shipments() []Shipment {
	return append([]Shipment(nil), o.shipments...)
}

// CouponCode returns the promotional code recorded on the order, if any.
func (o *Order) CouponCode() string { return o.couponCode }

// UserID returns the identifier of the associated user, or nil.
func (o *Order) UserID() *kernel.UUID { return o.userID }

// Total returns the current order total.
func (o *Order) Total() kernel.Money { return o.total }

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// HasCheckoutStep reports whether the order's step sequence contains the given step.
func (o *Order) HasCheckoutStep(state CheckoutState) bool {
	return o.stepSet.Has(state)
}

// IsAt reports whether the order is currently in the given step.
func (o *Order) IsAt(state CheckoutState) bool {
	return o.state == state
}

// HasAvailablePaymentMethods reports whether at least one payment method
// is configured for the order.
func (o *Order) HasAvailablePaymentMethods() bool {
	return len(o.paymentMethods) > 0
}

// InsufficientStockLines returns the line items whose ordered quantity
// exceeds the known available stock.
func (o *Order) InsufficientStockLines() []LineItem {
	var lines []LineItem
	for _, li := range o.lineItems {
		if li.HasInsufficientStock() {
			lines = append(lines, li)
		}
	}
	return lines
}

// SetState overrides the recorded checkout state. The target must be a member
// of the order's step sequence; arbitrary states are rejected. Used by the
// orchestrator's explicit "resume at this step" flow.
func (o *Order) SetState(state CheckoutState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	if !o.stepSet.Has(state) {
		return errs.NewValueIsInvalidErrorWithCause(
			"checkout state",
			fmt.Errorf("%s is not part of the order's step sequence", state),
		)
	}

	o.state = state
	o.touch()
	return nil
}

// Next attempts a single forward transition to the immediate successor of the
// current state.
//
// Returns:
//   - (true, nil) when the order advanced
//   - (false, nil) when the order is in a terminal state; advancing a
//     completed order is a no-op, not an error
//   - (false, err) wrapping ErrInvalidTransition when a guard condition
//     for leaving the current state is unmet
func (o *Order) Next() (bool, error) {
	if o.state.IsTerminal() {
		return false, nil
	}

	successor, ok := o.stepSet.SuccessorOf(o.state)
	if !ok {
		return false, nil
	}

	if err := o.guardLeave(); err != nil {
		return false, err
	}

	o.state = successor
	o.touch()
	return true, nil
}

// Cancel moves the order to the terminal canceled state.
// Canceling an already terminal order is rejected.
func (o *Order) Cancel() error {
	if o.state.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel %s order", ErrInvalidTransition, o.state)
	}

	o.state = StateCanceled
	o.touch()
	return nil
}

// AssociateUser links the order with the given user.
func (o *Order) AssociateUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	o.userID = &userID
	o.touch()
	return nil
}

// SetBillAddress records the billing address.
func (o *Order) SetBillAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	o.billAddress = &address
	o.touch()
	return nil
}

// SetShipAddress records the shipping address.
func (o *Order) SetShipAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	o.shipAddress = &address
	o.touch()
	return nil
}

// ClearPayments discards every recorded payment attempt.
// Clearing an order with no payments is a no-op.
func (o *Order) ClearPayments() {
	if len(o.payments) == 0 {
		return
	}

	o.payments = nil
	o.touch()
}

// AddPayment records a payment attempt against the order.
func (o *Order) AddPayment(payment Payment) error {
	if payment.MethodID() == "" {
		return errs.NewValueIsRequiredError("payment method id")
	}

	o.payments = append(o.payments, payment)
	o.touch()
	return nil
}

// SetProposedShipments replaces the proposed shipments attached to the order.
func (o *Order) SetProposedShipments(shipments []Shipment) {
	o.shipments = append([]Shipment(nil), shipments...)
	o.touch()
}

// ApplyAttributes applies a canonical attribute set to the order. The
// application is atomic: when any attribute is unacceptable, field errors
// are returned and the order is left untouched.
func (o *Order) ApplyAttributes(attrs OrderAttributes) FieldErrors {
	fieldErrors := FieldErrors{}

	if attrs.Email != "" && !strings.Contains(attrs.Email, "@") {
		fieldErrors.Add("email", "is not a valid email address")
	}

	billAddress := o.validateAddressAttributes("bill_address", attrs.BillAddress, fieldErrors)
	shipAddress := o.validateAddressAttributes("ship_address", attrs.ShipAddress, fieldErrors)

	quantities := make(map[string]int, len(attrs.LineItems))
	for _, liAttrs := range attrs.LineItems {
		if liAttrs.Quantity <= 0 {
			fieldErrors.Add("line_items", fmt.Sprintf("quantity for %s must be greater than 0", liAttrs.SKU))
			continue
		}
		if o.findLineItem(liAttrs.SKU) < 0 {
			fieldErrors.Add("line_items", fmt.Sprintf("no line item with sku %s", liAttrs.SKU))
			continue
		}
		quantities[liAttrs.SKU] = liAttrs.Quantity
	}

	payments := make([]Payment, 0, len(attrs.Payments))
	for _, pAttrs := range attrs.Payments {
		payment, err := o.validatePaymentAttributes(pAttrs, fieldErrors)
		if err != nil {
			continue
		}
		payments = append(payments, payment)
	}

	if fieldErrors.HasAny() {
		return fieldErrors
	}

	if attrs.Email != "" {
		o.email = attrs.Email
	}
	if attrs.CouponCode != "" {
		o.couponCode = attrs.CouponCode
	}
	if billAddress != nil {
		o.billAddress = billAddress
	}
	if shipAddress != nil {
		o.shipAddress = shipAddress
	}
	for sku, quantity := range quantities {
		idx := o.findLineItem(sku)
		li := o.lineItems[idx]
		updated, err := NewLineItem(li.SKU(), li.Name(), quantity, li.AvailableQuantity(), li.UnitPrice(), li.IsShippable())
		if err != nil {
			continue
		}
		o.lineItems[idx] = updated
	}
	o.payments = append(o.payments, payments...)

	if err := o.recalculateTotal(); err != nil {
		failure := FieldErrors{}
		failure.Add("total", err.Error())
		return failure
	}

	o.touch()
	return nil
}

// guardLeave enforces the condition for leaving the current state.
func (o *Order) guardLeave() error {
	switch o.state {
	case StateAddress:
		if o.billAddress == nil || o.shipAddress == nil {
			return fmt.Errorf("%w: cannot leave %s without bill and ship addresses", ErrInvalidTransition, o.state)
		}
	case StateDelivery:
		if len(o.shipments) == 0 {
			return fmt.Errorf("%w: cannot leave %s without shipments", ErrInvalidTransition, o.state)
		}
	case StatePayment:
		if !o.total.IsZero() && len(o.payments) == 0 {
			return fmt.Errorf("%w: cannot leave %s without a payment", ErrInvalidTransition, o.state)
		}
	}
	return nil
}

func (o *Order) validateAddressAttributes(field string, attrs *AddressAttributes, fieldErrors FieldErrors) *Address {
	if attrs == nil {
		return nil
	}

	address, err := NewAddress(attrs.FirstName, attrs.LastName, attrs.Street, attrs.City, attrs.Zip, attrs.Country)
	if err != nil {
		fieldErrors.Add(field, err.Error())
		return nil
	}
	return &address
}

func (o *Order) validatePaymentAttributes(attrs PaymentAttributes, fieldErrors FieldErrors) (Payment, error) {
	if attrs.PaymentMethodID == "" {
		fieldErrors.Add("payments", "payment method id is required")
		return Payment{}, errs.NewValueIsRequiredError("payment method id")
	}
	if len(o.paymentMethods) > 0 && !o.hasPaymentMethod(attrs.PaymentMethodID) {
		fieldErrors.Add("payments", fmt.Sprintf("payment method %s is not available", attrs.PaymentMethodID))
		return Payment{}, errs.NewValueIsInvalidError("payment method id")
	}
	if attrs.Amount < 0 {
		fieldErrors.Add("payments", "amount cannot be negative")
		return Payment{}, errs.NewValueIsInvalidError("amount")
	}

	amount, err := kernel.NewMoney(int64(math.Round(attrs.Amount*100)), o.total.Currency())
	if err != nil {
		fieldErrors.Add("payments", err.Error())
		return Payment{}, err
	}

	return NewPayment(attrs.PaymentMethodID, amount, attrs.Source)
}

func (o *Order) hasPaymentMethod(methodID string) bool {
	for _, m := range o.paymentMethods {
		if m == methodID {
			return true
		}
	}
	return false
}

func (o *Order) findLineItem(sku string) int {
	for i, li := range o.lineItems {
		if li.SKU() == sku {
			return i
		}
	}
	return -1
}

func (o *Order) recalculateTotal() error {
	var total kernel.Money
	for i, li := range o.lineItems {
		if i == 0 {
			total = li.Subtotal()
			continue
		}
		sum, err := total.Add(li.Subtotal())
		if err != nil {
			return err
		}
		total = sum
	}

	o.total = total
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}
