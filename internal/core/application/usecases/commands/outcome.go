package commands

import (
	"checkout/internal/core/domain/model/order"
)

// OutcomeKind enumerates the disjoint results a checkout transition can have.
type OutcomeKind int

const (
	// OutcomeAdvanced means the pipeline completed. Moved() distinguishes a
	// real forward transition from "attributes saved, state unchanged".
	OutcomeAdvanced OutcomeKind = iota + 1

	// OutcomeTransitionRejected means a state-machine guard refused an
	// explicit advance request.
	OutcomeTransitionRejected

	// OutcomeValidationFailed means the attribute payload was rejected with
	// field-level errors. No hook or state-advance side effects occurred.
	OutcomeValidationFailed

	// OutcomeInsufficientStock means the order has unresolved
	// insufficient-stock lines. The pipeline short-circuited before any mutation.
	OutcomeInsufficientStock

	// OutcomeCouponRejected means the promotion service refused the coupon
	// code. Attribute save already happened; state advance did not.
	OutcomeCouponRejected
)

// Outcome is the result value of one checkout transition request. It is
// constructed once per request, consumed immediately by the reporting layer,
// and never persisted. Every variant carries the order so the reporter can
// render the order's current, possibly partially updated, representation.
type Outcome struct {
	kind         OutcomeKind
	order        *order.Order
	state        order.CheckoutState
	moved        bool
	fieldErrors  order.FieldErrors
	stockLines   []order.LineItem
	couponReason string
}

// AdvancedOutcome reports a completed pipeline. moved is true only when the
// order actually entered a new state.
func AdvancedOutcome(o *order.Order, moved bool) Outcome {
	return Outcome{kind: OutcomeAdvanced, order: o, state: o.State(), moved: moved}
}

// TransitionRejectedOutcome reports a refused explicit advance.
func TransitionRejectedOutcome(o *order.Order) Outcome {
	return Outcome{kind: OutcomeTransitionRejected, order: o, state: o.State()}
}

// ValidationFailedOutcome reports field-level rejection of the payload.
// The order may be nil when creation failed before an aggregate existed.
func ValidationFailedOutcome(o *order.Order, fieldErrors order.FieldErrors) Outcome {
	outcome := Outcome{kind: OutcomeValidationFailed, order: o, fieldErrors: fieldErrors}
	if o != nil {
		outcome.state = o.State()
	}
	return outcome
}

// InsufficientStockOutcome reports unresolved insufficient-stock lines.
func InsufficientStockOutcome(o *order.Order, lines []order.LineItem) Outcome {
	return Outcome{kind: OutcomeInsufficientStock, order: o, state: o.State(), stockLines: lines}
}

// CouponRejectedOutcome reports a domain rejection from the promotion service.
func CouponRejectedOutcome(o *order.Order, reason string) Outcome {
	return Outcome{kind: OutcomeCouponRejected, order: o, state: o.State(), couponReason: reason}
}

// Kind returns the outcome variant.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// Order returns the order in its current representation.
func (o Outcome) Order() *order.Order { return o.order }

// State returns the order's checkout state at the time the outcome was built.
func (o Outcome) State() order.CheckoutState { return o.state }

// Moved reports whether the order entered a new state. Only meaningful for
// OutcomeAdvanced.
func (o Outcome) Moved() bool { return o.moved }

// FieldErrors returns the field-level messages of a validation failure.
func (o Outcome) FieldErrors() order.FieldErrors { return o.fieldErrors }

// InsufficientStockLines returns the offending line items.
func (o Outcome) InsufficientStockLines() []order.LineItem { return o.stockLines }

// CouponReason returns the promotion service's rejection reason, verbatim.
func (o Outcome) CouponReason() string { return o.couponReason }
