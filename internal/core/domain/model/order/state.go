package order

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// CheckoutState represents a named stage in the linear checkout workflow.
// It implements a state machine with defined forward transitions to ensure
// orders follow the correct business workflow.
//
// State sequence (full step set):
//
//	cart ──> address ──> delivery ──> payment ──> confirm ──> complete
//
// Orders may additionally jump to the terminal canceled state from any
// non-terminal state. The concrete sequence an order walks is configured
// per order via a StepSet; digital-only orders, for example, omit the
// delivery step.
//
// CheckoutState is a value object that validates membership and provides
// string representations for persistence and display.
type CheckoutState string

const (
	// StateCart is the initial state while the buyer is still composing the order.
	StateCart CheckoutState = "cart"

	// StateAddress collects billing and shipping addresses.
	StateAddress CheckoutState = "address"

	// StateDelivery selects shipments for the shippable line items.
	StateDelivery CheckoutState = "delivery"

	// StatePayment collects payment attempts for the order total.
	StatePayment CheckoutState = "payment"

	// StateConfirm presents the finished order for a final review.
	StateConfirm CheckoutState = "confirm"

	// StateComplete is the terminal success state. It has no successor.
	StateComplete CheckoutState = "complete"

	// StateCanceled is the terminal state for abandoned or canceled checkouts.
	StateCanceled CheckoutState = "canceled"
)

func validCheckoutStates() map[CheckoutState]struct{} {
	return map[CheckoutState]struct{}{
		StateCart:     {},
		StateAddress:  {},
		StateDelivery: {},
		StatePayment:  {},
		StateConfirm:  {},
		StateComplete: {},
		StateCanceled: {},
	}
}

// Validate checks if the CheckoutState is one of the known state names.
// Unknown names are invalid; the state machine never invents states.
func (s CheckoutState) Validate() error {
	if _, ok := validCheckoutStates()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"checkout state",
			fmt.Errorf("%q is not a known checkout state", string(s)),
		)
	}
	return nil
}

// IsTerminal reports whether the state permits no further transitions.
func (s CheckoutState) IsTerminal() bool {
	return s == StateComplete || s == StateCanceled
}

// String returns the state name. Implements fmt.Stringer.
func (s CheckoutState) String() string {
	return string(s)
}

// StepSet is the ordered sequence of checkout states configured for one order.
// Orchestration code must ask the step set "does this order have step X" and
// "what follows step X" rather than hardcode the sequence, because the
// sequence differs per order type.
type StepSet struct {
	steps []CheckoutState
}

// NewStepSet creates a step set from an ordered list of states.
// The list must be non-empty, contain no duplicates, contain only valid
// non-canceled states, and end with the complete state.
func NewStepSet(steps ...CheckoutState) (StepSet, error) {
	if len(steps) == 0 {
		return StepSet{}, errs.NewValueIsRequiredError("checkout steps")
	}

	seen := make(map[CheckoutState]struct{}, len(steps))
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return StepSet{}, err
		}
		if s == StateCanceled {
			return StepSet{}, errs.NewValueIsInvalidErrorWithCause(
				"checkout steps",
				fmt.Errorf("%s cannot be part of the step sequence", StateCanceled),
			)
		}
		if _, dup := seen[s]; dup {
			return StepSet{}, errs.NewValueIsInvalidErrorWithCause(
				"checkout steps",
				fmt.Errorf("%s appears more than once", s),
			)
		}
		seen[s] = struct{}{}
	}

	if steps[len(steps)-1] != StateComplete {
		return StepSet{}, errs.NewValueIsInvalidErrorWithCause(
			"checkout steps",
			fmt.Errorf("step sequence must end with %s", StateComplete),
		)
	}

	return StepSet{steps: append([]CheckoutState(nil), steps...)}, nil
}

// DefaultStepSet returns the full checkout sequence for shippable orders.
func DefaultStepSet() StepSet {
	set, _ := NewStepSet(StateCart, StateAddress, StateDelivery, StatePayment, StateConfirm, StateComplete)
	return set
}

// DigitalStepSet returns the checkout sequence for orders containing only
// non-shippable items. The delivery step is omitted.
func DigitalStepSet() StepSet {
	set, _ := NewStepSet(StateCart, StateAddress, StatePayment, StateConfirm, StateComplete)
	return set
}

// Validate checks that the step set was built via NewStepSet.
func (ss StepSet) Validate() error {
	if len(ss.steps) == 0 {
		return errs.NewValueIsRequiredError("checkout steps")
	}
	return nil
}

// Steps returns a copy of the ordered state sequence.
func (ss StepSet) Steps() []CheckoutState {
	return append([]CheckoutState(nil), ss.steps...)
}

// Has reports whether the sequence contains the given step.
func (ss StepSet) Has(state CheckoutState) bool {
	return ss.IndexOf(state) >= 0
}

// IndexOf returns the position of the step in the sequence, or -1.
func (ss StepSet) IndexOf(state CheckoutState) int {
	for i, s := range ss.steps {
		if s == state {
			return i
		}
	}
	return -1
}

// First returns the initial step of the sequence.
func (ss StepSet) First() CheckoutState {
	if len(ss.steps) == 0 {
		return StateCart
	}
	return ss.steps[0]
}

// SuccessorOf returns the step immediately following the given one.
// The second return value is false when the step is last in the sequence
// or not a member at all.
func (ss StepSet) SuccessorOf(state CheckoutState) (CheckoutState, bool) {
	idx := ss.IndexOf(state)
	if idx < 0 || idx == len(ss.steps)-1 {
		return "", false
	}
	return ss.steps[idx+1], true
}
