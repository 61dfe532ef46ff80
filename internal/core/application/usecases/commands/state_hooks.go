package commands

import (
	"context"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"
	"checkout/internal/core/ports"
)

// HookContext carries the order and the request traits a hook may consult.
type HookContext struct {
	// Order is the aggregate the hook operates on.
	Order *order.Order

	// HasOrderParams reports whether the request carries explicit order
	// attributes, i.e. a data-bearing submission rather than a bare advance.
	HasOrderParams bool

	// Replace reports whether this is an idempotent replace-style submission.
	Replace bool
}

// HookFunc is optional side-effecting behavior bound to a checkout state.
// Hooks may mutate the order but must never advance its state.
type HookFunc func(ctx context.Context, hc *HookContext) error

// Hook bundles the before/after behavior for one checkout state.
// Either slot may be nil.
type Hook struct {
	Before HookFunc
	After  HookFunc
}

// HookRegistry maps checkout state names to their hook bindings. The mapping
// is populated at configuration time and static for the process lifetime;
// looking up a state with no binding is a no-op, not an error.
type HookRegistry struct {
	hooks map[order.CheckoutState]Hook
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{hooks: make(map[order.CheckoutState]Hook)}
}

// Bind attaches a hook to a state, replacing any previous binding.
func (r *HookRegistry) Bind(state order.CheckoutState, hook Hook) {
	r.hooks[state] = hook
}

// RunBefore invokes the before-hook bound to the state, if any.
func (r *HookRegistry) RunBefore(ctx context.Context, state order.CheckoutState, hc *HookContext) error {
	if hook, ok := r.hooks[state]; ok && hook.Before != nil {
		return hook.Before(ctx, hc)
	}
	return nil
}

// RunAfter invokes the after-hook bound to the state, if any.
func (r *HookRegistry) RunAfter(ctx context.Context, state order.CheckoutState, hc *HookContext) error {
	if hook, ok := r.hooks[state]; ok && hook.After != nil {
		return hook.After(ctx, hc)
	}
	return nil
}

// DefaultHookRegistry builds the registry with the built-in checkout hooks:
//
//   - before address: default nil bill and ship addresses independently to
//     the system default address
//   - before delivery: compute proposed shipments unless the request already
//     carries explicit order attributes
//   - before payment: on replace-style submissions discard existing payment
//     attempts; the client resubmits fresh payment data
func DefaultHookRegistry(
	addresses ports.DefaultAddressProvider,
	proposer services.ShipmentProposer,
) *HookRegistry {
	registry := NewHookRegistry()

	registry.Bind(order.StateAddress, Hook{
		Before: func(_ context.Context, hc *HookContext) error {
			defaultAddress := addresses.DefaultAddress()
			if hc.Order.BillAddress() == nil {
				if err := hc.Order.SetBillAddress(defaultAddress); err != nil {
					return err
				}
			}
			if hc.Order.ShipAddress() == nil {
				if err := hc.Order.SetShipAddress(defaultAddress); err != nil {
					return err
				}
			}
			return nil
		},
	})

	registry.Bind(order.StateDelivery, Hook{
		Before: func(_ context.Context, hc *HookContext) error {
			if hc.HasOrderParams {
				return nil
			}
			hc.Order.SetProposedShipments(proposer.Propose(hc.Order))
			return nil
		},
	})

	registry.Bind(order.StatePayment, Hook{
		Before: func(_ context.Context, hc *HookContext) error {
			if hc.Replace {
				hc.Order.ClearPayments()
			}
			return nil
		},
	})

	return registry
}
