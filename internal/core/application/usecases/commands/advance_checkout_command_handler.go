package commands

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/order"
)

// AdvanceCheckoutCommandHandler handles explicit "advance" requests.
//
// Pipeline: load order -> insufficient-stock short-circuit -> optional state
// override -> before-hook for the current state -> single forward transition.
// Guard failures become OutcomeTransitionRejected; advancing a terminal order
// is a no-op success.
//
// Example:
//
//	handler := NewAdvanceCheckoutCommandHandler(uowFactory, hooks)
//	cmd, _ := NewAdvanceCheckoutCommand("R123456789", "")
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("advance failed: %w", err)
//	}
type AdvanceCheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	hooks      *HookRegistry
}

// NewAdvanceCheckoutCommandHandler creates a handler for advance operations.
func NewAdvanceCheckoutCommandHandler(uowFactory OrderUoWFactory, hooks *HookRegistry) AdvanceCheckoutCommandHandler {
	return AdvanceCheckoutCommandHandler{
		uowFactory: uowFactory,
		hooks:      hooks,
	}
}

// Handle processes the advance command. A returned error signals an
// infrastructure fault (unknown order, storage failure); every anticipated
// domain result is expressed as an Outcome.
func (h *AdvanceCheckoutCommandHandler) Handle(ctx context.Context, cmd AdvanceCheckoutCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return Outcome{}, err
	}

	if lines := aggregate.InsufficientStockLines(); len(lines) > 0 {
		return InsufficientStockOutcome(aggregate, lines), nil
	}

	if cmd.HasRequestedState() {
		if err = aggregate.SetState(cmd.RequestedState()); err != nil {
			return TransitionRejectedOutcome(aggregate), nil
		}
	}

	hookCtx := &HookContext{Order: aggregate}
	if err = h.hooks.RunBefore(ctx, aggregate.State(), hookCtx); err != nil {
		return Outcome{}, err
	}

	moved, err := aggregate.Next()
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return TransitionRejectedOutcome(aggregate), nil
		}
		return Outcome{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Outcome{}, err
	}

	return AdvancedOutcome(aggregate, moved), nil
}
