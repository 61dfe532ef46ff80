package commands

import (
	"context"
	"time"
)

// CancelStaleCheckoutsCommandHandler cancels checkouts abandoned mid-flow.
// Orders in a terminal state are never touched; the repository query only
// yields in-progress checkouts.
type CancelStaleCheckoutsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleCheckoutsCommandHandler creates a handler for the
// abandoned-checkout sweep.
func NewCancelStaleCheckoutsCommandHandler(uowFactory OrderUoWFactory) CancelStaleCheckoutsCommandHandler {
	return CancelStaleCheckoutsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every stale checkout in one transaction and returns the
// number of orders canceled.
func (h *CancelStaleCheckoutsCommandHandler) Handle(ctx context.Context, cmd CancelStaleCheckoutsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().Add(-cmd.StaleAfter())
	stale, err := orderRepo.GetStaleCheckouts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	canceled := 0
	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			continue
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		canceled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return canceled, nil
}
