package commands

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

// UpdateCheckoutCommandHandler handles the composite checkout-form submission:
// sanitize the payload, apply attributes, optionally apply a coupon, then
// attempt a single forward transition.
//
// Ordering rules enforced here:
//   - the insufficient-stock short-circuit precedes any mutation
//   - the user-association side effect is persisted even when the later
//     attribute save fails validation
//   - coupon rejection pre-empts the state advance but keeps the saved
//     attributes
//   - a guard-refused advance after a successful save is not an error;
//     the outcome reports "attributes saved, state unchanged"
type UpdateCheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	hooks      *HookRegistry
	sanitizer  AttributeSanitizer
	coupons    ports.CouponApplicator
	auth       ports.AuthorizationService
}

// NewUpdateCheckoutCommandHandler creates a handler for checkout-form submissions.
func NewUpdateCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	hooks *HookRegistry,
	sanitizer AttributeSanitizer,
	coupons ports.CouponApplicator,
	auth ports.AuthorizationService,
) UpdateCheckoutCommandHandler {
	return UpdateCheckoutCommandHandler{
		uowFactory: uowFactory,
		hooks:      hooks,
		sanitizer:  sanitizer,
		coupons:    coupons,
		auth:       auth,
	}
}

// Handle processes the submission. A returned error signals an infrastructure
// fault; every anticipated domain result is expressed as an Outcome.
func (h *UpdateCheckoutCommandHandler) Handle(ctx context.Context, cmd UpdateCheckoutCommand) (Outcome, error) {
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

	hookCtx := &HookContext{
		Order:          aggregate,
		HasOrderParams: !cmd.Payload().Map("order").IsEmpty(),
		Replace:        cmd.Replace(),
	}
	if err = h.hooks.RunBefore(ctx, aggregate.State(), hookCtx); err != nil {
		return Outcome{}, err
	}

	sanitized := h.sanitizer.Sanitize(aggregate, cmd.Payload())

	userID := sanitized.String("user_id")
	sanitized = sanitized.Without("user_id")

	if userID != "" {
		if err = h.associateUser(ctx, orderRepo, aggregate, cmd.ActingUserID(), userID); err != nil {
			return Outcome{}, err
		}
	}

	attrs, decodeErr := DecodeOrderAttributes(sanitized)
	if decodeErr != nil {
		fieldErrors := order.FieldErrors{}
		fieldErrors.Add("base", "payload is malformed")
		if err = uow.Commit(ctx); err != nil {
			return Outcome{}, err
		}
		return ValidationFailedOutcome(aggregate, fieldErrors), nil
	}

	if fieldErrors := aggregate.ApplyAttributes(attrs); fieldErrors != nil {
		// The user association above stays persisted; the rejected
		// attributes were never written.
		if err = uow.Commit(ctx); err != nil {
			return Outcome{}, err
		}
		return ValidationFailedOutcome(aggregate, fieldErrors), nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return Outcome{}, err
	}

	if couponCode := sanitized.String("coupon_code"); couponCode != "" {
		result, applyErr := h.coupons.Apply(ctx, aggregate, couponCode)
		if applyErr != nil {
			if err = uow.Commit(ctx); err != nil {
				return Outcome{}, err
			}
			return Outcome{}, applyErr
		}
		if !result.Applied {
			if err = uow.Commit(ctx); err != nil {
				return Outcome{}, err
			}
			return CouponRejectedOutcome(aggregate, result.Reason), nil
		}
	}

	moved, nextErr := aggregate.Next()
	if nextErr != nil && !errors.Is(nextErr, order.ErrInvalidTransition) {
		return Outcome{}, nextErr
	}

	if moved {
		if err = h.hooks.RunAfter(ctx, aggregate.State(), hookCtx); err != nil {
			return Outcome{}, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return Outcome{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return Outcome{}, err
	}

	return AdvancedOutcome(aggregate, moved), nil
}

// associateUser links the order to the named user when the acting user holds
// elevated privilege. Submissions by regular users silently drop the field.
func (h *UpdateCheckoutCommandHandler) associateUser(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	aggregate *order.Order,
	actingUserID kernel.UUID,
	userID string,
) error {
	privileged, err := h.auth.IsPrivileged(ctx, actingUserID)
	if err != nil {
		return err
	}
	if !privileged {
		return nil
	}

	parsed, err := kernel.UUIDFromString(userID)
	if err != nil {
		return err
	}

	if err = aggregate.AssociateUser(parsed); err != nil {
		return err
	}

	return orderRepo.AssociateUser(ctx, aggregate, parsed)
}
