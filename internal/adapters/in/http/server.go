// Package http exposes the checkout API. Handlers translate HTTP requests
// into commands and queries, and translate outcomes back into the response
// contract: every anticipated domain refusal is a 422 carrying the order's
// current representation, unknown orders are 404, infrastructure faults 500.
package http

import (
	"errors"
	"net/http"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	advanceCheckoutHandler commands.AdvanceCheckoutCommandHandler
	updateCheckoutHandler  commands.UpdateCheckoutCommandHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceCheckoutHandler commands.AdvanceCheckoutCommandHandler,
	updateCheckoutHandler commands.UpdateCheckoutCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceCheckoutHandler: advanceCheckoutHandler,
		updateCheckoutHandler:  updateCheckoutHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes binds the checkout API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/checkouts", s.CreateCheckout)
	e.GET("/api/v1/checkouts/:number", s.GetCheckout)
	e.PUT("/api/v1/checkouts/:number", s.UpdateCheckout)
	e.PATCH("/api/v1/checkouts/:number", s.PatchCheckout)
	e.PUT("/api/v1/checkouts/:number/next", s.AdvanceCheckout)
}

// errorBody is the envelope for non-order error responses.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCheckout handles POST /api/v1/checkouts - creates a new order.
func (s *Server) CreateCheckout(ctx echo.Context) error {
	buyerID, err := actingUserID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "X-User-Id header must carry a valid user id",
		})
	}

	payload, err := bindPayload(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(buyerID, payload)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	outcome, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return renderOutcome(ctx, outcome, http.StatusCreated)
}

// GetCheckout handles GET /api/v1/checkouts/:number - order summary.
func (s *Server) GetCheckout(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("number"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	summary, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// UpdateCheckout handles PUT /api/v1/checkouts/:number - replace-style
// checkout submission. Previously submitted payment data is reset before
// the payload is applied, making retried submissions idempotent.
func (s *Server) UpdateCheckout(ctx echo.Context) error {
	return s.handleUpdate(ctx, true)
}

// PatchCheckout handles PATCH /api/v1/checkouts/:number - additive checkout
// submission that keeps previously recorded payment attempts.
func (s *Server) PatchCheckout(ctx echo.Context) error {
	return s.handleUpdate(ctx, false)
}

func (s *Server) handleUpdate(ctx echo.Context, replace bool) error {
	userID, err := actingUserID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "X-User-Id header must carry a valid user id",
		})
	}

	payload, err := bindPayload(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCheckoutCommand(ctx.Param("number"), payload, userID, replace)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid checkout data: " + err.Error(),
		})
	}

	outcome, err := s.updateCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return renderOutcome(ctx, outcome, http.StatusOK)
}

// AdvanceCheckout handles PUT /api/v1/checkouts/:number/next - a bare
// forward transition. The optional "state" query parameter resumes the
// checkout from an earlier step before advancing.
func (s *Server) AdvanceCheckout(ctx echo.Context) error {
	cmd, err := commands.NewAdvanceCheckoutCommand(
		ctx.Param("number"),
		order.CheckoutState(ctx.QueryParam("state")),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "Invalid advance request: " + err.Error(),
		})
	}

	outcome, err := s.advanceCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return renderOutcome(ctx, outcome, http.StatusOK)
}

// actingUserID extracts the authenticated identity from the X-User-Id header.
// Authentication itself happens upstream; the id arrives trusted.
func actingUserID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
}

func bindPayload(ctx echo.Context) (commands.Payload, error) {
	payload := commands.Payload{}
	if ctx.Request().ContentLength == 0 {
		return payload, nil
	}
	if err := ctx.Bind(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func renderError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	if errors.Is(err, commands.ErrNotAuthorized) {
		return ctx.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, errorBody{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
