package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/ecomkit/order-lifecycle/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListOrdersForCustomer(ctx context.Context, customerID string, actor entities.Actor, f entities.CustomerFilter) ([]entities.Order, error)
	ListOrdersForAdmin(ctx context.Context, actor entities.Actor, f entities.AdminFilter) (entities.OrderPage, error)
	ListActivity(ctx context.Context, actor entities.Actor, f entities.ActivityFilter) ([]entities.AuditEntry, error)

	MarkPaid(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	MarkUnpaid(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	MarkShipped(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	MarkUnshipped(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	MarkDelivered(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error)
	SubmitReview(ctx context.Context, orderID string, actor entities.Actor, reviewID string) (entities.Order, error)
	Reorder(ctx context.Context, orderID string, actor entities.Actor) (entities.CartRequest, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Post("/orders/{order_id}/cancel", h.CancelOrder)
	r.Post("/orders/{order_id}/review", h.SubmitReview)
	r.Post("/orders/{order_id}/reorder", h.Reorder)
	r.Get("/customers/{customer_id}/orders", h.ListCustomerOrders)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders", h.ListAdminOrders)
		r.Get("/activity", h.ListActivity)
		r.Post("/orders/{order_id}/pay", h.transition(entities.CommandMarkPaid, h.svc.MarkPaid))
		r.Post("/orders/{order_id}/unpay", h.transition(entities.CommandMarkUnpaid, h.svc.MarkUnpaid))
		r.Post("/orders/{order_id}/ship", h.transition(entities.CommandMarkShipped, h.svc.MarkShipped))
		r.Post("/orders/{order_id}/unship", h.transition(entities.CommandMarkUnshipped, h.svc.MarkUnshipped))
		r.Post("/orders/{order_id}/deliver", h.transition(entities.CommandMarkDelivered, h.svc.MarkDelivered))
		r.Post("/orders/{order_id}/cancel", h.CancelOrder)
	})
}

// CreateOrder ingests a checkout snapshot and creates the order.
// @Summary      Create order
// @Description  Accepts the checkout snapshot and creates the order record
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Checkout snapshot"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateRequestToDraft(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns a single order with derived status and timeline.
// @Summary      Get order
// @Tags         orders
// @Param        order_id  path  string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID, actor)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder cancels a not-yet-delivered order. The reason is mandatory.
// @Summary      Cancel order
// @Tags         orders
// @Param        order_id  path  string              true  "Order identifier"
// @Param        request   body  CancelOrderRequest  true  "Cancellation reason"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  InvalidTransitionResponse
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	var req CancelOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.Cancel(ctx, orderID, actor, req.Reason)
	if err != nil {
		observeTransition(entities.CommandCancel, err)
		h.writeDomainError(ctx, w, err, "failed to cancel order")
		return
	}

	observeTransition(entities.CommandCancel, nil)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SubmitReview attaches a review reference to a delivered order.
// @Summary      Submit review
// @Tags         orders
// @Param        order_id  path  string               true  "Order identifier"
// @Param        request   body  SubmitReviewRequest  true  "Review reference"
// @Success      200  {object}  Order
// @Failure      409  {object}  InvalidTransitionResponse
// @Router       /orders/{order_id}/review [post]
func (h *HTTPHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	var req SubmitReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.SubmitReview(ctx, orderID, actor, req.ReviewID)
	if err != nil {
		observeTransition(entities.CommandSubmitReview, err)
		h.writeDomainError(ctx, w, err, "failed to submit review")
		return
	}

	observeTransition(entities.CommandSubmitReview, nil)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Reorder sends the order's line items to the cart collaborator.
// @Summary      Reorder
// @Tags         orders
// @Param        order_id  path  string  true  "Order identifier"
// @Success      202  {object}  CartRequest
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/reorder [post]
func (h *HTTPHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	req, err := h.svc.Reorder(ctx, orderID, actor)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to reorder")
		return
	}

	utils.WriteJSON(w, CartRequestToJSON(req), http.StatusAccepted)
}

// ListCustomerOrders returns a customer's own orders, newest first.
// @Summary      List customer orders
// @Tags         orders
// @Param        customer_id  path   string  true   "Customer identifier"
// @Param        status       query  string  false  "Status filter"
// @Success      200  {array}  Order
// @Router       /customers/{customer_id}/orders [get]
func (h *HTTPHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customer_id")

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	var filter entities.CustomerFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := entities.ParseStatus(raw)
		if !ok {
			utils.WriteError(w, "unknown status filter", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	orders, err := h.svc.ListOrdersForCustomer(ctx, customerID, actor, filter)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list customer orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListAdminOrders returns a filtered, paginated order page for the back
// office.
// @Summary      List orders (admin)
// @Tags         admin
// @Param        search     query  string  false  "Search over order and customer ids"
// @Param        status     query  string  false  "Status filter"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  OrderPage
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListAdminOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := entities.AdminFilter{
		Search:   q.Get("search"),
		Page:     queryInt(q.Get("page"), 1),
		PageSize: queryInt(q.Get("page_size"), 20),
	}
	if raw := q.Get("status"); raw != "" {
		status, ok := entities.ParseStatus(raw)
		if !ok {
			utils.WriteError(w, "unknown status filter", http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	page, err := h.svc.ListOrdersForAdmin(ctx, actor, filter)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, PageEntityToJSON(page), http.StatusOK)
}

// ListActivity returns the admin activity feed from the audit log.
// @Summary      List activity (admin)
// @Tags         admin
// @Param        order_id  query  string  false  "Filter by order"
// @Param        actor_id  query  string  false  "Filter by actor"
// @Param        limit     query  int     false  "Page size"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {array}  AuditEntry
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /admin/activity [get]
func (h *HTTPHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := actorFromRequest(r)
	if !ok {
		utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	entries, err := h.svc.ListActivity(ctx, actor, entities.ActivityFilter{
		OrderID: q.Get("order_id"),
		ActorID: q.Get("actor_id"),
		Limit:   queryInt(q.Get("limit"), 50),
		Offset:  queryInt(q.Get("offset"), 0),
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list activity")
		return
	}

	result := make([]AuditEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, AuditEntryToJSON(e))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// transition adapts one admin lifecycle command to an HTTP handler.
func (h *HTTPHandler) transition(
	cmd entities.Command,
	fn func(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orderID := chi.URLParam(r, "order_id")

		actor, ok := actorFromRequest(r)
		if !ok {
			utils.WriteError(w, "missing actor context", http.StatusUnauthorized)
			return
		}

		order, err := fn(ctx, orderID, actor)
		observeTransition(cmd, err)
		if err != nil {
			h.writeDomainError(ctx, w, err, "failed to apply "+cmd.String())
			return
		}

		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	}
}

// actorFromRequest reads the identity resolved by the upstream gateway.
// The engine itself performs no authentication.
func actorFromRequest(r *http.Request) (entities.Actor, bool) {
	id := r.Header.Get("X-Actor-ID")
	role, ok := entities.ParseRole(r.Header.Get("X-Actor-Role"))
	if id == "" || !ok {
		return entities.Actor{}, false
	}
	return entities.Actor{ID: id, Role: role}, true
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	var invalid *entities.InvalidTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		utils.WriteJSON(w, InvalidTransitionResponse{
			Message: invalid.Error(),
			Status:  invalid.Status.String(),
			Command: invalid.Command.String(),
		}, http.StatusConflict)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderConflict):
		utils.WriteError(w, "order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrValidation), errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
