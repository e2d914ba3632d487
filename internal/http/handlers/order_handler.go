// Order HTTP handlers.
//
// This file exposes the buyer-facing order endpoints:
//   - GET  /orders/checkout   (price a prospective order, reserve nothing)
//   - POST /orders            (place an order atomically)
//
// Handlers are transport-thin:
//   - validate & normalize inputs
//   - delegate to application services (OrderService)
//   - implement idempotency semantics for placement
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// placement exists for (user, key), the handler returns the recorded order
// number again and sets `Idempotency-Replayed: true` instead of placing a
// second order.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
)

// ordersPlaced counts successfully placed orders (replays excluded).
var ordersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "orders_placed_total",
	Help: "Total number of successfully placed orders.",
})

func init() {
	prometheus.MustRegister(ordersPlaced)
}

//
// DTOs
//

// PlaceOrderRequest is the JSON payload for placing an order.
//
// The shipping fields are frozen onto the order as submitted; later edits to
// the account's address on file never alter an existing order.
type PlaceOrderRequest struct {
	// ProductID selects the product to purchase.
	ProductID uint `json:"product_id" binding:"required" example:"12"`
	// ColorID and SizeID select the concrete option.
	ColorID uint `json:"color_id" binding:"required" example:"1"`
	SizeID  uint `json:"size_id" binding:"required" example:"3"`
	// Quantity must fall inside the product's per-order bounds.
	Quantity int64 `json:"quantity" binding:"required,min=1" example:"2"`
	// Receiver is the person the parcel is addressed to.
	Receiver        string `json:"receiver" binding:"required,min=1,max=100" example:"Jamie Blackwood"`
	PhoneNumber     string `json:"phone_number" binding:"required,min=1,max=30" example:"555-0117"`
	Address         string `json:"address" binding:"required,min=1,max=255" example:"221B Baker Street"`
	AddressDetail   string `json:"address_detail" example:"Flat 2"`
	ZipCode         string `json:"zip_code" example:"NW1 6XE"`
	DeliveryRequest string `json:"delivery_request" example:"Leave with the porter"`
}

// PlaceOrderResponse is the JSON envelope for a successful placement.
type PlaceOrderResponse struct {
	// OrderNo is the assigned order number.
	OrderNo uint `json:"order_no" example:"42"`
}

//
// Helpers
//

// orderFailure translates order service errors into HTTP responses.
func orderFailure(c *gin.Context, err error) {
	switch err {
	case services.ErrUnauthorized:
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "unknown buyer account")
	case services.ErrProductUnavailable:
		fail(c, http.StatusNotFound, ErrCodeProductUnavailable, "product or option not available")
	case services.ErrInvalidQuantity:
		fail(c, http.StatusBadRequest, ErrCodeInvalidQuantity, "quantity outside the allowed per-order bounds")
	case services.ErrOutOfStock:
		fail(c, http.StatusConflict, ErrCodeOutOfStock, "not enough stock to fulfil the requested quantity")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
	}
}

// uintQuery parses a positive numeric query parameter; false means absent or
// malformed.
func uintQuery(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

//
// Handlers
//

// CheckoutPreview godoc
// @ID          checkoutPreview
// @Summary     Preview a checkout
// @Description Prices the requested product option and quantity at the current instant and
// @Description returns the buyer's shipping address on file for form prefill. Nothing is
// @Description reserved; the authoritative stock check happens again at placement.
// @Tags        Orders
// @Produce     json
//
// @Param       X-User-ID   header  string  false "User ID (demo header)"  example(1)
// @Param       product_id  query   int     true  "Product ID"             minimum(1)
// @Param       color_id    query   int     true  "Color ID"               minimum(1)
// @Param       size_id     query   int     true  "Size ID"                minimum(1)
// @Param       quantity    query   int     true  "Quantity"               minimum(1)
//
// @Success     200  {object} services.CheckoutSummary
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unknown buyer"
// @Failure     404  {object} handlers.ErrorResponse "Product or option unavailable"
// @Failure     409  {object} handlers.ErrorResponse "Out of stock"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /orders/checkout [get]
func (h *Handlers) CheckoutPreview(c *gin.Context) {
	ctx := c.Request.Context()

	productID, okP := uintQuery(c, "product_id")
	colorID, okC := uintQuery(c, "color_id")
	sizeID, okS := uintQuery(c, "size_id")
	if !okP || !okC || !okS {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product_id, color_id and size_id must be positive integers")
		return
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(c.Query("quantity")), 10, 64)
	if err != nil || qty < 1 {
		fail(c, http.StatusBadRequest, ErrCodeInvalidQuantity, "quantity must be a positive integer")
		return
	}

	sum, err := h.orderSvc.Checkout(ctx, userID(c), productID, colorID, sizeID, qty)
	if err != nil {
		orderFailure(c, err)
		return
	}
	ok(c, http.StatusOK, sum)
}

// PlaceOrder godoc
// @ID          placeOrder
// @Summary     Place an order
// @Description Reserves stock for the selected option and persists the order in one
// @Description transaction. The total is computed server-side from the price and discount
// @Description binding at the placement instant; client-sent amounts are never trusted.
// @Description Supports idempotency via the Idempotency-Key header (same key → same order).
// @Tags        Orders
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(1)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.PlaceOrderRequest  true  "Order payload"
//
// @Success     201  {object} handlers.PlaceOrderResponse "Order placed"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unknown buyer"
// @Failure     404  {object} handlers.ErrorResponse "Product or option unavailable"
// @Failure     409  {object} handlers.ErrorResponse "Out of stock"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /orders [post]
func (h *Handlers) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid order payload")
		return
	}

	currentUser := userID(c)

	// Idempotency replay path: return the recorded order for (user, key).
	idemKey, _ := requestIdempotencyKey(c)
	if idemKey != "" {
		if svc, okSvc := h.orderSvc.(*services.OrderService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, currentUser, idemKey, time.Now().UTC()); err == nil && rec != nil {
				c.Header("Idempotency-Replayed", "true")
				ok(c, http.StatusCreated, PlaceOrderResponse{OrderNo: rec.OrderNo})
				return
			}
		}
	}

	orderNo, err := h.orderSvc.Place(ctx, currentUser, services.PlaceOrderInput{
		ProductID:       req.ProductID,
		ColorID:         req.ColorID,
		SizeID:          req.SizeID,
		Quantity:        req.Quantity,
		Receiver:        strings.TrimSpace(req.Receiver),
		PhoneNumber:     strings.TrimSpace(req.PhoneNumber),
		Address:         strings.TrimSpace(req.Address),
		AddressDetail:   strings.TrimSpace(req.AddressDetail),
		ZipCode:         strings.TrimSpace(req.ZipCode),
		DeliveryRequest: strings.TrimSpace(req.DeliveryRequest),
	})
	if err != nil {
		orderFailure(c, err)
		return
	}
	ordersPlaced.Inc()

	// Idempotency store path, best effort.
	if idemKey != "" {
		if svc, okSvc := h.orderSvc.(*services.OrderService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, currentUser, idemKey, orderNo, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, PlaceOrderResponse{OrderNo: orderNo})
}

// requestIdempotencyKey extracts an idempotency key if an upstream middleware
// has already validated/stashed it. The fallback behavior reads the
// "Idempotency-Key" header directly when no dedicated middleware exists.
func requestIdempotencyKey(c *gin.Context) (string, bool) {
	if v := strings.TrimSpace(c.GetHeader("Idempotency-Key")); v != "" {
		return v, true
	}
	return "", false
}
