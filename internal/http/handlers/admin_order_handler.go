// Back-office order HTTP handlers.
//
// This file exposes the management endpoints for orders:
//   - GET /admin/orders             (search placed orders, paginated, ETag support)
//   - GET /admin/orders/{detailID}  (one order with its lines)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
// Every row resolves its product name and unit price against the fact that
// was binding at the order's own placement instant, not today's revision.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
)

//
// DTOs
//

// OrderListResponse wraps a page of placed orders and pagination information.
type OrderListResponse struct {
	Orders     []repo.PlacedOrderRow `json:"orders"`
	Pagination Pagination            `json:"pagination"`
}

//
// Handlers
//

// SearchOrders godoc
// @ID          searchOrders
// @Summary     Search placed orders (paginated)
// @Description Returns placed orders matching the filters. The product name filter matches
// @Description the name that was binding when each order was placed, so renaming a product
// @Description never detaches its historical orders. Supports weak ETag via If-None-Match
// @Description and may return 304.
// @Tags        Admin/Orders
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"orders:3:54000:1717200000\")
// @Param       from           query   string  false "Ordered at or after (RFC 3339)"  example(2025-06-01T00:00:00Z)
// @Param       to             query   string  false "Ordered before (RFC 3339)"       example(2025-07-01T00:00:00Z)
// @Param       product_name   query   string  false "Substring match on the name at placement"
// @Param       orderer_name   query   string  false "Exact buyer account name"
// @Param       phone          query   string  false "Exact shipping phone snapshot"
// @Param       order_no       query   int     false "Exact order number"
// @Param       sort           query   string  false "`asc` for oldest first"  Enums(asc, desc)
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.OrderListResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/orders [get]
func (h *Handlers) SearchOrders(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if svc, okSvc := h.orderSvc.(*services.OrderService); okSvc && svc.DB != nil {
		count, revenue, lastTS, err := svc.Stats(ctx)
		if err == nil {
			var ts int64
			if lastTS != nil {
				ts = lastTS.Unix()
			}
			etag := fmt.Sprintf(`W/"orders:%d:%d:%d"`, count, revenue, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	from, okFrom := timeQuery(c, "from")
	to, okTo := timeQuery(c, "to")
	if !okFrom || !okTo {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "from and to must be RFC 3339 timestamps")
		return
	}

	var orderNo uint
	if raw := strings.TrimSpace(c.Query("order_no")); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order_no must be a positive integer")
			return
		}
		orderNo = uint(n)
	}

	f := repo.OrderFilter{
		From:        from,
		To:          to,
		ProductName: strings.TrimSpace(c.Query("product_name")),
		OrdererName: strings.TrimSpace(c.Query("orderer_name")),
		Phone:       strings.TrimSpace(c.Query("phone")),
		OrderNo:     orderNo,
		Ascending:   strings.EqualFold(c.Query("sort"), "asc"),
	}
	page, pageSize := clampPagination(c)

	items, total, err := h.orderSvc.Search(ctx, f, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := totalPagesFor(total, pageSize)
	ok(c, http.StatusOK, OrderListResponse{
		Orders: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetOrderDetail godoc
// @ID          getOrderDetail
// @Summary     Get one order
// @Description Returns the order's frozen snapshot (total, shipping fields, placement
// @Description instant) and its lines, each priced as of placement.
// @Tags        Admin/Orders
// @Produce     json
//
// @Param       detailID  path  int  true  "Order detail ID"  minimum(1)
//
// @Success     200  {object} services.OrderView
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Order not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/orders/{detailID} [get]
func (h *Handlers) GetOrderDetail(c *gin.Context) {
	detailID, okID := uintParam(c, "detailID")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order detail id must be a positive integer")
		return
	}

	view, err := h.orderSvc.Detail(c.Request.Context(), detailID)
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, view)
}
