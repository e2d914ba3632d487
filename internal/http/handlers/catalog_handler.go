// Storefront catalog HTTP handlers.
//
// This file exposes the buyer-facing read endpoints:
//   - GET /products                      (displayed listing, paginated, time-travel)
//   - GET /products/{id}                 (product page at an instant)
//   - GET /products/{id}/colors/{colorID} (size availability for one color)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Every read accepts an optional
// `at` query parameter (RFC 3339) selecting the reference instant; omitting it
// serves the catalog as it stands right now.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
	"github.com/tbourn/go-shop-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// CatalogService defines the storefront read operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CatalogService interface {
	// ProductPage returns one page of products displayed at the instant and
	// the total count. A nil instant means now.
	ProductPage(ctx context.Context, at *time.Time, page, pageSize int) ([]services.ProductSummary, int64, error)
	// Product returns the full product page priced at the instant.
	Product(ctx context.Context, productID uint, at *time.Time) (*services.ProductView, error)
	// ColorOptions returns live size availability for one color of a product.
	ColorOptions(ctx context.Context, productID, colorID uint) ([]repo.OptionAvailability, error)
}

// OrderService defines checkout and order operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type OrderService interface {
	// Checkout prices a prospective order without reserving anything.
	Checkout(ctx context.Context, userID, productID, colorID, sizeID uint, qty int64) (*services.CheckoutSummary, error)
	// Place reserves stock and persists the order atomically, returning the
	// assigned order number.
	Place(ctx context.Context, userID uint, in services.PlaceOrderInput) (uint, error)
	// Search returns a page of placed orders matching the filter.
	Search(ctx context.Context, f repo.OrderFilter, page, pageSize int) ([]repo.PlacedOrderRow, int64, error)
	// Detail returns one order with its lines, priced as of placement.
	Detail(ctx context.Context, detailID uint) (*services.OrderView, error)
}

// ProductService defines the back-office catalog operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProductService interface {
	// Register creates a product with its first detail fact, options, stock,
	// and images, returning the new product id.
	Register(ctx context.Context, in services.RegisterProductInput) (uint, error)
	// UpdateDetail supersedes the product's open detail fact.
	UpdateDetail(ctx context.Context, productID uint, in services.ProductDetailInput) error
	// Delist retires the product's open facts and soft-deletes its identity.
	Delist(ctx context.Context, productID uint) error
	// SetStock overwrites an option's live counter and opens a new stock fact.
	SetStock(ctx context.Context, optionID uint, qty int64) error
	// Search returns a page of registered products matching the filter.
	Search(ctx context.Context, f repo.ProductFilter, page, pageSize int) ([]repo.RegisteredProduct, int64, error)
	// Attributes returns the lookup sets needed by registration forms.
	Attributes(ctx context.Context) (*services.ProductAttributes, error)
}

// UserService defines account operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Register creates an account with a normalized, unique email.
	Register(ctx context.Context, name, email string) (*domain.User, error)
	// Get returns an active account by id.
	Get(ctx context.Context, id uint) (*domain.User, error)
	// ListPage returns a page of accounts, newest first, and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.User, int64, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for the storefront, orders, back-office
// catalog management, and accounts. It depends on abstract service interfaces
// to keep transport concerns separate from business logic.
type Handlers struct {
	catalogSvc CatalogService
	orderSvc   OrderService
	productSvc ProductService
	userSvc    UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(catalogSvc CatalogService, orderSvc OrderService, productSvc ProductService, userSvc UserService) *Handlers {
	return &Handlers{catalogSvc: catalogSvc, orderSvc: orderSvc, productSvc: productSvc, userSvc: userSvc}
}

// demoUserID is the account served when no identity reached the handler.
// Keeps local development and the swagger playground usable without auth.
const demoUserID uint = 1

// userID extracts the authenticated account id from Gin context (set by
// upstream middleware). If absent, it falls back to the "X-User-ID" header
// (tests use it), and finally to the demo account. It never touches
// c.Request if it's nil.
func userID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok && id != 0 {
			return id
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			if id, err := strconv.ParseUint(h, 10, 64); err == nil && id != 0 {
				return uint(id)
			}
		}
	}
	return demoUserID
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ProductListResponse wraps a page of storefront products and pagination
// information.
type ProductListResponse struct {
	Products   []services.ProductSummary `json:"products"`
	Pagination Pagination                `json:"pagination"`
}

// ColorOptionsResponse lists the live size availability for one color.
type ColorOptionsResponse struct {
	Options []repo.OptionAvailability `json:"options"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPageSize = 20
		maxPageSize     = 100
	)
	return utils.PageParams(c.Query("page"), c.Query("page_size"), defaultPageSize, maxPageSize)
}

// parseAt reads the optional `at` query parameter as an RFC 3339 instant.
// Returns (nil, true) when absent, meaning "now". The bool is false only for
// a malformed value, which callers should reject.
func parseAt(c *gin.Context) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query("at"))
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	t = t.UTC()
	return &t, true
}

// uintParam parses a positive numeric path parameter; false means malformed.
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// totalPagesFor computes the page count for a total at the given page size.
func totalPagesFor(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

//
// Handlers
//

// ListProducts godoc
// @ID          listProducts
// @Summary     List storefront products (paginated)
// @Description Returns the page of products displayed at the reference instant, newest first,
// @Description each priced as of that instant. Pass `at` to browse the catalog as it stood at
// @Description any past moment; current stock decides the sold-out badge either way.
// @Tags        Catalog
// @Produce     json
//
// @Param       at         query  string  false "Reference instant (RFC 3339); defaults to now"  example(2025-06-01T00:00:00Z)
// @Param       page       query  int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ProductListResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	at, okAt := parseAt(c)
	if !okAt {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at must be an RFC 3339 timestamp")
		return
	}
	page, pageSize := clampPagination(c)

	items, total, err := h.catalogSvc.ProductPage(ctx, at, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := totalPagesFor(total, pageSize)
	ok(c, http.StatusOK, ProductListResponse{
		Products: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product page
// @Description Returns the product's detail fact binding at the reference instant, its images,
// @Description and live option availability. A product that exists but has no fact at the
// @Description instant (not yet launched, or delisted) reports product_unavailable.
// @Tags        Catalog
// @Produce     json
//
// @Param       id  path   int     true  "Product ID"  minimum(1)
// @Param       at  query  string  false "Reference instant (RFC 3339); defaults to now"  example(2025-06-01T00:00:00Z)
//
// @Success     200  {object} services.ProductView
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Product missing or unavailable"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a positive integer")
		return
	}
	at, okAt := parseAt(c)
	if !okAt {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at must be an RFC 3339 timestamp")
		return
	}

	view, err := h.catalogSvc.Product(ctx, productID, at)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		case services.ErrProductUnavailable:
			fail(c, http.StatusNotFound, ErrCodeProductUnavailable, "product not available at this instant")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, view)
}

// ListColorOptions godoc
// @ID          listColorOptions
// @Summary     List size availability for a color
// @Description Returns the product's options in the given color with live stock counters,
// @Description ordered by size. Options whose counter reached zero are included with
// @Description quantity 0 so clients can render them greyed out.
// @Tags        Catalog
// @Produce     json
//
// @Param       id       path  int  true "Product ID"  minimum(1)
// @Param       colorID  path  int  true "Color ID"    minimum(1)
//
// @Success     200  {object} handlers.ColorOptionsResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "No options in this color"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /products/{id}/colors/{colorID} [get]
func (h *Handlers) ListColorOptions(c *gin.Context) {
	ctx := c.Request.Context()

	productID, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a positive integer")
		return
	}
	colorID, okColor := uintParam(c, "colorID")
	if !okColor {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "color id must be a positive integer")
		return
	}

	opts, err := h.catalogSvc.ColorOptions(ctx, productID, colorID)
	if err != nil {
		switch err {
		case services.ErrColorNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no options for this product and color")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ColorOptionsResponse{Options: opts})
}
