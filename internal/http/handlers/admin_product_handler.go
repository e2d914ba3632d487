// Back-office product HTTP handlers.
//
// This file exposes the management endpoints under /admin:
//   - POST   /admin/products              (register a product with options, stock, images)
//   - GET    /admin/products              (search registered products, paginated)
//   - PUT    /admin/products/{id}/detail  (publish a new merchandising revision)
//   - DELETE /admin/products/{id}         (delist a product)
//   - PUT    /admin/options/{id}/stock    (overwrite an option's stock)
//   - GET    /admin/attributes            (lookup sets for registration forms)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Detail revisions never update
// rows in place; each PUT closes the current fact and opens a new one, so
// historical orders keep resolving against the values they were placed under.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
)

//
// DTOs
//

// ProductDetailRequest carries one merchandising revision. Optional fields
// left null are stored as NULL on the new fact, not inherited from the
// previous revision.
type ProductDetailRequest struct {
	// Name is the display name shown on the storefront.
	Name             string `json:"name" binding:"required,min=1,max=255" example:"Linen Shirt"`
	ShortDescription string `json:"short_description" binding:"max=255" example:"Breezy summer staple"`
	Description      string `json:"description"`
	// SubCategoryID optionally files the product under a sub category.
	SubCategoryID *uint `json:"sub_category_id" example:"3"`
	// Price is the list price in minor currency units.
	Price int64 `json:"price" binding:"min=0" example:"12900"`
	// DiscountRate is a whole percentage in [0, 100]; null means no discount.
	DiscountRate  *int64     `json:"discount_rate" example:"10"`
	DiscountStart *time.Time `json:"discount_start" example:"2025-06-01T00:00:00Z"`
	DiscountEnd   *time.Time `json:"discount_end" example:"2025-06-30T00:00:00Z"`
	// MinSalesQuantity and MaxSalesQuantity bound the quantity of one order.
	MinSalesQuantity int64 `json:"min_sales_quantity" example:"1"`
	MaxSalesQuantity int64 `json:"max_sales_quantity" example:"10"`
	// IsActivated gates purchasing; IsDisplayed gates listing.
	IsActivated bool `json:"is_activated" example:"true"`
	IsDisplayed bool `json:"is_displayed" example:"true"`
}

// RegisterOptionRequest is one sellable (color, size) combination with its
// launch stock.
type RegisterOptionRequest struct {
	ColorID  uint  `json:"color_id" binding:"required" example:"1"`
	SizeID   uint  `json:"size_id" binding:"required" example:"3"`
	Quantity int64 `json:"quantity" binding:"min=0" example:"25"`
}

// RegisterImageRequest is one listing image attached at registration.
type RegisterImageRequest struct {
	URL    string `json:"url" binding:"required,min=1,max=2048" example:"https://cdn.example.com/p/linen-shirt-main.jpg"`
	IsMain bool   `json:"is_main" example:"true"`
}

// RegisterProductRequest is the JSON payload for registering a product.
type RegisterProductRequest struct {
	Detail  ProductDetailRequest    `json:"detail" binding:"required"`
	Options []RegisterOptionRequest `json:"options" binding:"required,min=1,dive"`
	Images  []RegisterImageRequest  `json:"images" binding:"dive"`
}

// RegisterProductResponse is the JSON envelope for a successful registration.
type RegisterProductResponse struct {
	// ProductID is the id of the newly registered product.
	ProductID uint `json:"product_id" example:"12"`
}

// SetStockRequest is the JSON payload for overwriting an option's stock.
type SetStockRequest struct {
	// Quantity is the absolute new stock level (not a delta).
	Quantity int64 `json:"quantity" binding:"min=0" example:"40"`
}

// AdminProductListResponse wraps a page of registered products and pagination
// information.
type AdminProductListResponse struct {
	Products   []repo.RegisteredProduct `json:"products"`
	Pagination Pagination               `json:"pagination"`
}

//
// Helpers
//

// toDetailInput maps the transport DTO onto the service input.
func toDetailInput(req ProductDetailRequest) services.ProductDetailInput {
	return services.ProductDetailInput{
		Name:             strings.TrimSpace(req.Name),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		Description:      strings.TrimSpace(req.Description),
		SubCategoryID:    req.SubCategoryID,
		Price:            req.Price,
		DiscountRate:     req.DiscountRate,
		DiscountStart:    req.DiscountStart,
		DiscountEnd:      req.DiscountEnd,
		MinSalesQuantity: req.MinSalesQuantity,
		MaxSalesQuantity: req.MaxSalesQuantity,
		IsActivated:      req.IsActivated,
		IsDisplayed:      req.IsDisplayed,
	}
}

// productFailure translates product service errors into HTTP responses.
func productFailure(c *gin.Context, err error) {
	switch err {
	case services.ErrProductNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
	case services.ErrOptionNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, "option not found")
	case services.ErrInvalidPrice, services.ErrInvalidDiscount, services.ErrInvalidSalesBounds:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrInvalidQuantity:
		fail(c, http.StatusBadRequest, ErrCodeInvalidQuantity, "quantity must not be negative")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// boolQuery parses an optional tri-state boolean query parameter. Returns
// (nil, true) when absent; false means malformed.
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &b, true
}

// timeQuery parses an optional RFC 3339 query parameter. Returns (nil, true)
// when absent; false means malformed.
func timeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
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

//
// Handlers
//

// RegisterProduct godoc
// @ID          registerProduct
// @Summary     Register a product
// @Description Creates the product identity with a generated unique code, opens its first
// @Description detail fact, creates the (color, size) options with their launch stock, and
// @Description attaches listing images, all in one transaction.
// @Tags        Admin/Products
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterProductRequest  true  "Registration payload"
//
// @Success     201  {object} handlers.RegisterProductResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/products [post]
func (h *Handlers) RegisterProduct(c *gin.Context) {
	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid registration payload")
		return
	}

	in := services.RegisterProductInput{Detail: toDetailInput(req.Detail)}
	for _, o := range req.Options {
		in.Options = append(in.Options, services.RegisterOption{ColorID: o.ColorID, SizeID: o.SizeID, Quantity: o.Quantity})
	}
	for _, img := range req.Images {
		in.Images = append(in.Images, services.RegisterImage{URL: strings.TrimSpace(img.URL), IsMain: img.IsMain})
	}

	id, err := h.productSvc.Register(c.Request.Context(), in)
	if err != nil {
		productFailure(c, err)
		return
	}
	ok(c, http.StatusCreated, RegisterProductResponse{ProductID: id})
}

// SearchProducts godoc
// @ID          searchProducts
// @Summary     Search registered products (paginated)
// @Description Returns registered products matching the filters, newest first, each with the
// @Description currently open detail fact joined in. Products whose fact is closed (delisted
// @Description or not yet relaunched) are excluded.
// @Tags        Admin/Products
// @Produce     json
//
// @Param       name       query  string  false "Substring match on the current name"
// @Param       code       query  string  false "Exact product code"
// @Param       from       query  string  false "Registered at or after (RFC 3339)"  example(2025-01-01T00:00:00Z)
// @Param       to         query  string  false "Registered before (RFC 3339)"       example(2025-07-01T00:00:00Z)
// @Param       activated  query  bool    false "Filter by activation flag"
// @Param       displayed  query  bool    false "Filter by display flag"
// @Param       page       query  int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.AdminProductListResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/products [get]
func (h *Handlers) SearchProducts(c *gin.Context) {
	ctx := c.Request.Context()

	from, okFrom := timeQuery(c, "from")
	to, okTo := timeQuery(c, "to")
	if !okFrom || !okTo {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "from and to must be RFC 3339 timestamps")
		return
	}
	activated, okAct := boolQuery(c, "activated")
	displayed, okDisp := boolQuery(c, "displayed")
	if !okAct || !okDisp {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "activated and displayed must be booleans")
		return
	}

	f := repo.ProductFilter{
		Name:           strings.TrimSpace(c.Query("name")),
		Code:           strings.TrimSpace(c.Query("code")),
		RegisteredFrom: from,
		RegisteredTo:   to,
		IsActivated:    activated,
		IsDisplayed:    displayed,
	}
	page, pageSize := clampPagination(c)

	items, total, err := h.productSvc.Search(ctx, f, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := totalPagesFor(total, pageSize)
	ok(c, http.StatusOK, AdminProductListResponse{
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

// UpdateProductDetail godoc
// @ID          updateProductDetail
// @Summary     Publish a new merchandising revision
// @Description Closes the product's open detail fact and opens a new one carrying the
// @Description submitted values. Orders placed before this call keep resolving against the
// @Description superseded fact.
// @Tags        Admin/Products
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                               true  "Product ID"  minimum(1)
// @Param       body  body  handlers.ProductDetailRequest  true  "New revision payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Product not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/products/{id}/detail [put]
func (h *Handlers) UpdateProductDetail(c *gin.Context) {
	productID, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a positive integer")
		return
	}

	var req ProductDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid revision payload")
		return
	}

	if err := h.productSvc.UpdateDetail(c.Request.Context(), productID, toDetailInput(req)); err != nil {
		productFailure(c, err)
		return
	}
	noContent(c)
}

// DelistProduct godoc
// @ID          delistProduct
// @Summary     Delist a product
// @Description Closes the product's open detail and image facts and soft-deletes its
// @Description identity. The history stays queryable, so existing orders keep resolving
// @Description their name and price snapshots.
// @Tags        Admin/Products
// @Produce     json
//
// @Param       id  path  int  true  "Product ID"  minimum(1)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Product not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/products/{id} [delete]
func (h *Handlers) DelistProduct(c *gin.Context) {
	productID, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a positive integer")
		return
	}

	if err := h.productSvc.Delist(c.Request.Context(), productID); err != nil {
		productFailure(c, err)
		return
	}
	noContent(c)
}

// SetStock godoc
// @ID          setStock
// @Summary     Overwrite an option's stock
// @Description Sets the option's live counter to the absolute quantity and records the
// @Description change as a new fact in the stock ledger.
// @Tags        Admin/Products
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                        true  "Option ID"  minimum(1)
// @Param       body  body  handlers.SetStockRequest  true  "New stock level"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Option not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/options/{id}/stock [put]
func (h *Handlers) SetStock(c *gin.Context) {
	optionID, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "option id must be a positive integer")
		return
	}

	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid stock payload")
		return
	}

	if err := h.productSvc.SetStock(c.Request.Context(), optionID, req.Quantity); err != nil {
		productFailure(c, err)
		return
	}
	noContent(c)
}

// ListAttributes godoc
// @ID          listAttributes
// @Summary     List product attributes
// @Description Returns the color, size, and category lookup sets registration forms need.
// @Tags        Admin/Products
// @Produce     json
//
// @Success     200  {object} services.ProductAttributes
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/attributes [get]
func (h *Handlers) ListAttributes(c *gin.Context) {
	attrs, err := h.productSvc.Attributes(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, attrs)
}
