// Package services – CatalogService
//
// This file implements the CatalogService, the storefront's read side. It
// resolves product facts at a reference instant (defaulting to now), prices
// them with the discount activation rule, and joins live option
// availability. Handlers pass an optional ?at instant through unchanged, so
// one code path serves both current listings and historical views.
//
// Stock is deliberately not historical: availability always reflects the
// live counters, whatever instant the caller asked prices for.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-shop-backend/internal/repo"
)

// ProductSummary is one storefront listing row, priced at the reference
// instant.
type ProductSummary struct {
	ProductID        uint   `json:"product_id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description,omitempty"`
	Price            int64  `json:"price"`
	DiscountRate     int64  `json:"discount_rate"`
	EffectivePrice   int64  `json:"effective_price"`
	ImageURL         string `json:"image_url,omitempty"`
	SoldOut          bool   `json:"sold_out"`
}

// ImageView is one listing image of a product page.
type ImageView struct {
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// ProductView is the full storefront product page: the fact binding at the
// reference instant plus images and live option availability.
type ProductView struct {
	ProductID        uint                      `json:"product_id"`
	Code             string                    `json:"code"`
	Name             string                    `json:"name"`
	ShortDescription string                    `json:"short_description,omitempty"`
	Description      string                    `json:"description,omitempty"`
	Price            int64                     `json:"price"`
	DiscountRate     int64                     `json:"discount_rate"`
	EffectivePrice   int64                     `json:"effective_price"`
	MinSalesQuantity int64                     `json:"min_sales_quantity"`
	MaxSalesQuantity int64                     `json:"max_sales_quantity"`
	IsActivated      bool                      `json:"is_activated"`
	Images           []ImageView               `json:"images"`
	Options          []repo.OptionAvailability `json:"options"`
}

// CatalogService serves the buyer-facing catalog reads.
type CatalogService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// PageSize is the default listing page size when the caller sends none.
	PageSize int
}

// NewCatalogService constructs a CatalogService with the default page size.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db, PageSize: 20}
}

// ProductPage returns one page of displayed products priced at the given
// instant (nil means now), plus the unpaginated total.
func (s *CatalogService) ProductPage(ctx context.Context, at *time.Time, page, pageSize int) ([]ProductSummary, int64, error) {
	ref := refInstant(at)
	tr := otel.Tracer("services/CatalogService")
	ctx, span := tr.Start(ctx, "ProductPage",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
			attribute.String("at", ref.Format(time.RFC3339)),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	size := s.pageSize(pageSize)
	offset := (page - 1) * size

	total, err := repo.CountDisplayedAt(ctx, s.DB, ref)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []ProductSummary{}, 0, nil
	}

	details, err := repo.ListDisplayedDetailsAt(ctx, s.DB, ref, offset, size)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProductSummary, 0, len(details))
	for _, d := range details {
		row := ProductSummary{
			ProductID:        d.ProductID,
			Name:             d.Name,
			ShortDescription: d.ShortDescription,
			Price:            d.Price,
			DiscountRate:     d.DiscountRateAt(ref),
			EffectivePrice:   d.EffectivePriceAt(ref),
		}
		imgs, err := repo.ActiveImagesAt(ctx, s.DB, d.ProductID, ref)
		if err != nil {
			return nil, 0, err
		}
		if len(imgs) > 0 {
			row.ImageURL = imgs[0].URL
		}
		// Live counter, even for historical listings.
		stock, err := repo.SumProductStock(ctx, s.DB, d.ProductID)
		if err != nil {
			return nil, 0, err
		}
		row.SoldOut = stock <= 0
		out = append(out, row)
	}
	return out, total, nil
}

// Product returns the full product page at the given instant (nil means
// now). A product with no binding fact at that instant, whether not yet on
// sale or already delisted, yields ErrProductUnavailable; an unknown or
// deleted identity yields ErrProductNotFound.
func (s *CatalogService) Product(ctx context.Context, productID uint, at *time.Time) (*ProductView, error) {
	ref := refInstant(at)
	tr := otel.Tracer("services/CatalogService")
	ctx, span := tr.Start(ctx, "Product",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
			attribute.String("at", ref.Format(time.RFC3339)),
		),
	)
	defer span.End()

	p, err := repo.GetProduct(ctx, s.DB, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	d, err := repo.ActiveDetailAt(ctx, s.DB, productID, ref)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, err
	}

	imgs, err := repo.ActiveImagesAt(ctx, s.DB, productID, ref)
	if err != nil {
		return nil, err
	}
	opts, err := repo.ListOptionAvailability(ctx, s.DB, productID)
	if err != nil {
		return nil, err
	}

	view := &ProductView{
		ProductID:        p.ID,
		Code:             p.Code,
		Name:             d.Name,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		Price:            d.Price,
		DiscountRate:     d.DiscountRateAt(ref),
		EffectivePrice:   d.EffectivePriceAt(ref),
		MinSalesQuantity: d.MinSalesQuantity,
		MaxSalesQuantity: d.MaxSalesQuantity,
		IsActivated:      d.IsActivated,
		Images:           make([]ImageView, 0, len(imgs)),
		Options:          opts,
	}
	for _, img := range imgs {
		view.Images = append(view.Images, ImageView{URL: img.URL, IsMain: img.IsMain})
	}
	return view, nil
}

// ColorOptions returns the remaining size/stock combinations of one color of
// a product. A combination with no options at all yields ErrColorNotFound so
// the handler can distinguish "bad color" from "all sizes sold out".
func (s *CatalogService) ColorOptions(ctx context.Context, productID, colorID uint) ([]repo.OptionAvailability, error) {
	rows, err := repo.ListColorAvailability(ctx, s.DB, productID, colorID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrColorNotFound
	}
	return rows, nil
}

func (s *CatalogService) pageSize(n int) int {
	if n > 0 {
		return n
	}
	if s.PageSize > 0 {
		return s.PageSize
	}
	return 20
}

// refInstant normalizes the optional reference instant: nil means now.
func refInstant(at *time.Time) time.Time {
	if at != nil {
		return at.UTC()
	}
	return time.Now().UTC()
}
