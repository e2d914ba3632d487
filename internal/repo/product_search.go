// Back-office product search.
//
// Registered products are listed with their open-ended detail fact. Every
// optional filter is one composable predicate on the query builder; nothing
// is assembled by string concatenation. Delisted products have no open fact
// and drop out of this listing, as do soft-deleted identity rows.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/timeline"
)

// ProductFilter carries the optional predicates of the back-office product
// search. Zero values mean "not filtered".
type ProductFilter struct {
	Name           string     // substring match on the current name
	Code           string     // exact product code
	RegisteredFrom *time.Time // products.created_at >= RegisteredFrom
	RegisteredTo   *time.Time // products.created_at < RegisteredTo
	IsActivated    *bool      // current activation flag
	IsDisplayed    *bool      // current display flag
}

// RegisteredProduct is one row of the back-office product listing: identity
// joined with the currently binding detail fact.
type RegisteredProduct struct {
	ProductID    uint      `json:"product_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	DiscountRate *int64    `json:"discount_rate,omitempty"`
	IsActivated  bool      `json:"is_activated"`
	IsDisplayed  bool      `json:"is_displayed"`
	RegisteredAt time.Time `json:"registered_at"`
}

// SearchRegisteredProducts returns one page of registered products matching
// the filter, newest registration first, plus the unpaginated total.
func SearchRegisteredProducts(ctx context.Context, db *gorm.DB, f ProductFilter, offset, limit int) ([]RegisteredProduct, int64, error) {
	base := func() *gorm.DB { return registeredProducts(db.WithContext(ctx), f) }

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []RegisteredProduct
	err := base().
		Select("products.id AS product_id, products.code AS code, product_details.name AS name, product_details.price AS price, product_details.discount_rate AS discount_rate, product_details.is_activated AS is_activated, product_details.is_displayed AS is_displayed, products.created_at AS registered_at").
		Order("products.id desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

// registeredProducts composes the identity/open-fact join with the filter's
// predicates applied.
func registeredProducts(db *gorm.DB, f ProductFilter) *gorm.DB {
	q := db.Model(&domain.Product{}).
		Joins("JOIN product_details ON product_details.product_id = products.id AND product_details.close_time = ?", timeline.OpenEnd)

	if f.Name != "" {
		q = q.Where("product_details.name LIKE ?", "%"+f.Name+"%")
	}
	if f.Code != "" {
		q = q.Where("products.code = ?", f.Code)
	}
	if f.RegisteredFrom != nil {
		q = q.Where("products.created_at >= ?", f.RegisteredFrom.UTC())
	}
	if f.RegisteredTo != nil {
		q = q.Where("products.created_at < ?", f.RegisteredTo.UTC())
	}
	if f.IsActivated != nil {
		q = q.Where("product_details.is_activated = ?", *f.IsActivated)
	}
	if f.IsDisplayed != nil {
		q = q.Where("product_details.is_displayed = ?", *f.IsDisplayed)
	}
	return q
}
