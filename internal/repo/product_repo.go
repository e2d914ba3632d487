// Package repo implements the data persistence layer for the storefront,
// backed by GORM. This file provides repository functions for catalog
// identity rows, temporal snapshot resolution, and option availability.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Temporal resolution:
//
//	Product attributes live on product_details fact rows valid over
//	half-open intervals [start_time, close_time). ActiveDetailAt picks the
//	single row whose interval contains the reference instant; a product
//	with no such row (not yet on sale, or delisted) resolves to
//	ErrNotFound, never to a zero price. Option stock reads always use the
//	materialized product_options.current_quantity counter and are never
//	historical.
//
// Functions:
//
//   - CreateProduct(ctx, db, code) -> *domain.Product, error
//   - GetProduct(ctx, db, id) -> *domain.Product, error
//   - SoftDeleteProduct(ctx, tx, id) -> error
//   - CreateOption(ctx, db, productID, colorID, sizeID, qty) -> *domain.ProductOption, error
//   - FindActiveOption(ctx, db, productID, colorID, sizeID) -> *domain.ProductOption, error
//   - ActiveDetailAt(ctx, db, productID, at) -> *domain.ProductDetail, error
//   - ActiveImagesAt(ctx, db, productID, at) -> []domain.ProductImage, error
//   - ListDisplayedDetailsAt(ctx, db, at, offset, limit) -> []domain.ProductDetail, error
//   - CountDisplayedAt(ctx, db, at) -> int64, error
//   - SumProductStock(ctx, db, productID) -> int64, error
//   - ListOptionAvailability(ctx, db, productID) -> []OptionAvailability, error
//   - ListColorAvailability(ctx, db, productID, colorID) -> []OptionAvailability, error
//
// This repository is designed to be wrapped by higher-level services
// (see services.CatalogService and services.ProductService) which enforce
// business rules and transaction boundaries.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/timeline"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// OptionAvailability is a read projection of one sellable option joined
// with its color and size names and the live stock counter.
type OptionAvailability struct {
	OptionID  uint   `json:"option_id"`
	ColorID   uint   `json:"color_id"`
	ColorName string `json:"color"`
	SizeID    uint   `json:"size_id"`
	SizeName  string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// CreateProduct inserts a new catalog identity row with the given unique
// code. On success, it returns the persisted Product.
func CreateProduct(ctx context.Context, db *gorm.DB, code string) (*domain.Product, error) {
	p := &domain.Product{Code: code}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct fetches a product identity row by id, excluding soft-deleted
// rows. Returns ErrNotFound if missing.
func GetProduct(ctx context.Context, db *gorm.DB, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SoftDeleteProduct marks the identity row deleted. Fact rows and order
// history referencing the product are untouched. Returns ErrNotFound when
// the product does not exist or is already deleted.
func SoftDeleteProduct(ctx context.Context, tx *gorm.DB, id uint) error {
	res := tx.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateOption inserts one (product, color, size) combination with its
// initial counter value. The matching stock fact is opened by the caller in
// the same transaction so counter and ledger start in lockstep.
func CreateOption(ctx context.Context, db *gorm.DB, productID, colorID, sizeID uint, qty int64) (*domain.ProductOption, error) {
	o := &domain.ProductOption{
		ProductID:       productID,
		ColorID:         colorID,
		SizeID:          sizeID,
		CurrentQuantity: qty,
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// FindActiveOption fetches the non-deleted option for the exact
// (product, color, size) triple. Returns ErrNotFound if the combination
// does not exist or was soft-deleted.
func FindActiveOption(ctx context.Context, db *gorm.DB, productID, colorID, sizeID uint) (*domain.ProductOption, error) {
	var o domain.ProductOption
	err := db.WithContext(ctx).
		Where("product_id = ? AND color_id = ? AND size_id = ?", productID, colorID, sizeID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ActiveDetailAt resolves the product's price/discount fact whose validity
// interval contains at. Returns ErrNotFound when no fact is active at that
// instant (product not yet on sale, or already delisted).
func ActiveDetailAt(ctx context.Context, db *gorm.DB, productID uint, at time.Time) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Scopes(timeline.ActiveAt(at)).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ActiveImagesAt returns the product's images whose validity interval
// contains at, main image first. An empty slice means the product had no
// images at that instant.
func ActiveImagesAt(ctx context.Context, db *gorm.DB, productID uint, at time.Time) ([]domain.ProductImage, error) {
	var out []domain.ProductImage
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Scopes(timeline.ActiveAt(at)).
		Order("is_main desc, id asc").
		Find(&out).Error
	return out, err
}

// ListDisplayedDetailsAt returns a page of storefront-visible product facts
// active at the reference instant, newest product first. Soft-deleted
// products and facts flagged not displayed are excluded.
func ListDisplayedDetailsAt(ctx context.Context, db *gorm.DB, at time.Time, offset, limit int) ([]domain.ProductDetail, error) {
	var out []domain.ProductDetail
	err := displayedAt(db.WithContext(ctx), at).
		Order("product_details.product_id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountDisplayedAt returns the total number of storefront-visible products
// at the reference instant, for pagination metadata.
func CountDisplayedAt(ctx context.Context, db *gorm.DB, at time.Time) (int64, error) {
	var total int64
	err := displayedAt(db.WithContext(ctx), at).Count(&total).Error
	return total, err
}

// displayedAt composes the storefront visibility predicate: a displayed
// detail fact active at the instant, owned by a non-deleted product.
func displayedAt(db *gorm.DB, at time.Time) *gorm.DB {
	// Select only detail columns: the joined products row shares column
	// names (id, created_at) and must not bleed into the scan.
	return db.Model(&domain.ProductDetail{}).
		Select("product_details.*").
		Joins("JOIN products ON products.id = product_details.product_id AND products.deleted_at IS NULL").
		Scopes(timeline.ActiveAt(at)).
		Where("product_details.is_displayed = ?", true)
}

// SumProductStock returns the summed live counter across the product's
// non-deleted options. A product with no options sums to zero.
func SumProductStock(ctx context.Context, db *gorm.DB, productID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ProductOption{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(current_quantity), 0)").
		Scan(&total).Error
	return total, err
}

// ListOptionAvailability returns every non-deleted option of the product
// with color/size names and live stock, ordered by color then size.
func ListOptionAvailability(ctx context.Context, db *gorm.DB, productID uint) ([]OptionAvailability, error) {
	return optionAvailability(ctx, db, "product_options.product_id = ?", productID)
}

// ListColorAvailability returns the remaining size/quantity combinations of
// one color of the product. An empty slice means the (product, color)
// combination has no active option; callers decide how to surface that.
func ListColorAvailability(ctx context.Context, db *gorm.DB, productID, colorID uint) ([]OptionAvailability, error) {
	return optionAvailability(ctx, db, "product_options.product_id = ? AND product_options.color_id = ?", productID, colorID)
}

func optionAvailability(ctx context.Context, db *gorm.DB, cond string, args ...any) ([]OptionAvailability, error) {
	var out []OptionAvailability
	err := db.WithContext(ctx).
		Model(&domain.ProductOption{}).
		Select("product_options.id AS option_id, product_options.color_id AS color_id, colors.name AS color_name, product_options.size_id AS size_id, sizes.name AS size_name, product_options.current_quantity AS quantity").
		Joins("JOIN colors ON colors.id = product_options.color_id").
		Joins("JOIN sizes ON sizes.id = product_options.size_id").
		Where(cond, args...).
		Order("product_options.color_id asc, product_options.size_id asc").
		Scan(&out).Error
	return out, err
}
