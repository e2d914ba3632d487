// Lookup-table reads for the registration form.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// ListColors returns all colors ordered by id.
func ListColors(ctx context.Context, db *gorm.DB) ([]domain.Color, error) {
	var out []domain.Color
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// ListSizes returns all sizes ordered by id.
func ListSizes(ctx context.Context, db *gorm.DB) ([]domain.Size, error) {
	var out []domain.Size
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// ListMainCategories returns all top-level categories ordered by id.
func ListMainCategories(ctx context.Context, db *gorm.DB) ([]domain.MainCategory, error) {
	var out []domain.MainCategory
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// ListSubCategories returns the second-level categories of one main
// category, ordered by id.
func ListSubCategories(ctx context.Context, db *gorm.DB, mainCategoryID uint) ([]domain.SubCategory, error) {
	var out []domain.SubCategory
	err := db.WithContext(ctx).
		Where("main_category_id = ?", mainCategoryID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// ListAllSubCategories returns every second-level category ordered by id,
// for forms that render the whole category tree at once.
func ListAllSubCategories(ctx context.Context, db *gorm.DB) ([]domain.SubCategory, error) {
	var out []domain.SubCategory
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}
