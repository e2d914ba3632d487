// Package repo implements the data persistence layer for the storefront,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// OrderStats returns aggregate metadata over placed orders: the row count,
// the summed frozen totals, and the most recent order instant.
//
// When no orders exist, the returned count and revenue are 0 and lastOrdered
// is nil. Sums use the totals frozen at placement, so later catalog changes
// never move historical revenue.
//
// Return values:
//   - count:       total placed order details
//   - revenue:     sum of their frozen total_price values
//   - lastOrdered: pointer to the greatest ordered_at, or nil if no rows
//   - err:         database error, if any
func OrderStats(ctx context.Context, db *gorm.DB) (count int64, revenue int64, lastOrdered *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.OrderDetail{}).
		Where("order_status_id = ?", domain.StatusPlaced)

	if err = q.Count(&count).Error; err != nil {
		return 0, 0, nil, err
	}
	if count == 0 {
		return 0, 0, nil, nil
	}

	var sum struct {
		Revenue int64
	}
	if err = q.Select("COALESCE(SUM(total_price), 0) AS revenue").Scan(&sum).Error; err != nil {
		return 0, 0, nil, err
	}

	// Get latest ordered_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		OrderedAt time.Time
	}
	if err = q.Select("ordered_at").Order("ordered_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, 0, nil, err
	}
	return count, sum.Revenue, &row.OrderedAt, nil
}

// CatalogStats returns aggregate metadata over live catalog rows: the number
// of non-deleted products and the most recent product update time.
//
// Return values:
//   - count:        total non-deleted products
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func CatalogStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Product{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
