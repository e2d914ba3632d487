// Inventory ledger persistence.
//
// Each product option carries a materialized current_quantity counter (the
// checkout fast path) plus an append-only stock_levels fact history. Every
// mutation here touches both in the same transaction, so the counter always
// equals the quantity of the option's open-ended fact.
//
// The one hard concurrency invariant of the system lives in ReserveStock:
// the stock check and decrement are a single conditional UPDATE
// ("decrement where current >= requested"), so two concurrent purchases of
// the last unit can never both succeed and the counter can never go
// negative. The loser observes ErrInsufficientStock.
//
// Functions:
//
//   - ReserveStock(ctx, tx, optionID, qty, at) -> newQty, error
//     Atomic check-and-decrement plus ledger supersession. Must run inside
//     the order placement transaction.
//
//   - SetStockLevel(ctx, tx, optionID, qty, at) -> error
//     Absolute restock: sets the counter and supersedes the fact.
//
//   - CurrentQuantity(ctx, db, optionID) -> int64, error
//     Live counter read; never historical.
//
//   - OpenStockFact(ctx, db, optionID) -> *domain.StockLevel, error
//     The option's open-ended ledger row.
//
//   - StockHistory(ctx, db, optionID, limit) -> []domain.StockLevel, error
//     Most recent ledger rows, newest first.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/timeline"
)

// ErrInsufficientStock is returned when a reservation asks for more units
// than the option currently has.
var ErrInsufficientStock = errors.New("repo: insufficient stock")

// ReserveStock atomically verifies current_quantity >= qty and decrements
// the counter, then supersedes the option's stock fact with the new value.
// It returns the post-reservation quantity.
//
// tx must already be inside the order placement transaction: on any error
// the caller rolls back, which also restores the counter. A reservation for
// a missing or soft-deleted option returns ErrNotFound; a failed stock
// check returns ErrInsufficientStock and writes nothing.
func ReserveStock(ctx context.Context, tx *gorm.DB, optionID uint, qty int64, at time.Time) (int64, error) {
	res := tx.WithContext(ctx).
		Model(&domain.ProductOption{}).
		Where("id = ? AND current_quantity >= ?", optionID, qty).
		Update("current_quantity", gorm.Expr("current_quantity - ?", qty))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Disambiguate: missing option vs. not enough units.
		var o domain.ProductOption
		if err := tx.WithContext(ctx).First(&o, "id = ?", optionID).Error; err != nil {
			return 0, err
		}
		return 0, ErrInsufficientStock
	}

	var o domain.ProductOption
	if err := tx.WithContext(ctx).First(&o, "id = ?", optionID).Error; err != nil {
		return 0, err
	}
	next := &domain.StockLevel{ProductOptionID: optionID, Quantity: o.CurrentQuantity}
	if err := timeline.Supersede(tx.WithContext(ctx), next, at); err != nil {
		return 0, err
	}
	return o.CurrentQuantity, nil
}

// SetStockLevel overwrites the option's counter with an absolute quantity
// and supersedes its stock fact, in the caller's transaction. Returns
// ErrNotFound when the option is missing or soft-deleted.
func SetStockLevel(ctx context.Context, tx *gorm.DB, optionID uint, qty int64, at time.Time) error {
	res := tx.WithContext(ctx).
		Model(&domain.ProductOption{}).
		Where("id = ?", optionID).
		Update("current_quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	next := &domain.StockLevel{ProductOptionID: optionID, Quantity: qty}
	return timeline.Supersede(tx.WithContext(ctx), next, at)
}

// CurrentQuantity returns the option's live counter. Returns ErrNotFound
// when the option is missing or soft-deleted.
func CurrentQuantity(ctx context.Context, db *gorm.DB, optionID uint) (int64, error) {
	var o domain.ProductOption
	if err := db.WithContext(ctx).First(&o, "id = ?", optionID).Error; err != nil {
		return 0, err
	}
	return o.CurrentQuantity, nil
}

// OpenStockFact returns the option's open-ended ledger row. Returns
// ErrNotFound when the option has no open stock fact (never opened, or
// retired).
func OpenStockFact(ctx context.Context, db *gorm.DB, optionID uint) (*domain.StockLevel, error) {
	var s domain.StockLevel
	err := db.WithContext(ctx).
		Where("product_option_id = ?", optionID).
		Scopes(timeline.OpenOnly()).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StockHistory returns up to limit ledger rows for the option, newest
// first. The open-ended row sorts first.
func StockHistory(ctx context.Context, db *gorm.DB, optionID uint, limit int) ([]domain.StockLevel, error) {
	var out []domain.StockLevel
	err := db.WithContext(ctx).
		Where("product_option_id = ?", optionID).
		Order("start_time desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}
