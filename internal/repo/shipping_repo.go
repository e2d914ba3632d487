// Shipping address persistence.
//
// Each user keeps exactly one address-on-file row, enforced by the unique
// index on user_id. The row is upserted in place, never versioned: checkout
// copies its fields into the order detail, so overwriting here cannot
// rewrite any order's shipping history.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// UpsertShippingAddress inserts the user's address-on-file or overwrites it
// if one exists, keyed by user_id. addr.UserID must be set; the stored row's
// id is written back into addr.
func UpsertShippingAddress(ctx context.Context, tx *gorm.DB, addr *domain.ShippingAddress) error {
	err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"receiver", "phone_number", "address", "address_detail", "zip_code", "updated_at",
			}),
		}).
		Create(addr).Error
	if err != nil {
		return err
	}
	// On the update path sqlite reports no insert id; read the row back so
	// callers always see the persisted id.
	return tx.WithContext(ctx).First(addr, "user_id = ?", addr.UserID).Error
}

// GetShippingAddress returns the user's address-on-file, or ErrNotFound when
// none was ever saved.
func GetShippingAddress(ctx context.Context, db *gorm.DB, userID uint) (*domain.ShippingAddress, error) {
	var a domain.ShippingAddress
	if err := db.WithContext(ctx).First(&a, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
