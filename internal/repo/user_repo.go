// User account persistence.
//
// Accounts are soft-deleted only; GetActiveUser is the buyer-validation read
// used by checkout (a soft-deleted account resolves to ErrNotFound).
// Authentication and session mechanics live outside this service; handlers
// receive an already-established user id.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// CreateUser inserts a new account. The unique email index surfaces
// duplicates as a raw DB error for the service layer to translate.
func CreateUser(ctx context.Context, db *gorm.DB, name, email string) (*domain.User, error) {
	u := &domain.User{Name: name, Email: email}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetActiveUser fetches a non-deleted account by id. Returns ErrNotFound
// when the account is missing or soft-deleted.
func GetActiveUser(ctx context.Context, db *gorm.DB, id uint) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// TouchLastAccess stamps the account's last activity time. Missing accounts
// are ignored: the stamp is best-effort bookkeeping, not validation.
func TouchLastAccess(ctx context.Context, db *gorm.DB, id uint, at time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("last_access", at.UTC()).Error
}

// CountUsers returns the total number of non-deleted accounts.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}

// ListUsersPage returns a page of non-deleted accounts, newest first.
func ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
