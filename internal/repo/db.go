// Package repo implements the data persistence layer for the storefront,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and lookup-table seeding.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
// Transactions are started in IMMEDIATE mode so concurrent checkout writers
// queue on the busy timeout instead of deadlocking on a lock upgrade.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn = fmt.Sprintf("file:%s?_txlock=immediate", path)
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the storefront schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ShippingAddress{},
		&domain.Product{},
		&domain.Color{},
		&domain.Size{},
		&domain.MainCategory{},
		&domain.SubCategory{},
		&domain.ProductOption{},
		&domain.ProductDetail{},
		&domain.ProductImage{},
		&domain.StockLevel{},
		&domain.OrderStatus{},
		&domain.Order{},
		&domain.OrderDetail{},
		&domain.OrderItem{},
		&domain.Idempotency{},
	)
}

// SeedLookups inserts the fixed lookup rows (order statuses, colors, sizes,
// categories) if they are not present. Safe to run on every startup.
func SeedLookups(db *gorm.DB) error {
	statuses := []domain.OrderStatus{
		{ID: domain.StatusPlaced, Name: "placed"},
		{ID: domain.StatusPreparing, Name: "preparing"},
		{ID: domain.StatusShipped, Name: "shipped"},
		{ID: domain.StatusDelivered, Name: "delivered"},
		{ID: domain.StatusCancelled, Name: "cancelled"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error; err != nil {
		return err
	}

	colors := []domain.Color{
		{Name: "Black"}, {Name: "White"}, {Name: "Gray"},
		{Name: "Navy"}, {Name: "Red"}, {Name: "Beige"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&colors).Error; err != nil {
		return err
	}

	sizes := []domain.Size{
		{Name: "XS"}, {Name: "S"}, {Name: "M"}, {Name: "L"}, {Name: "XL"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sizes).Error; err != nil {
		return err
	}

	mains := []domain.MainCategory{
		{ID: 1, Name: "Apparel"}, {ID: 2, Name: "Accessories"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&mains).Error; err != nil {
		return err
	}
	subs := []domain.SubCategory{
		{MainCategoryID: 1, Name: "Tops"},
		{MainCategoryID: 1, Name: "Bottoms"},
		{MainCategoryID: 1, Name: "Outerwear"},
		{MainCategoryID: 2, Name: "Bags"},
		{MainCategoryID: 2, Name: "Hats"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subs).Error
}
