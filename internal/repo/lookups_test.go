package repo

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

func newLookupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Color{}, &domain.Size{},
		&domain.MainCategory{}, &domain.SubCategory{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestLookupLists_OrderedByID(t *testing.T) {
	db := newLookupDB(t)
	ctx := context.Background()

	for _, c := range []domain.Color{{ID: 2, Name: "white"}, {ID: 1, Name: "black"}} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed color: %v", err)
		}
	}
	for _, s := range []domain.Size{{ID: 1, Name: "S"}, {ID: 2, Name: "M"}} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed size: %v", err)
		}
	}

	colors, err := ListColors(ctx, db)
	if err != nil || len(colors) != 2 || colors[0].Name != "black" {
		t.Fatalf("ListColors: %+v err=%v", colors, err)
	}
	sizes, err := ListSizes(ctx, db)
	if err != nil || len(sizes) != 2 || sizes[1].Name != "M" {
		t.Fatalf("ListSizes: %+v err=%v", sizes, err)
	}
}

func TestListSubCategories_FiltersByMain(t *testing.T) {
	db := newLookupDB(t)
	ctx := context.Background()

	for _, m := range []domain.MainCategory{{ID: 1, Name: "tops"}, {ID: 2, Name: "bottoms"}} {
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed main: %v", err)
		}
	}
	for _, s := range []domain.SubCategory{
		{ID: 1, MainCategoryID: 1, Name: "tees"},
		{ID: 2, MainCategoryID: 1, Name: "hoodies"},
		{ID: 3, MainCategoryID: 2, Name: "jeans"},
	} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed sub: %v", err)
		}
	}

	mains, err := ListMainCategories(ctx, db)
	if err != nil || len(mains) != 2 {
		t.Fatalf("ListMainCategories: %+v err=%v", mains, err)
	}

	tops, err := ListSubCategories(ctx, db, 1)
	if err != nil || len(tops) != 2 || tops[0].Name != "tees" {
		t.Fatalf("ListSubCategories(1): %+v err=%v", tops, err)
	}
	none, err := ListSubCategories(ctx, db, 42)
	if err != nil || len(none) != 0 {
		t.Fatalf("ListSubCategories(42) should be empty: %+v err=%v", none, err)
	}
}
