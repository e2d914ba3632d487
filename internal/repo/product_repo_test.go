package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/timeline"
)

func newProductRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("product_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(
		&domain.Product{}, &domain.Color{}, &domain.Size{},
		&domain.MainCategory{}, &domain.SubCategory{},
		&domain.ProductOption{}, &domain.ProductDetail{},
		&domain.ProductImage{}, &domain.StockLevel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	// Lookup rows used by the availability joins.
	for _, c := range []domain.Color{{ID: 1, Name: "black"}, {ID: 2, Name: "white"}} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed color: %v", err)
		}
	}
	for _, s := range []domain.Size{{ID: 1, Name: "S"}, {ID: 2, Name: "M"}} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed size: %v", err)
		}
	}
	return db
}

// openDetail seeds the first detail fact of a product, valid from start.
func openDetail(t *testing.T, db *gorm.DB, productID uint, name string, price int64, displayed bool, start time.Time) *domain.ProductDetail {
	t.Helper()
	d := &domain.ProductDetail{
		ProductID:        productID,
		Name:             name,
		Price:            price,
		MinSalesQuantity: 1,
		MaxSalesQuantity: 20,
		IsActivated:      true,
		IsDisplayed:      displayed,
	}
	if err := timeline.Open(db, d, start); err != nil {
		t.Fatalf("open detail for product %d: %v", productID, err)
	}
	return d
}

func TestCreateProduct_Success_AndDuplicateCode(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "hoodie-4f21")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == 0 || p.Code != "hoodie-4f21" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := CreateProduct(ctx, db, "hoodie-4f21"); err == nil {
		t.Fatalf("expected unique-code violation on duplicate insert")
	}
}

func TestGetProduct_SoftDeleted_NotFound(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "tee-0001")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if _, err := GetProduct(ctx, db, p.ID); err != nil {
		t.Fatalf("GetProduct before delete: %v", err)
	}

	if err := db.Delete(&domain.Product{}, p.ID).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := GetProduct(ctx, db, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after soft delete, got %v", err)
	}
}

func TestFindActiveOption_ExcludesSoftDeleted(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "cap-0001")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	o, err := CreateOption(ctx, db, p.ID, 1, 2, 9)
	if err != nil {
		t.Fatalf("CreateOption: %v", err)
	}

	got, err := FindActiveOption(ctx, db, p.ID, 1, 2)
	if err != nil || got.ID != o.ID || got.CurrentQuantity != 9 {
		t.Fatalf("FindActiveOption: got %+v err %v", got, err)
	}
	if _, err := FindActiveOption(ctx, db, p.ID, 2, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown combination, got %v", err)
	}

	if err := db.Delete(&domain.ProductOption{}, o.ID).Error; err != nil {
		t.Fatalf("soft delete option: %v", err)
	}
	if _, err := FindActiveOption(ctx, db, p.ID, 1, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after soft delete, got %v", err)
	}
}

func TestActiveDetailAt_ResolutionAcrossRevisions(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "hoodie-hist")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	openDetail(t, db, p.ID, "Hoodie", 10000, true, t0)
	next := &domain.ProductDetail{
		ProductID: p.ID, Name: "Hoodie", Price: 12000,
		MinSalesQuantity: 1, MaxSalesQuantity: 20,
		IsActivated: true, IsDisplayed: true,
	}
	if err := timeline.Supersede(db, next, t1); err != nil {
		t.Fatalf("supersede: %v", err)
	}

	// Before the first revision the product has no binding fact.
	if _, err := ActiveDetailAt(ctx, db, p.ID, t0.Add(-time.Second)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before t0, got %v", err)
	}
	// Start boundary is inclusive.
	if d, err := ActiveDetailAt(ctx, db, p.ID, t0); err != nil || d.Price != 10000 {
		t.Fatalf("at t0: price=%v err=%v, want 10000", d, err)
	}
	// Just before the supersession the old price still binds.
	if d, err := ActiveDetailAt(ctx, db, p.ID, t1.Add(-time.Second)); err != nil || d.Price != 10000 {
		t.Fatalf("just before t1: %+v err=%v, want 10000", d, err)
	}
	// The supersession instant itself belongs to the successor.
	if d, err := ActiveDetailAt(ctx, db, p.ID, t1); err != nil || d.Price != 12000 {
		t.Fatalf("at t1: %+v err=%v, want 12000", d, err)
	}
	if d, err := ActiveDetailAt(ctx, db, p.ID, time.Now().UTC()); err != nil || d.Price != 12000 {
		t.Fatalf("now: %+v err=%v, want 12000", d, err)
	}
}

func TestActiveDetailAt_AfterRetire_HistoryStillResolves(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "hoodie-retired")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	openDetail(t, db, p.ID, "Hoodie", 10000, true, t0)
	if err := timeline.Retire(db, &domain.ProductDetail{ProductID: p.ID}, t1); err != nil {
		t.Fatalf("retire: %v", err)
	}

	// After retirement there is no binding fact.
	if _, err := ActiveDetailAt(ctx, db, p.ID, t1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound at t1, got %v", err)
	}
	// The closed interval still answers historical reads.
	if d, err := ActiveDetailAt(ctx, db, p.ID, t0.Add(24*time.Hour)); err != nil || d.Price != 10000 {
		t.Fatalf("historical read: %+v err=%v, want 10000", d, err)
	}
}

func TestActiveImagesAt_MainFirst_RetireDrops(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, db, "img-0001")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	main := &domain.ProductImage{ProductID: p.ID, URL: "https://cdn.example.com/a.jpg", IsMain: true}
	side := &domain.ProductImage{ProductID: p.ID, URL: "https://cdn.example.com/b.jpg"}
	if err := timeline.Open(db, main, t0); err != nil {
		t.Fatalf("open main image: %v", err)
	}
	if err := timeline.Open(db, side, t0); err != nil {
		t.Fatalf("open side image: %v", err)
	}

	imgs, err := ActiveImagesAt(ctx, db, p.ID, time.Now().UTC())
	if err != nil {
		t.Fatalf("ActiveImagesAt: %v", err)
	}
	if len(imgs) != 2 || !imgs[0].IsMain {
		t.Fatalf("expected 2 images with main first, got %+v", imgs)
	}

	if err := timeline.Retire(db, &domain.ProductImage{ProductID: p.ID, URL: side.URL}, time.Now().UTC()); err != nil {
		t.Fatalf("retire side image: %v", err)
	}
	imgs, err = ActiveImagesAt(ctx, db, p.ID, time.Now().UTC().Add(time.Second))
	if err != nil {
		t.Fatalf("ActiveImagesAt after retire: %v", err)
	}
	if len(imgs) != 1 || imgs[0].URL != main.URL {
		t.Fatalf("expected only the main image, got %+v", imgs)
	}
}

func TestDisplayedListing_FiltersAndPaginates(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	p1, _ := CreateProduct(ctx, db, "list-1")
	p2, _ := CreateProduct(ctx, db, "list-2")
	p3, _ := CreateProduct(ctx, db, "list-3")
	p4, _ := CreateProduct(ctx, db, "list-4")

	openDetail(t, db, p1.ID, "Visible One", 1000, true, t0)
	openDetail(t, db, p2.ID, "Hidden", 2000, false, t0)
	openDetail(t, db, p3.ID, "Deleted Owner", 3000, true, t0)
	openDetail(t, db, p4.ID, "Visible Two", 4000, true, t0.Add(time.Hour))

	if err := db.Delete(&domain.Product{}, p3.ID).Error; err != nil {
		t.Fatalf("soft delete p3: %v", err)
	}

	now := time.Now().UTC()
	total, err := CountDisplayedAt(ctx, db, now)
	if err != nil {
		t.Fatalf("CountDisplayedAt: %v", err)
	}
	if total != 2 {
		t.Fatalf("count = %d, want 2", total)
	}

	page, err := ListDisplayedDetailsAt(ctx, db, now, 0, 10)
	if err != nil {
		t.Fatalf("ListDisplayedDetailsAt: %v", err)
	}
	if len(page) != 2 || page[0].ProductID != p4.ID || page[1].ProductID != p1.ID {
		t.Fatalf("unexpected page order: %+v", page)
	}
	// The scan must carry detail columns, not bleed from the joined products row.
	if page[0].Name != "Visible Two" || page[0].Price != 4000 {
		t.Fatalf("joined columns bled into the projection: %+v", page[0])
	}

	second, err := ListDisplayedDetailsAt(ctx, db, now, 1, 1)
	if err != nil || len(second) != 1 || second[0].ProductID != p1.ID {
		t.Fatalf("offset page: %+v err=%v", second, err)
	}

	// Before any fact was opened nothing is visible.
	early, err := CountDisplayedAt(ctx, db, t0.Add(-time.Minute))
	if err != nil || early != 0 {
		t.Fatalf("early count = %d err=%v, want 0", early, err)
	}
}

func TestSumProductStock(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, db, "sum-1")
	empty, _ := CreateProduct(ctx, db, "sum-2")
	if _, err := CreateOption(ctx, db, p.ID, 1, 1, 3); err != nil {
		t.Fatalf("option 1: %v", err)
	}
	if _, err := CreateOption(ctx, db, p.ID, 1, 2, 4); err != nil {
		t.Fatalf("option 2: %v", err)
	}

	total, err := SumProductStock(ctx, db, p.ID)
	if err != nil || total != 7 {
		t.Fatalf("SumProductStock = %d err=%v, want 7", total, err)
	}
	zero, err := SumProductStock(ctx, db, empty.ID)
	if err != nil || zero != 0 {
		t.Fatalf("SumProductStock(empty) = %d err=%v, want 0", zero, err)
	}
}

func TestOptionAvailability_JoinsNamesAndFiltersColor(t *testing.T) {
	db := newProductRepoDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, db, "avail-1")
	if _, err := CreateOption(ctx, db, p.ID, 1, 1, 3); err != nil {
		t.Fatalf("option: %v", err)
	}
	if _, err := CreateOption(ctx, db, p.ID, 1, 2, 0); err != nil {
		t.Fatalf("option: %v", err)
	}
	if _, err := CreateOption(ctx, db, p.ID, 2, 1, 5); err != nil {
		t.Fatalf("option: %v", err)
	}

	all, err := ListOptionAvailability(ctx, db, p.ID)
	if err != nil {
		t.Fatalf("ListOptionAvailability: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %+v", all)
	}
	if all[0].ColorName != "black" || all[0].SizeName != "S" || all[0].Quantity != 3 {
		t.Fatalf("unexpected first row: %+v", all[0])
	}
	if all[1].SizeName != "M" || all[1].Quantity != 0 {
		t.Fatalf("zero-stock option must still be listed: %+v", all[1])
	}

	black, err := ListColorAvailability(ctx, db, p.ID, 1)
	if err != nil || len(black) != 2 {
		t.Fatalf("ListColorAvailability(black): %+v err=%v", black, err)
	}
	none, err := ListColorAvailability(ctx, db, p.ID, 99)
	if err != nil || len(none) != 0 {
		t.Fatalf("ListColorAvailability(unknown) should be empty, got %+v err=%v", none, err)
	}
}
