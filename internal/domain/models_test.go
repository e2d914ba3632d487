package domain

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Enforce FKs so cascades actually execute.
	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func allModels() []any {
	return []any{
		&User{}, &ShippingAddress{},
		&Product{}, &Color{}, &Size{}, &MainCategory{}, &SubCategory{},
		&ProductOption{}, &ProductDetail{}, &ProductImage{}, &StockLevel{},
		&OrderStatus{}, &Order{}, &OrderDetail{}, &OrderItem{},
	}
}

func TestTableNames(t *testing.T) {
	want := map[string]string{
		(User{}).TableName():            "users",
		(ShippingAddress{}).TableName(): "user_shipping_addresses",
		(Product{}).TableName():         "products",
		(ProductOption{}).TableName():   "product_options",
		(ProductDetail{}).TableName():   "product_details",
		(ProductImage{}).TableName():    "product_images",
		(StockLevel{}).TableName():      "stock_levels",
		(Order{}).TableName():           "orders",
		(OrderDetail{}).TableName():     "order_details",
		(OrderItem{}).TableName():       "order_items",
	}
	for got, expect := range want {
		if got != expect {
			t.Fatalf("TableName() = %q; want %q", got, expect)
		}
	}
}

func TestMigrations_Indexes_AndCascades(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(allModels()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range allModels() {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	// The single-open-fact invariant rests on the (subject, close_time)
	// unique indexes; the revision ordering on (subject, start_time).
	if !m.HasIndex(&ProductDetail{}, "ux_product_details_subject_start") {
		t.Fatalf("expected unique index ux_product_details_subject_start")
	}
	if !m.HasIndex(&ProductDetail{}, "ux_product_details_subject_close") {
		t.Fatalf("expected unique index ux_product_details_subject_close")
	}
	if !m.HasIndex(&StockLevel{}, "ux_stock_levels_subject_close") {
		t.Fatalf("expected unique index ux_stock_levels_subject_close")
	}
	if !m.HasIndex(&ShippingAddress{}, "ux_shipping_user") {
		t.Fatalf("expected unique index ux_shipping_user")
	}
	if !m.HasIndex(&ProductOption{}, "idx_options_product") {
		t.Fatalf("expected index idx_options_product")
	}

	now := time.Now().UTC()
	open := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	p := &Product{Code: "SB000001"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("insert product: %v", err)
	}
	c := &Color{Name: "Black"}
	s := &Size{Name: "M"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("insert color: %v", err)
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("insert size: %v", err)
	}
	opt := &ProductOption{ProductID: p.ID, ColorID: c.ID, SizeID: s.ID, CurrentQuantity: 10}
	if err := db.Create(opt).Error; err != nil {
		t.Fatalf("insert option: %v", err)
	}
	det := &ProductDetail{ProductID: p.ID, Name: "Basic Tee", Price: 10000, MinSalesQuantity: 1, MaxSalesQuantity: 20, StartTime: now, CloseTime: open}
	if err := db.Create(det).Error; err != nil {
		t.Fatalf("insert detail: %v", err)
	}
	sl := &StockLevel{ProductOptionID: opt.ID, Quantity: 10, StartTime: now, CloseTime: open}
	if err := db.Create(sl).Error; err != nil {
		t.Fatalf("insert stock level: %v", err)
	}

	// Two open-ended facts for the same subject must be impossible.
	dup := &StockLevel{ProductOptionID: opt.ID, Quantity: 9, StartTime: now.Add(time.Hour), CloseTime: open}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected UNIQUE violation inserting second open-ended stock fact")
	}

	// The counter never goes negative (DB check constraint backstop).
	if err := db.Model(&ProductOption{}).Where("id = ?", opt.ID).
		Update("current_quantity", -1).Error; err == nil {
		t.Fatalf("expected CHECK violation driving current_quantity negative")
	}

	// CASCADE: hard-deleting a product removes its options, details, stock.
	if err := db.Unscoped().Delete(&Product{}, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}
	var cnt int64
	if err := db.Unscoped().Model(&ProductOption{}).Where("product_id = ?", p.ID).Count(&cnt).Error; err != nil {
		t.Fatalf("count options: %v", err)
	}
	if cnt != 0 {
		t.Fatalf("expected options to cascade-delete with product, got count=%d", cnt)
	}
	if err := db.Model(&ProductDetail{}).Where("product_id = ?", p.ID).Count(&cnt).Error; err != nil {
		t.Fatalf("count details: %v", err)
	}
	if cnt != 0 {
		t.Fatalf("expected details to cascade-delete with product, got count=%d", cnt)
	}
}
