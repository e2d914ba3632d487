// Temporal catalog facts.
//
// ProductDetail, StockLevel, and ProductImage are stored as append-only
// sequences of immutable validity intervals [StartTime, CloseTime). The row
// whose CloseTime equals the timeline sentinel (year 9999) is the currently
// binding value for its subject. Rows are never updated in place except to
// close their interval; history is never deleted.
//
// Each model implements the two methods the timeline package needs:
// SubjectWhere (the condition selecting every row of the same subject) and
// SetValidity (stamping the interval). Validity timestamps are normalized to
// UTC so interval comparisons stay exact across drivers.
package domain

import "time"

// ProductDetail is the price/discount fact of a product: one row per
// merchandising revision, valid over [StartTime, CloseTime). All mutable
// product attributes ride on this row so that any instant in the past can be
// re-resolved to the exact values that were binding then.
//
// Fields:
//   - ID: auto-increment primary key.
//   - ProductID: the subject product.
//   - Name / ShortDescription / Description: merchandising copy.
//   - SubCategoryID: optional category placement.
//   - Price: list price in whole currency units (exact integer arithmetic).
//   - DiscountRate: optional percentage 0-100; nil means no discount set.
//   - DiscountStart / DiscountEnd: optional inclusive activation window for
//     DiscountRate; a nil DiscountStart makes the rate unconditional.
//   - MinSalesQuantity / MaxSalesQuantity: inclusive per-order bounds.
//   - IsActivated: sellable (checkout allowed).
//   - IsDisplayed: listed on the storefront.
//   - StartTime / CloseTime: half-open validity interval.
type ProductDetail struct {
	ID               uint       `json:"id"                gorm:"primaryKey"`
	ProductID        uint       `json:"product_id"        gorm:"not null;uniqueIndex:ux_product_details_subject_start,priority:1;uniqueIndex:ux_product_details_subject_close,priority:1"`
	Name             string     `json:"name"              gorm:"type:varchar(128);not null"`
	ShortDescription string     `json:"short_description" gorm:"type:varchar(255)"`
	Description      string     `json:"description"       gorm:"type:text"`
	SubCategoryID    *uint      `json:"sub_category_id,omitempty" gorm:"index"`
	Price            int64      `json:"price"             gorm:"not null;check:price >= 0"`
	DiscountRate     *int64     `json:"discount_rate,omitempty" gorm:"check:discount_rate IS NULL OR (discount_rate >= 0 AND discount_rate <= 100)"`
	DiscountStart    *time.Time `json:"discount_start,omitempty"`
	DiscountEnd      *time.Time `json:"discount_end,omitempty"`
	MinSalesQuantity int64      `json:"min_sales_quantity" gorm:"not null;default:1"`
	MaxSalesQuantity int64      `json:"max_sales_quantity" gorm:"not null;default:20"`
	// No column defaults on the flags: a default would make GORM skip
	// explicit false values on insert, and hidden/deactivated revisions
	// must persist as written.
	IsActivated      bool       `json:"is_activated"      gorm:"not null"`
	IsDisplayed      bool       `json:"is_displayed"      gorm:"not null"`
	StartTime        time.Time  `json:"start_time"        gorm:"not null;uniqueIndex:ux_product_details_subject_start,priority:2"`
	CloseTime        time.Time  `json:"close_time"        gorm:"not null;index;uniqueIndex:ux_product_details_subject_close,priority:2"`

	Product     Product      `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SubCategory *SubCategory `json:"-" gorm:"foreignKey:SubCategoryID;references:ID"`
}

// TableName returns the database table name for ProductDetail.
func (ProductDetail) TableName() string { return "product_details" }

// SubjectWhere identifies every detail row of the same product.
func (d *ProductDetail) SubjectWhere() (string, []any) {
	return "product_id = ?", []any{d.ProductID}
}

// SetValidity stamps the half-open interval [start, close) onto the row.
func (d *ProductDetail) SetValidity(start, close time.Time) {
	d.StartTime = start.UTC()
	d.CloseTime = close.UTC()
}

// StockLevel is the quantity fact of a product option. Every stock mutation
// closes the option's open-ended row and opens a new one carrying the
// post-mutation quantity, in the same transaction as the counter update, so
// ProductOption.CurrentQuantity always equals the open-ended row's Quantity.
//
// Fields:
//   - ID: auto-increment primary key.
//   - ProductOptionID: the subject option.
//   - Quantity: units in stock over the interval; never negative (DB check).
//   - StartTime / CloseTime: half-open validity interval.
type StockLevel struct {
	ID              uint      `json:"id"                gorm:"primaryKey"`
	ProductOptionID uint      `json:"product_option_id" gorm:"not null;uniqueIndex:ux_stock_levels_subject_start,priority:1;uniqueIndex:ux_stock_levels_subject_close,priority:1"`
	Quantity        int64     `json:"quantity"          gorm:"not null;check:quantity >= 0"`
	StartTime       time.Time `json:"start_time"        gorm:"not null;uniqueIndex:ux_stock_levels_subject_start,priority:2"`
	CloseTime       time.Time `json:"close_time"        gorm:"not null;index;uniqueIndex:ux_stock_levels_subject_close,priority:2"`

	ProductOption ProductOption `json:"-" gorm:"foreignKey:ProductOptionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for StockLevel.
func (StockLevel) TableName() string { return "stock_levels" }

// SubjectWhere identifies every stock row of the same option.
func (s *StockLevel) SubjectWhere() (string, []any) {
	return "product_option_id = ?", []any{s.ProductOptionID}
}

// SetValidity stamps the half-open interval [start, close) onto the row.
func (s *StockLevel) SetValidity(start, close time.Time) {
	s.StartTime = start.UTC()
	s.CloseTime = close.UTC()
}

// ProductImage is the listing-image fact of a product. The subject is the
// (product, URL) pair: attaching an image opens its first interval, swapping
// its role supersedes it, removing it retires the interval with no successor.
//
// Fields:
//   - ID: auto-increment primary key.
//   - ProductID: the subject product.
//   - URL: image location; payload part of the subject key.
//   - IsMain: whether this image leads the product listing.
//   - StartTime / CloseTime: half-open validity interval.
type ProductImage struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:ux_product_images_subject_start,priority:1;uniqueIndex:ux_product_images_subject_close,priority:1"`
	URL       string    `json:"url"        gorm:"type:varchar(512);not null;uniqueIndex:ux_product_images_subject_start,priority:2;uniqueIndex:ux_product_images_subject_close,priority:2"`
	IsMain    bool      `json:"is_main"    gorm:"not null;default:false"`
	StartTime time.Time `json:"start_time" gorm:"not null;uniqueIndex:ux_product_images_subject_start,priority:3"`
	CloseTime time.Time `json:"close_time" gorm:"not null;index;uniqueIndex:ux_product_images_subject_close,priority:3"`

	Product Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ProductImage.
func (ProductImage) TableName() string { return "product_images" }

// SubjectWhere identifies every interval of the same (product, URL) pair.
func (p *ProductImage) SubjectWhere() (string, []any) {
	return "product_id = ? AND url = ?", []any{p.ProductID, p.URL}
}

// SetValidity stamps the half-open interval [start, close) onto the row.
func (p *ProductImage) SetValidity(start, close time.Time) {
	p.StartTime = start.UTC()
	p.CloseTime = close.UTC()
}
