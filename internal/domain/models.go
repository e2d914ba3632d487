// Package domain defines the persistence models for the storefront: catalog
// identity, temporal pricing/stock facts, orders, and shipping. These types
// are mapped with GORM and form the core data layer of the shop application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Order status ids seeded into order_statuses. StatusPlaced is the initial
// state written at checkout and the one all downstream reporting filters on.
const (
	StatusPlaced    = 1
	StatusPreparing = 2
	StatusShipped   = 3
	StatusDelivered = 4
	StatusCancelled = 5
)

// User represents a storefront account. Accounts are soft-deleted only, so
// historical orders keep a resolvable buyer reference.
//
// Fields:
//   - ID: auto-increment primary key.
//   - Name: display name of the account holder.
//   - Email: unique login identifier.
//   - LastAccess: most recent activity timestamp, if any.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for order history).
type User struct {
	ID         uint           `json:"id"          gorm:"primaryKey"`
	Name       string         `json:"name"        gorm:"type:varchar(64);not null"`
	Email      string         `json:"email"       gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	LastAccess *time.Time     `json:"last_access,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// ShippingAddress is the single address-on-file row per user. It is upserted
// in place rather than versioned: orders copy the fields into their detail
// row at placement time, so overwriting here never rewrites history.
//
// Fields:
//   - ID: auto-increment primary key.
//   - UserID: owning account; exactly one row per user (unique index).
//   - Receiver / PhoneNumber: delivery contact.
//   - Address / AddressDetail / ZipCode: delivery destination.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type ShippingAddress struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        uint      `json:"user_id"        gorm:"not null;uniqueIndex:ux_shipping_user"`
	Receiver      string    `json:"receiver"       gorm:"type:varchar(64);not null"`
	PhoneNumber   string    `json:"phone_number"   gorm:"type:varchar(32);not null"`
	Address       string    `json:"address"        gorm:"type:varchar(255);not null"`
	AddressDetail string    `json:"address_detail" gorm:"type:varchar(255)"`
	ZipCode       string    `json:"zip_code"       gorm:"type:varchar(16)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ShippingAddress.
func (ShippingAddress) TableName() string { return "user_shipping_addresses" }

// Product is the catalog identity row. Everything a merchandiser can change
// over time (name, price, discount, sale bounds, visibility) lives on the
// ProductDetail fact sequence, never here.
//
// Fields:
//   - ID: auto-increment primary key.
//   - Code: stable external product code, unique across the catalog.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (options and facts stay referable).
type Product struct {
	ID        uint           `json:"id"         gorm:"primaryKey"`
	Code      string         `json:"code"       gorm:"type:varchar(32);not null;uniqueIndex:ux_products_code"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// Color is a seeded lookup row for option colors.
type Color struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(32);not null;uniqueIndex:ux_colors_name"`
}

// TableName returns the database table name for Color.
func (Color) TableName() string { return "colors" }

// Size is a seeded lookup row for option sizes.
type Size struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(32);not null;uniqueIndex:ux_sizes_name"`
}

// TableName returns the database table name for Size.
func (Size) TableName() string { return "sizes" }

// MainCategory is a seeded top-level merchandising category.
type MainCategory struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(64);not null;uniqueIndex:ux_main_categories_name"`
}

// TableName returns the database table name for MainCategory.
func (MainCategory) TableName() string { return "main_categories" }

// SubCategory is a seeded second-level merchandising category.
type SubCategory struct {
	ID             uint   `json:"id"               gorm:"primaryKey"`
	MainCategoryID uint   `json:"main_category_id" gorm:"not null;index"`
	Name           string `json:"name"             gorm:"type:varchar(64);not null;uniqueIndex:ux_sub_categories_name"`

	MainCategory MainCategory `json:"-" gorm:"foreignKey:MainCategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for SubCategory.
func (SubCategory) TableName() string { return "sub_categories" }

// ProductOption is one sellable (product, color, size) combination.
// CurrentQuantity is the materialized stock counter used on the checkout
// fast path; every mutation of it also supersedes the option's StockLevel
// fact in the same transaction, so counter and ledger never diverge.
//
// Fields:
//   - ID: auto-increment primary key.
//   - ProductID / ColorID / SizeID: the combination this option sells.
//   - CurrentQuantity: units in stock right now; never negative (DB check).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type ProductOption struct {
	ID              uint           `json:"id"               gorm:"primaryKey"`
	ProductID       uint           `json:"product_id"       gorm:"not null;index:idx_options_product"`
	ColorID         uint           `json:"color_id"         gorm:"not null"`
	SizeID          uint           `json:"size_id"          gorm:"not null"`
	CurrentQuantity int64          `json:"current_quantity" gorm:"not null;default:0;check:current_quantity >= 0"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-"                gorm:"index"`

	Product Product `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Color   Color   `json:"-" gorm:"foreignKey:ColorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Size    Size    `json:"-" gorm:"foreignKey:SizeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for ProductOption.
func (ProductOption) TableName() string { return "product_options" }

// OrderStatus is the seeded workflow-state lookup for order details.
type OrderStatus struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(32);not null;uniqueIndex:ux_order_statuses_name"`
}

// TableName returns the database table name for OrderStatus.
func (OrderStatus) TableName() string { return "order_statuses" }

// Order is the checkout root row. Its primary key doubles as the order
// number returned to the buyer. Orders are written exactly once, inside the
// placement transaction, and are never deleted.
//
// Fields:
//   - ID: auto-increment primary key, exposed as the order number.
//   - UserID: purchasing account.
//   - CreatedAt: timestamp managed by GORM.
type Order struct {
	ID        uint      `json:"order_no"   gorm:"primaryKey"`
	UserID    uint      `json:"user_id"    gorm:"not null;index:idx_orders_user"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// OrderDetail carries the per-checkout state of an order: workflow status,
// the frozen total, the delivery note, and a value copy of the shipping
// address as it stood at placement. OrderedAt is the pricing reference
// instant; historical price/discount resolution for this order always uses
// it, never the current time.
//
// Fields:
//   - ID: auto-increment primary key.
//   - OrderID: owning order.
//   - OrderStatusID: workflow state; StatusPlaced when written.
//   - TotalPrice: effective price x quantity, frozen from the snapshot
//     resolved at OrderedAt. Later price changes never touch it.
//   - DeliveryRequest: free-form courier note.
//   - Receiver / PhoneNumber / Address / AddressDetail / ZipCode: shipping
//     fields copied from the address-on-file at placement.
//   - OrderedAt: the instant the placement transaction priced the order.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type OrderDetail struct {
	ID              uint      `json:"id"              gorm:"primaryKey"`
	OrderID         uint      `json:"order_id"        gorm:"not null;index:idx_order_details_order"`
	OrderStatusID   uint      `json:"order_status_id" gorm:"not null;default:1;index"`
	TotalPrice      int64     `json:"total_price"     gorm:"not null"`
	DeliveryRequest string    `json:"delivery_request" gorm:"type:varchar(255)"`
	Receiver        string    `json:"receiver"        gorm:"type:varchar(64);not null"`
	PhoneNumber     string    `json:"phone_number"    gorm:"type:varchar(32);not null"`
	Address         string    `json:"address"         gorm:"type:varchar(255);not null"`
	AddressDetail   string    `json:"address_detail"  gorm:"type:varchar(255)"`
	ZipCode         string    `json:"zip_code"        gorm:"type:varchar(16)"`
	OrderedAt       time.Time `json:"ordered_at"      gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Order       Order       `json:"-" gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	OrderStatus OrderStatus `json:"-" gorm:"foreignKey:OrderStatusID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for OrderDetail.
func (OrderDetail) TableName() string { return "order_details" }

// OrderItem is one purchased option line under an order detail.
//
// Fields:
//   - ID: auto-increment primary key.
//   - OrderDetailID: owning order detail.
//   - ProductOptionID: the reserved option.
//   - Quantity: purchased units; always positive (DB check).
type OrderItem struct {
	ID              uint  `json:"id"                gorm:"primaryKey"`
	OrderDetailID   uint  `json:"order_detail_id"   gorm:"not null;index:idx_order_items_detail"`
	ProductOptionID uint  `json:"product_option_id" gorm:"not null;index"`
	Quantity        int64 `json:"quantity"          gorm:"not null;check:quantity > 0"`

	OrderDetail   OrderDetail   `json:"-" gorm:"foreignKey:OrderDetailID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ProductOption ProductOption `json:"-" gorm:"foreignKey:ProductOptionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for OrderItem.
func (OrderItem) TableName() string { return "order_items" }
