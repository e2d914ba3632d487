// Order graph persistence and back-office order queries.
//
// The order graph (orders -> order_details -> order_items) is written
// exactly once per checkout, always inside the placement transaction owned
// by services.OrderService. Rows are never deleted; later workflow stages
// only transition order_details.order_status_id.
//
// Historical reads resolve product facts against the order's own ordered_at
// instant, so a listed or displayed order always reproduces the name, price,
// and discount that were binding when it was placed.
//
// Functions:
//
//   - CreateOrder(ctx, tx, userID) -> *domain.Order, error
//   - CreateOrderDetail(ctx, tx, detail) -> error
//   - CreateOrderItem(ctx, tx, detailID, optionID, qty) -> *domain.OrderItem, error
//   - GetOrderDetail(ctx, db, detailID) -> *domain.OrderDetail, error
//   - ListOrderItemViews(ctx, db, detailID) -> []OrderItemView, error
//   - SearchPlacedOrders(ctx, db, filter, offset, limit) -> []PlacedOrderRow, int64, error
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
)

// OrderFilter carries the optional predicates of the back-office order
// search. Zero values mean "not filtered". Each set field becomes one
// composable condition; nothing is assembled by string concatenation.
type OrderFilter struct {
	From        *time.Time // ordered_at >= From
	To          *time.Time // ordered_at < To
	ProductName string     // substring match on the name binding at order time
	OrdererName string     // exact match on the buyer account name
	Phone       string     // exact match on the shipping phone snapshot
	OrderNo     uint       // exact match on the order number
	Ascending   bool       // sort by ordered_at ascending instead of descending
}

// PlacedOrderRow is one row of the back-office order listing: the order
// graph joined with the buyer and with the product fact that was binding at
// the order's own instant.
type PlacedOrderRow struct {
	OrderNo     uint      `json:"order_no"`
	DetailID    uint      `json:"detail_id"`
	OrderedAt   time.Time `json:"ordered_at"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	OrdererName string    `json:"orderer_name"`
	PhoneNumber string    `json:"phone_number"`
	Quantity    int64     `json:"quantity"`
	TotalPrice  int64     `json:"total_price"`
}

// OrderItemView is one purchased line joined with its option attributes.
type OrderItemView struct {
	ItemID    uint   `json:"item_id"`
	OptionID  uint   `json:"option_id"`
	ProductID uint   `json:"product_id"`
	ColorName string `json:"color"`
	SizeName  string `json:"size"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrder inserts the order root row for userID and returns it with the
// assigned order number.
func CreateOrder(ctx context.Context, tx *gorm.DB, userID uint) (*domain.Order, error) {
	o := &domain.Order{UserID: userID}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrderDetail inserts the per-checkout detail row. The caller fills
// every field, including the frozen total and the shipping snapshot.
func CreateOrderDetail(ctx context.Context, tx *gorm.DB, detail *domain.OrderDetail) error {
	return tx.WithContext(ctx).Create(detail).Error
}

// CreateOrderItem inserts one purchased line under the detail.
func CreateOrderItem(ctx context.Context, tx *gorm.DB, detailID, optionID uint, qty int64) (*domain.OrderItem, error) {
	it := &domain.OrderItem{
		OrderDetailID:   detailID,
		ProductOptionID: optionID,
		Quantity:        qty,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		return nil, err
	}
	return it, nil
}

// GetOrderDetail fetches one order detail row by id. Returns ErrNotFound if
// missing.
func GetOrderDetail(ctx context.Context, db *gorm.DB, detailID uint) (*domain.OrderDetail, error) {
	var d domain.OrderDetail
	if err := db.WithContext(ctx).First(&d, "id = ?", detailID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListOrderItemViews returns the detail's purchased lines with color and
// size names. Soft-deleted options still appear: order history outlives the
// catalog.
func ListOrderItemViews(ctx context.Context, db *gorm.DB, detailID uint) ([]OrderItemView, error) {
	var out []OrderItemView
	err := db.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Select("order_items.id AS item_id, order_items.product_option_id AS option_id, product_options.product_id AS product_id, colors.name AS color_name, sizes.name AS size_name, order_items.quantity AS quantity").
		Joins("JOIN product_options ON product_options.id = order_items.product_option_id").
		Joins("JOIN colors ON colors.id = product_options.color_id").
		Joins("JOIN sizes ON sizes.id = product_options.size_id").
		Where("order_items.order_detail_id = ?", detailID).
		Order("order_items.id asc").
		Scan(&out).Error
	return out, err
}

// SearchPlacedOrders returns one page of placed orders matching the filter,
// plus the unpaginated total. Only details in the initial placed status are
// listed, matching what downstream reporting consumes.
func SearchPlacedOrders(ctx context.Context, db *gorm.DB, f OrderFilter, offset, limit int) ([]PlacedOrderRow, int64, error) {
	base := func() *gorm.DB { return placedOrders(db.WithContext(ctx), f) }

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "order_details.ordered_at desc, order_details.id desc"
	if f.Ascending {
		order = "order_details.ordered_at asc, order_details.id asc"
	}
	var rows []PlacedOrderRow
	err := base().
		Select("orders.id AS order_no, order_details.id AS detail_id, order_details.ordered_at AS ordered_at, products.code AS product_code, product_details.name AS product_name, users.name AS orderer_name, order_details.phone_number AS phone_number, order_items.quantity AS quantity, order_details.total_price AS total_price").
		Order(order).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

// placedOrders composes the full back-office join with the filter's
// predicates applied. The product fact join binds at each order's own
// ordered_at, and joined catalog rows deliberately include soft-deleted
// products so historical orders stay listable.
func placedOrders(db *gorm.DB, f OrderFilter) *gorm.DB {
	q := db.Model(&domain.OrderDetail{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN order_items ON order_items.order_detail_id = order_details.id").
		Joins("JOIN product_options ON product_options.id = order_items.product_option_id").
		Joins("JOIN products ON products.id = product_options.product_id").
		Joins("JOIN product_details ON product_details.product_id = product_options.product_id AND product_details.start_time <= order_details.ordered_at AND product_details.close_time > order_details.ordered_at").
		Where("order_details.order_status_id = ?", domain.StatusPlaced)

	if f.From != nil {
		q = q.Where("order_details.ordered_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("order_details.ordered_at < ?", f.To.UTC())
	}
	if f.ProductName != "" {
		q = q.Where("product_details.name LIKE ?", "%"+f.ProductName+"%")
	}
	if f.OrdererName != "" {
		q = q.Where("users.name = ?", f.OrdererName)
	}
	if f.Phone != "" {
		q = q.Where("order_details.phone_number = ?", f.Phone)
	}
	if f.OrderNo != 0 {
		q = q.Where("orders.id = ?", f.OrderNo)
	}
	return q
}
