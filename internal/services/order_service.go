// Package services – OrderService
//
// This file implements OrderService, the application-level component that
// owns order placement. Place runs the whole placement pipeline inside one
// database transaction: buyer validation, sellability and quantity checks,
// the atomic stock reservation, the shipping-address upsert, and the order
// graph insert with the server-computed frozen total. Any step failing rolls
// the whole attempt back, so a failed order can never leak a reservation.
//
// The same file carries the read side of orders: the checkout preview, the
// back-office search, and the order view that re-resolves product facts at
// each order's own placement instant.
//
// Observability: placement and the order view are OpenTelemetry-instrumented;
// spans carry user/product identifiers and the requested quantity.

package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/domain"
	"github.com/tbourn/go-shop-backend/internal/repo"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PlaceOrderInput carries everything a checkout submits. The service
// recomputes the total itself; client-supplied amounts are never trusted.
type PlaceOrderInput struct {
	ProductID       uint
	ColorID         uint
	SizeID          uint
	Quantity        int64
	Receiver        string
	PhoneNumber     string
	Address         string
	AddressDetail   string
	ZipCode         string
	DeliveryRequest string
}

// CheckoutSummary is the read-only preview shown before placement. It prices
// the request at the preview instant and includes the buyer's address on
// file, if any, for form prefill.
type CheckoutSummary struct {
	ProductID      uint                    `json:"product_id"`
	ProductName    string                  `json:"product_name"`
	UnitPrice      int64                   `json:"unit_price"`
	DiscountRate   int64                   `json:"discount_rate"`
	EffectivePrice int64                   `json:"effective_price"`
	Quantity       int64                   `json:"quantity"`
	TotalPrice     int64                   `json:"total_price"`
	Address        *domain.ShippingAddress `json:"address,omitempty"`
}

// OrderLineView is one purchased line of an order, joined with the product
// fact that was binding at placement.
type OrderLineView struct {
	ItemID      uint   `json:"item_id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	ColorName   string `json:"color"`
	SizeName    string `json:"size"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// OrderView is the full order detail: the frozen snapshot plus its lines.
type OrderView struct {
	OrderNo         uint            `json:"order_no"`
	DetailID        uint            `json:"detail_id"`
	StatusID        uint            `json:"status_id"`
	OrderedAt       time.Time       `json:"ordered_at"`
	TotalPrice      int64           `json:"total_price"`
	Receiver        string          `json:"receiver"`
	PhoneNumber     string          `json:"phone_number"`
	Address         string          `json:"address"`
	AddressDetail   string          `json:"address_detail,omitempty"`
	ZipCode         string          `json:"zip_code,omitempty"`
	DeliveryRequest string          `json:"delivery_request,omitempty"`
	Lines           []OrderLineView `json:"lines"`
}

// OrderService coordinates order placement and order reads.
type OrderService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now supplies the placement instant; tests inject a fixed clock. A nil
	// Now falls back to time.Now in UTC.
	Now func() time.Time
}

// NewOrderService constructs an OrderService using the wall clock.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Place executes a checkout and returns the assigned order number.
//
// The whole pipeline runs in a single transaction against one instant:
//
//  1. the buyer account must exist (ErrUnauthorized),
//  2. the product must have an activated fact binding now
//     (ErrProductUnavailable),
//  3. the quantity must fall inside the fact's per-order bounds
//     (ErrInvalidQuantity),
//  4. the (color, size) option must exist (ErrProductUnavailable),
//  5. the stock reservation must succeed (ErrOutOfStock),
//  6. the shipping address on file is overwritten with the submitted one,
//  7. the order graph is inserted with the recomputed total and the
//     submitted shipping fields frozen onto the detail row.
//
// Steps 6 and 7 never run when an earlier step failed, and a later failure
// rolls back the reservation, so stock and orders always agree.
func (s *OrderService) Place(ctx context.Context, userID uint, in PlaceOrderInput) (uint, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "Place",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(in.ProductID)),
			attribute.Int64("quantity", in.Quantity),
		),
	)
	defer span.End()

	// One instant per attempt: the price snapshot, the stock fact interval,
	// and the order's ordered_at all carry the same value.
	now := s.now()

	var orderNo uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetActiveUser(ctx, tx, userID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrUnauthorized
			}
			return err
		}

		if _, err := repo.GetProduct(ctx, tx, in.ProductID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductUnavailable
			}
			return err
		}
		detail, err := repo.ActiveDetailAt(ctx, tx, in.ProductID, now)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductUnavailable
			}
			return err
		}
		if !detail.IsActivated {
			return ErrProductUnavailable
		}

		if !detail.QuantityInBounds(in.Quantity) {
			return ErrInvalidQuantity
		}

		option, err := repo.FindActiveOption(ctx, tx, in.ProductID, in.ColorID, in.SizeID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductUnavailable
			}
			return err
		}

		if _, err := repo.ReserveStock(ctx, tx, option.ID, in.Quantity, now); err != nil {
			switch {
			case errors.Is(err, repo.ErrInsufficientStock):
				return ErrOutOfStock
			case errors.Is(err, repo.ErrNotFound):
				return ErrProductUnavailable
			}
			return err
		}

		if err := repo.UpsertShippingAddress(ctx, tx, &domain.ShippingAddress{
			UserID:        userID,
			Receiver:      in.Receiver,
			PhoneNumber:   in.PhoneNumber,
			Address:       in.Address,
			AddressDetail: in.AddressDetail,
			ZipCode:       in.ZipCode,
		}); err != nil {
			return err
		}

		order, err := repo.CreateOrder(ctx, tx, userID)
		if err != nil {
			return err
		}
		od := &domain.OrderDetail{
			OrderID:         order.ID,
			OrderStatusID:   domain.StatusPlaced,
			TotalPrice:      detail.EffectivePriceAt(now) * in.Quantity,
			DeliveryRequest: in.DeliveryRequest,
			Receiver:        in.Receiver,
			PhoneNumber:     in.PhoneNumber,
			Address:         in.Address,
			AddressDetail:   in.AddressDetail,
			ZipCode:         in.ZipCode,
			OrderedAt:       now,
		}
		if err := repo.CreateOrderDetail(ctx, tx, od); err != nil {
			return err
		}
		if _, err := repo.CreateOrderItem(ctx, tx, od.ID, option.ID, in.Quantity); err != nil {
			return err
		}

		orderNo = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Best-effort activity stamp, deliberately outside the transaction.
	_ = repo.TouchLastAccess(ctx, s.DB, userID, now)

	return orderNo, nil
}

// Checkout prices a prospective order without reserving anything. It runs
// the same validations as Place, so a preview that succeeds will normally
// place unless stock or the catalog moves in between.
func (s *OrderService) Checkout(ctx context.Context, userID, productID, colorID, sizeID uint, qty int64) (*CheckoutSummary, error) {
	now := s.now()

	if _, err := repo.GetActiveUser(ctx, s.DB, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	detail, err := repo.ActiveDetailAt(ctx, s.DB, productID, now)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, err
	}
	if !detail.IsActivated {
		return nil, ErrProductUnavailable
	}
	if !detail.QuantityInBounds(qty) {
		return nil, ErrInvalidQuantity
	}
	option, err := repo.FindActiveOption(ctx, s.DB, productID, colorID, sizeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, err
	}
	if option.CurrentQuantity < qty {
		return nil, ErrOutOfStock
	}

	sum := &CheckoutSummary{
		ProductID:      productID,
		ProductName:    detail.Name,
		UnitPrice:      detail.Price,
		DiscountRate:   detail.DiscountRateAt(now),
		EffectivePrice: detail.EffectivePriceAt(now),
		Quantity:       qty,
		TotalPrice:     detail.EffectivePriceAt(now) * qty,
	}
	if addr, err := repo.GetShippingAddress(ctx, s.DB, userID); err == nil {
		sum.Address = addr
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	return sum, nil
}

// Search returns one page of placed orders for the back office, plus the
// unpaginated total.
func (s *OrderService) Search(ctx context.Context, f repo.OrderFilter, page, pageSize int) ([]repo.PlacedOrderRow, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return repo.SearchPlacedOrders(ctx, s.DB, f, offset, pageSize)
}

// Detail returns the full order view. Product names and unit prices are
// re-resolved against the order's own placement instant, so the view always
// reproduces what the buyer saw, regardless of later catalog changes.
func (s *OrderService) Detail(ctx context.Context, detailID uint) (*OrderView, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "Detail",
		trace.WithAttributes(attribute.Int("order_detail.id", int(detailID))),
	)
	defer span.End()

	od, err := repo.GetOrderDetail(ctx, s.DB, detailID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := repo.ListOrderItemViews(ctx, s.DB, detailID)
	if err != nil {
		return nil, err
	}

	view := &OrderView{
		OrderNo:         od.OrderID,
		DetailID:        od.ID,
		StatusID:        od.OrderStatusID,
		OrderedAt:       od.OrderedAt,
		TotalPrice:      od.TotalPrice,
		Receiver:        od.Receiver,
		PhoneNumber:     od.PhoneNumber,
		Address:         od.Address,
		AddressDetail:   od.AddressDetail,
		ZipCode:         od.ZipCode,
		DeliveryRequest: od.DeliveryRequest,
		Lines:           make([]OrderLineView, 0, len(items)),
	}
	for _, it := range items {
		line := OrderLineView{
			ItemID:    it.ItemID,
			ProductID: it.ProductID,
			ColorName: it.ColorName,
			SizeName:  it.SizeName,
			Quantity:  it.Quantity,
		}
		// The fact interval containing ordered_at names and prices the line.
		if d, err := repo.ActiveDetailAt(ctx, s.DB, it.ProductID, od.OrderedAt); err == nil {
			line.ProductName = d.Name
			line.UnitPrice = d.EffectivePriceAt(od.OrderedAt)
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		view.Lines = append(view.Lines, line)
	}
	return view, nil
}

// Stats returns aggregate order metadata for conditional back-office reads.
func (s *OrderService) Stats(ctx context.Context) (int64, int64, *time.Time, error) {
	return repo.OrderStats(ctx, s.DB)
}
