package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
)

// ---------- CheckoutPreview ----------

func TestCheckoutPreview_ParamValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(stubCatalogSvc{}, stubOrderSvc{}, stubProductSvc{}, stubUserSvc{})

	r := gin.New()
	r.GET("/orders/checkout", h.CheckoutPreview)

	for _, q := range []string{
		"",
		"product_id=1&color_id=1",                          // missing size
		"product_id=x&color_id=1&size_id=3&quantity=2",     // junk product
		"product_id=1&color_id=1&size_id=3",                // missing quantity
		"product_id=1&color_id=1&size_id=3&quantity=0",     // zero quantity
		"product_id=1&color_id=1&size_id=3&quantity=-2",    // negative quantity
		"product_id=1&color_id=1&size_id=3&quantity=maybe", // junk quantity
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/checkout?"+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q -> %d, want 400", q, w.Code)
		}
	}
}

func TestCheckoutPreview_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err      error
		status   int
		wantCode string
	}{
		{services.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
		{services.ErrProductUnavailable, http.StatusNotFound, ErrCodeProductUnavailable},
		{services.ErrInvalidQuantity, http.StatusBadRequest, ErrCodeInvalidQuantity},
		{services.ErrOutOfStock, http.StatusConflict, ErrCodeOutOfStock},
		{gorm.ErrInvalidField, http.StatusInternalServerError, ErrCodeCreateFailed},
	}
	for _, tc := range cases {
		h := New(stubCatalogSvc{}, stubOrderSvc{
			checkout: func(context.Context, uint, uint, uint, uint, int64) (*services.CheckoutSummary, error) {
				return nil, tc.err
			},
		}, stubProductSvc{}, stubUserSvc{})

		r := gin.New()
		r.GET("/orders/checkout", h.CheckoutPreview)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/checkout?product_id=1&color_id=1&size_id=3&quantity=2", nil))
		if w.Code != tc.status {
			t.Fatalf("%v -> %d, want %d", tc.err, w.Code, tc.status)
		}
		var e ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Code != tc.wantCode {
			t.Fatalf("%v -> code %q err=%v, want %q", tc.err, e.Code, err, tc.wantCode)
		}
	}
}

func TestCheckoutPreview_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, h := newHandlersEnv(t)
	buyer := seedAccount(t, h, "Asha Rao", "asha@example.com")
	productID := seedProduct(t, h, "trail-shorts", 9000, 6)

	r := gin.New()
	r.GET("/orders/checkout", h.CheckoutPreview)

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/orders/checkout?product_id=%d&color_id=1&size_id=3&quantity=2", productID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("X-User-ID", strconv.FormatUint(uint64(buyer.ID), 10))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("checkout -> %d body=%s", w.Code, w.Body.String())
	}

	var sum services.CheckoutSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("json: %v", err)
	}
	if sum.ProductName != "trail-shorts" || sum.EffectivePrice != 9000 || sum.TotalPrice != 18000 {
		t.Fatalf("unexpected summary: %#v", sum)
	}
}

// ---------- PlaceOrder ----------

func TestPlaceOrder_BadJSON_BindingGaps(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(stubCatalogSvc{}, stubOrderSvc{}, stubProductSvc{}, stubUserSvc{})

	r := gin.New()
	r.POST("/orders", h.PlaceOrder)

	for _, body := range []string{
		"{bad",
		`{}`,
		`{"product_id":1,"color_id":1,"size_id":3,"quantity":0,"receiver":"J","phone_number":"555","address":"A"}`,
		`{"product_id":1,"color_id":1,"size_id":3,"quantity":2,"receiver":"","phone_number":"555","address":"A"}`,
		`{"product_id":1,"color_id":1,"size_id":3,"quantity":2,"receiver":"J","phone_number":"555"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s -> %d, want 400", body, w.Code)
		}
	}
}

func TestPlaceOrder_Success_Then_IdempotentReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, h := newHandlersEnv(t)
	buyer := seedAccount(t, h, "Asha Rao", "asha@example.com")
	productID := seedProduct(t, h, "rain-shell", 30000, 5)

	r := gin.New()
	r.POST("/orders", h.PlaceOrder)

	payload := fmt.Sprintf(
		`{"product_id":%d,"color_id":1,"size_id":3,"quantity":2,"receiver":"Asha Rao","phone_number":"555-0117","address":"221B Baker Street","zip_code":"NW1 6XE"}`,
		productID,
	)
	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(buyer.ID), 10))
		req.Header.Set("Idempotency-Key", "order-retry-1")
		r.ServeHTTP(w, req)
		return w
	}

	// First call places the order.
	w := send()
	if w.Code != http.StatusCreated {
		t.Fatalf("place -> %d body=%s", w.Code, w.Body.String())
	}
	var first PlaceOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil || first.OrderNo == 0 {
		t.Fatalf("first response: %v %#v", err, first)
	}
	if w.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("first call must not be a replay")
	}

	// Second call with the same key replays; no extra stock is reserved.
	w = send()
	if w.Code != http.StatusCreated {
		t.Fatalf("replay -> %d body=%s", w.Code, w.Body.String())
	}
	var second PlaceOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil || second.OrderNo != first.OrderNo {
		t.Fatalf("replay order mismatch: %v %#v vs %#v", err, second, first)
	}
	if w.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay header missing")
	}

	opt, err := repo.FindActiveOption(context.Background(), db, productID, 1, 3)
	if err != nil {
		t.Fatalf("find option: %v", err)
	}
	if opt.CurrentQuantity != 3 {
		t.Fatalf("stock reserved %d times, counter = %d", 5-opt.CurrentQuantity, opt.CurrentQuantity)
	}
}

func TestPlaceOrder_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{services.ErrUnauthorized, http.StatusUnauthorized},
		{services.ErrProductUnavailable, http.StatusNotFound},
		{services.ErrInvalidQuantity, http.StatusBadRequest},
		{services.ErrOutOfStock, http.StatusConflict},
		{gorm.ErrInvalidField, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := New(stubCatalogSvc{}, stubOrderSvc{
			place: func(context.Context, uint, services.PlaceOrderInput) (uint, error) {
				return 0, tc.err
			},
		}, stubProductSvc{}, stubUserSvc{})

		r := gin.New()
		r.POST("/orders", h.PlaceOrder)

		w := httptest.NewRecorder()
		body := `{"product_id":1,"color_id":1,"size_id":3,"quantity":2,"receiver":"J","phone_number":"555","address":"A"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Fatalf("%v -> %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestPlaceOrder_SoldOutThroughRealService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, h := newHandlersEnv(t)
	buyer := seedAccount(t, h, "Asha Rao", "asha@example.com")
	productID := seedProduct(t, h, "slim-belt", 5000, 1)

	r := gin.New()
	r.POST("/orders", h.PlaceOrder)

	w := httptest.NewRecorder()
	body := fmt.Sprintf(
		`{"product_id":%d,"color_id":1,"size_id":3,"quantity":2,"receiver":"Asha","phone_number":"555-0117","address":"221B Baker Street"}`,
		productID,
	)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", strconv.FormatUint(uint64(buyer.ID), 10))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("oversell -> %d body=%s", w.Code, w.Body.String())
	}
	var e ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Code != ErrCodeOutOfStock {
		t.Fatalf("oversell code = %q err=%v", e.Code, err)
	}
}
