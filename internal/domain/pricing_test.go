package domain

import (
	"testing"
	"time"
)

func rate(v int64) *int64 { return &v }

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDiscountRateAt_NoRateSet(t *testing.T) {
	d := &ProductDetail{Price: 10000}
	if got := d.DiscountRateAt(time.Now()); got != 0 {
		t.Fatalf("DiscountRateAt = %d, want 0 when no rate is set", got)
	}
}

func TestDiscountRateAt_RateWithoutWindow_AlwaysActive(t *testing.T) {
	d := &ProductDetail{Price: 10000, DiscountRate: rate(30)}
	for _, at := range []time.Time{ts("2000-01-01T00:00:00Z"), ts("2025-06-15T12:00:00Z"), ts("2099-12-31T23:59:59Z")} {
		if got := d.DiscountRateAt(at); got != 30 {
			t.Fatalf("DiscountRateAt(%v) = %d, want 30 (unconditional rate)", at, got)
		}
	}
}

func TestDiscountRateAt_Window_InclusiveOnBothEnds(t *testing.T) {
	start := ts("2025-06-01T00:00:00Z")
	end := ts("2025-06-30T23:59:59Z")
	d := &ProductDetail{Price: 10000, DiscountRate: rate(20), DiscountStart: &start, DiscountEnd: &end}

	if got := d.DiscountRateAt(start); got != 20 {
		t.Fatalf("at window start: %d, want 20 (inclusive)", got)
	}
	if got := d.DiscountRateAt(end); got != 20 {
		t.Fatalf("at window end: %d, want 20 (inclusive)", got)
	}
	if got := d.DiscountRateAt(start.Add(-time.Second)); got != 0 {
		t.Fatalf("before window: %d, want 0", got)
	}
	if got := d.DiscountRateAt(end.Add(time.Second)); got != 0 {
		t.Fatalf("after window: %d, want 0", got)
	}
}

func TestDiscountRateAt_StartWithoutEnd_NeverActivates(t *testing.T) {
	start := ts("2025-06-01T00:00:00Z")
	d := &ProductDetail{Price: 10000, DiscountRate: rate(20), DiscountStart: &start}
	if got := d.DiscountRateAt(start.Add(time.Hour)); got != 0 {
		t.Fatalf("open-ended window: %d, want 0", got)
	}
}

func TestEffectivePriceAt_ExactIntegerArithmetic(t *testing.T) {
	start := ts("2025-06-01T00:00:00Z")
	end := ts("2025-06-30T23:59:59Z")
	d := &ProductDetail{Price: 10000, DiscountRate: rate(10), DiscountStart: &start, DiscountEnd: &end}

	inside := ts("2025-06-15T12:00:00Z")
	if got := d.EffectivePriceAt(inside); got != 9000 {
		t.Fatalf("inside window: %d, want 9000", got)
	}
	// Frozen-total scenario: two units at 10% off.
	if total := d.EffectivePriceAt(inside) * 2; total != 18000 {
		t.Fatalf("total for qty 2: %d, want 18000", total)
	}
	outside := ts("2025-07-15T12:00:00Z")
	if got := d.EffectivePriceAt(outside); got != 10000 {
		t.Fatalf("outside window: %d, want 10000", got)
	}
}

func TestQuantityInBounds_InclusiveRange(t *testing.T) {
	d := &ProductDetail{MinSalesQuantity: 1, MaxSalesQuantity: 20}
	for q, want := range map[int64]bool{0: false, 1: true, 10: true, 20: true, 21: false, -3: false} {
		if got := d.QuantityInBounds(q); got != want {
			t.Fatalf("QuantityInBounds(%d) = %v, want %v", q, got, want)
		}
	}
}
