// Pricing policy.
//
// The discount rule lives here and nowhere else: storefront listing, detail
// pages, checkout pricing, and historical order display all call the same
// two methods, so a past order re-priced at its own OrderedAt always
// reproduces the total that was frozen into it.
package domain

import "time"

// DiscountRateAt returns the discount percentage binding at the given
// instant, applying the three-way rule:
//
//   - no DiscountRate set: 0
//   - DiscountRate set, no DiscountStart: the rate, unconditionally
//   - window set: the rate iff DiscountStart <= at <= DiscountEnd
//     (inclusive on both ends), otherwise 0
//
// A DiscountStart with a nil DiscountEnd never activates.
func (d *ProductDetail) DiscountRateAt(at time.Time) int64 {
	if d.DiscountRate == nil {
		return 0
	}
	if d.DiscountStart == nil {
		return *d.DiscountRate
	}
	if d.DiscountEnd == nil || at.Before(*d.DiscountStart) || at.After(*d.DiscountEnd) {
		return 0
	}
	return *d.DiscountRate
}

// EffectivePriceAt returns the unit price after the discount binding at the
// given instant. Prices are whole currency units, so the computation is
// exact integer arithmetic with no rounding mode to choose.
func (d *ProductDetail) EffectivePriceAt(at time.Time) int64 {
	return d.Price * (100 - d.DiscountRateAt(at)) / 100
}

// QuantityInBounds reports whether q satisfies the inclusive
// [MinSalesQuantity, MaxSalesQuantity] per-order purchase bounds.
func (d *ProductDetail) QuantityInBounds(q int64) bool {
	return q >= d.MinSalesQuantity && q <= d.MaxSalesQuantity
}
