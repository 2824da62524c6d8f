package service

import "math"

// Duration discount tiers for prepaying multiple months. Any other duration
// gets no discount.
var durationDiscounts = map[int]float64{
	1:  0,
	3:  0.15,
	6:  0.18,
	12: 0.20,
}

// DurationDiscount returns the fractional discount for a subscription of the
// given length in months.
func DurationDiscount(months int) float64 {
	return durationDiscounts[months]
}

// ComputeFinalPrice computes the total subscription price from the plan's
// monthly rate, the duration tier and an optional promo discount percentage:
//
//	round(pricePerMonth * months * (1 - tier) * (1 - promo/100))
//
// It is a pure function; both the public form and the order intake compute
// it from the same inputs.
func ComputeFinalPrice(pricePerMonth int64, months int, promoDiscountPct int) int64 {
	total := float64(pricePerMonth) * float64(months) * (1 - DurationDiscount(months))
	if promoDiscountPct > 0 {
		total *= 1 - float64(promoDiscountPct)/100
	}
	return int64(math.Round(total))
}
