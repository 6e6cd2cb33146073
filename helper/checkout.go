package helper

import "math"

// Round2 rounds a money amount to cents. Totals are float64 end to end, the
// way the backend reports them, so every derived figure is normalized here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DiscountPercentage derives the percentage a discount amount represents.
// A zero total yields 0, not a division error.
func DiscountPercentage(total, amount float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(amount / total * 100)
}

// DiscountAmount derives the absolute discount from a percentage.
func DiscountAmount(total, percentage float64) float64 {
	return Round2(percentage / 100 * total)
}

// Payable is the amount the customer owes after discount, floored at zero.
func Payable(total, discount float64) float64 {
	p := Round2(total - discount)
	if p < 0 {
		return 0
	}
	return p
}

// Change is never negative: an exact or short payment gives zero change.
func Change(received, payable float64) float64 {
	ch := Round2(received - payable)
	if ch < 0 {
		return 0
	}
	return ch
}

// LineAmount computes a cart line's amount.
func LineAmount(quantity int, unitPrice, lineDiscount float64) float64 {
	return Round2(float64(quantity)*unitPrice - lineDiscount)
}
