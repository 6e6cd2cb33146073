package pos

import (
	"context"
	"fmt"

	"restro_pos/helper"
	"restro_pos/model"
)

// The discount pair on the draft is always consistent with one source edit:
// setting the amount recomputes the percentage and vice versa, and either
// manual edit discards a previously applied coupon.

// SetDiscountAmount applies an absolute discount.
func (e *Engine) SetDiscountAmount(amount float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := e.totalLocked()
	e.draft.DiscountAmount = helper.Round2(amount)
	e.draft.DiscountPercentage = helper.DiscountPercentage(total, amount)
	e.draft.AppliedPromotionID = nil
}

// SetDiscountPercentage applies a percentage discount.
func (e *Engine) SetDiscountPercentage(percentage float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := e.totalLocked()
	e.draft.DiscountAmount = helper.DiscountAmount(total, percentage)
	e.draft.DiscountPercentage = helper.Round2(percentage)
	e.draft.AppliedPromotionID = nil
}

// ApplyCoupon resolves a coupon code against the promotion service and
// applies it to the draft, recording the promotion id for audit. A failed or
// empty lookup zeroes the discount so a stale value never sticks around.
func (e *Engine) ApplyCoupon(ctx context.Context, code string) (model.Promotion, error) {
	var promo model.Promotion
	var err error
	if code == "" {
		// An empty code can never resolve; skip the round trip.
		err = ErrPromotionNotFound
	} else {
		promo, err = e.promotions.FindByCouponCode(ctx, code)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.draft.DiscountAmount = 0
		e.draft.DiscountPercentage = 0
		e.draft.AppliedPromotionID = nil
		e.notify("coupon %q not applied: %v", code, err)
		return model.Promotion{}, err
	}

	total := e.totalLocked()
	switch {
	case promo.DiscountPercentage > 0:
		e.draft.DiscountPercentage = helper.Round2(promo.DiscountPercentage)
		e.draft.DiscountAmount = helper.DiscountAmount(total, promo.DiscountPercentage)
	case promo.DiscountAmount > 0:
		e.draft.DiscountAmount = helper.Round2(promo.DiscountAmount)
		e.draft.DiscountPercentage = helper.DiscountPercentage(total, promo.DiscountAmount)
	default:
		e.draft.DiscountAmount = 0
		e.draft.DiscountPercentage = 0
	}

	promoID := promo.ID
	e.draft.AppliedPromotionID = &promoID
	return promo, nil
}

// Payable is what the customer owes right now.
func (e *Engine) Payable() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return helper.Payable(e.totalLocked(), e.draft.DiscountAmount)
}

// buildPaymentLocked turns the checkout input into a payment instruction.
// Non-split tender must cover the payable amount; split tender is forwarded
// as-is, the payment service is the authority on its arithmetic.
func (e *Engine) buildPaymentLocked(input model.CheckoutInput) (model.PaymentInstruction, error) {
	payable := helper.Payable(e.totalLocked(), e.draft.DiscountAmount)

	if !input.IsSplit && input.AmountReceived < payable {
		return model.PaymentInstruction{}, ValidationErrors{{
			Code:    InsufficientPayment,
			Message: fmt.Sprintf("Received %.2f is less than payable %.2f", input.AmountReceived, payable),
		}}
	}

	return model.PaymentInstruction{
		AmountReceived: input.AmountReceived,
		DiscountAmount: e.draft.DiscountAmount,
		AmountPaid:     payable,
		ChangeAmount:   helper.Change(input.AmountReceived, payable),
		IsSplit:        input.IsSplit,
		SplitPayments:  input.SplitPayments,
	}, nil
}
