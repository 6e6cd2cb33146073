package pos_test

import (
	"context"
	"testing"

	"restro_pos/model"
	"restro_pos/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promotionFixture(id uint, code string, percentage, amount float64) model.Promotion {
	p := model.Promotion{
		Code:               code,
		Name:               code,
		DiscountPercentage: percentage,
		DiscountAmount:     amount,
		Status:             "active",
	}
	p.ID = id
	return p
}

func TestSetDiscountAmount_KeepsPercentageConsistent(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Steak", 50))
	require.NoError(t, engine.SetQuantity(0, 2)) // total 100

	engine.SetDiscountAmount(20)

	draft := engine.Draft()
	assert.Equal(t, 20.0, draft.DiscountAmount)
	assert.Equal(t, 20.0, draft.DiscountPercentage)
	assert.Equal(t, 80.0, engine.Payable())
}

func TestSetDiscountPercentage_KeepsAmountConsistent(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Steak", 50))
	require.NoError(t, engine.SetQuantity(0, 2))

	engine.SetDiscountPercentage(25)

	draft := engine.Draft()
	assert.Equal(t, 25.0, draft.DiscountAmount)
	assert.Equal(t, 25.0, draft.DiscountPercentage)
	assert.Equal(t, 75.0, engine.Payable())
}

func TestApplyCoupon_Percentage(t *testing.T) {
	engine, _, _, promotions, _ := newTestEngine()
	promotions.byCode["TENOFF"] = promotionFixture(9, "TENOFF", 10, 0)

	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 2)) // total 50

	promo, err := engine.ApplyCoupon(context.Background(), "TENOFF")
	require.NoError(t, err)
	assert.Equal(t, uint(9), promo.ID)

	draft := engine.Draft()
	assert.Equal(t, 10.0, draft.DiscountPercentage)
	assert.Equal(t, 5.0, draft.DiscountAmount)
	require.NotNil(t, draft.AppliedPromotionID)
	assert.Equal(t, uint(9), *draft.AppliedPromotionID)
}

func TestApplyCoupon_FixedAmount(t *testing.T) {
	engine, _, _, promotions, _ := newTestEngine()
	promotions.byCode["FIVER"] = promotionFixture(3, "FIVER", 0, 5)

	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 2))

	_, err := engine.ApplyCoupon(context.Background(), "FIVER")
	require.NoError(t, err)

	draft := engine.Draft()
	assert.Equal(t, 5.0, draft.DiscountAmount)
	assert.Equal(t, 10.0, draft.DiscountPercentage)
}

func TestApplyCoupon_NotFoundResetsDiscount(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Pizza", 25))
	engine.SetDiscountAmount(5)

	_, err := engine.ApplyCoupon(context.Background(), "NOPE")
	assert.ErrorIs(t, err, pos.ErrPromotionNotFound)

	draft := engine.Draft()
	assert.Zero(t, draft.DiscountAmount)
	assert.Zero(t, draft.DiscountPercentage)
	assert.Nil(t, draft.AppliedPromotionID)
}

func TestApplyCoupon_EmptyCodeSkipsLookup(t *testing.T) {
	engine, _, _, promotions, _ := newTestEngine()
	engine.AddProduct(productFixture(1, "Pizza", 25))
	engine.SetDiscountAmount(5)

	_, err := engine.ApplyCoupon(context.Background(), "")
	assert.ErrorIs(t, err, pos.ErrPromotionNotFound)
	assert.Zero(t, promotions.calls, "no remote lookup for an empty code")
	assert.Zero(t, engine.Draft().DiscountAmount)
}

func TestManualDiscountEdit_DiscardsCoupon(t *testing.T) {
	engine, _, _, promotions, _ := newTestEngine()
	promotions.byCode["TENOFF"] = promotionFixture(9, "TENOFF", 10, 0)

	engine.AddProduct(productFixture(1, "Pizza", 50))
	_, err := engine.ApplyCoupon(context.Background(), "TENOFF")
	require.NoError(t, err)
	require.NotNil(t, engine.Draft().AppliedPromotionID)

	engine.SetDiscountAmount(7)
	assert.Nil(t, engine.Draft().AppliedPromotionID)

	_, err = engine.ApplyCoupon(context.Background(), "TENOFF")
	require.NoError(t, err)
	engine.SetDiscountPercentage(12)
	assert.Nil(t, engine.Draft().AppliedPromotionID)
}

func TestCheckout_RejectsInsufficientTender(t *testing.T) {
	engine, orders, payments, _, _ := newTestEngine()
	engine.SetOrderType(model.OrderTypeTakeOut)
	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 2)) // payable 50

	_, err := engine.Checkout(context.Background(), model.CheckoutInput{AmountReceived: 40})

	var verrs pos.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, pos.InsufficientPayment, verrs[0].Code)
	assert.Zero(t, orders.createdCount())
	assert.Empty(t, payments.processed)
	// The draft survives so the cashier can collect the rest.
	assert.Equal(t, 50.0, engine.Total())
}

func TestCheckout_ComputesChange(t *testing.T) {
	engine, _, payments, _, _ := newTestEngine()
	engine.SetOrderType(model.OrderTypeTakeOut)
	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 2))

	receipt, err := engine.Checkout(context.Background(), model.CheckoutInput{AmountReceived: 60})
	require.NoError(t, err)

	assert.Equal(t, 50.0, receipt.AmountPaid)
	assert.Equal(t, 60.0, receipt.AmountReceived)
	assert.Equal(t, 10.0, receipt.ChangeAmount)
	require.Len(t, payments.processed, 1)
	assert.Equal(t, 10.0, payments.processed[0].ChangeAmount)
}

func TestCheckout_SplitTenderSkipsCoverageCheck(t *testing.T) {
	engine, _, payments, _, _ := newTestEngine()
	engine.SetOrderType(model.OrderTypeTakeOut)
	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 2))

	input := model.CheckoutInput{
		AmountReceived: 30,
		IsSplit:        true,
		SplitPayments: []model.SplitPayment{
			{Amount: 30, PaymentMethod: "cash"},
			{Amount: 20, PaymentMethod: "card"},
		},
	}
	_, err := engine.Checkout(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, payments.processed, 1)
	assert.True(t, payments.processed[0].IsSplit)
	assert.Len(t, payments.processed[0].SplitPayments, 2)
}

func TestCheckout_DiscountAppliedToPayment(t *testing.T) {
	engine, _, payments, _, _ := newTestEngine()
	engine.SetOrderType(model.OrderTypeTakeOut)
	engine.AddProduct(productFixture(1, "Pizza", 25))
	require.NoError(t, engine.SetQuantity(0, 4)) // total 100
	engine.SetDiscountPercentage(20)             // payable 80

	receipt, err := engine.Checkout(context.Background(), model.CheckoutInput{AmountReceived: 80})
	require.NoError(t, err)

	assert.Equal(t, 100.0, receipt.SubTotal)
	assert.Equal(t, 20.0, receipt.DiscountAmount)
	assert.Equal(t, 80.0, receipt.AmountPaid)
	require.Len(t, payments.processed, 1)
	assert.Equal(t, 80.0, payments.processed[0].AmountPaid)
}
