package handler

import (
	"encoding/base64"
	"errors"
	"log"

	"restro_pos/constants"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/pos"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func GetDraft(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"draft":    engine.Draft(),
		"total":    engine.Total(),
		"payable":  engine.Payable(),
		"selected": engine.Selected(),
		"cashier":  helper.GetInfoAccountFromToken(c),
	})
}

func NewOrder(c *fiber.Ctx) error {
	engine.NewOrder()
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func AddCartItem(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	product, found := catalogCache.FindProduct(input.ProductID)
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("product not in current catalog page"))
	}

	engine.AddProduct(product)
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func UpdateCartItem(c *fiber.Ctx) error {
	index, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse index fail"))
	}
	input, ok := c.Locals("input").(model.SetQuantityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	if err := engine.SetQuantity(index, input.Quantity); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func RemoveCartItem(c *fiber.Ctx) error {
	index, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse index fail"))
	}

	if err := engine.RemoveItem(index); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func SetOrderType(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.OrderTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	engine.SetOrderType(input.OrderType)
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func SetOrderMeta(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.OrderMetaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	engine.SetOrderMeta(input)
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func SetDiscount(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.DiscountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	switch {
	case input.Amount != nil:
		engine.SetDiscountAmount(*input.Amount)
	case input.Percentage != nil:
		engine.SetDiscountPercentage(*input.Percentage)
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("amount or percentage required"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"draft":   engine.Draft(),
		"payable": engine.Payable(),
	})
}

func ApplyCoupon(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CouponInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	promo, err := engine.ApplyCoupon(c.Context(), input.Code)
	if err != nil {
		if errors.Is(err, pos.ErrPromotionNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COUPON_NOT_FOUND, err)
		}
		return respondEngineError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"promotion": promo,
		"draft":     engine.Draft(),
		"payable":   engine.Payable(),
	})
}

func HoldOrder(c *fiber.Ctx) error {
	if err := engine.Hold(c.Context()); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func RecallOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	if err := engine.Recall(c.Context(), uint(orderId)); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func KitchenTicket(c *fiber.Ctx) error {
	if err := engine.KOT(c.Context()); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, engine.Draft())
}

func Checkout(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	// Snapshot before dispatch: a successful checkout clears the draft and
	// we still want the customer for the receipt mail.
	draft := engine.Draft()

	receipt, err := engine.Checkout(c.Context(), input)
	if err != nil {
		return respondEngineError(c, err)
	}

	qrBytes, err := utils.GenerateQRCode(receipt.OrderCode, 256)
	if err != nil {
		log.Printf("Error generating receipt QR for %s: %v", receipt.OrderCode, err)
	} else {
		receipt.QRCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	if draft.CustomerID != nil {
		if customer, found := catalogCache.FindCustomer(*draft.CustomerID); found && customer.Email != "" {
			utils.SendReceiptEmail(customer.Email, receiptEmailData(receipt))
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, receipt)
}

func receiptEmailData(receipt model.Receipt) utils.ReceiptEmailData {
	data := utils.ReceiptEmailData{
		OrderCode:      receipt.OrderCode,
		SubTotal:       receipt.SubTotal,
		DiscountAmount: receipt.DiscountAmount,
		AmountPaid:     receipt.AmountPaid,
		ChangeAmount:   receipt.ChangeAmount,
	}
	for _, item := range receipt.Items {
		data.Lines = append(data.Lines, utils.ReceiptEmailLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
		})
	}
	return data
}

func GetBills(c *fiber.Ctx) error {
	bills, total, err := engine.BillList(c.Context())
	if err != nil {
		return respondEngineError(c, &pos.RemoteError{Op: "bill list", Err: err})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bills,
		TotalCount: total,
	})
}

func ExecCommand(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CommandInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	cmd, found := pos.Resolve(input.Key)
	if !found {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("unknown accelerator "+input.Key))
	}

	if err := engine.Exec(c.Context(), cmd); err != nil {
		return respondEngineError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"command": cmd,
		"draft":   engine.Draft(),
	})
}

func LiveStatus(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"connected": listener.Connected(),
	})
}
