package validate

import (
	"restro_pos/model"

	"github.com/gofiber/fiber/v2"
)

func AddCartItem() fiber.Handler {
	return body[model.AddCartItemInput]()
}

func SetQuantity() fiber.Handler {
	return body[model.SetQuantityInput]()
}

func OrderType() fiber.Handler {
	return body[model.OrderTypeInput]()
}

func OrderMeta() fiber.Handler {
	return body[model.OrderMetaInput]()
}

func Discount() fiber.Handler {
	return body[model.DiscountInput]()
}

func Coupon() fiber.Handler {
	return body[model.CouponInput]()
}

func Checkout() fiber.Handler {
	return body[model.CheckoutInput]()
}

func Command() fiber.Handler {
	return body[model.CommandInput]()
}
