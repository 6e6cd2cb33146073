package router

import (
	"restro_pos/handler"
	"restro_pos/middleware"
	"restro_pos/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	pos := v1.Group("/pos", logger.New())
	pos.Get("/draft", middleware.Protected(), handler.GetDraft)
	pos.Post("/new", middleware.Protected(), handler.NewOrder)
	pos.Post("/cart/items", middleware.Protected(), validate.AddCartItem(), handler.AddCartItem)
	pos.Patch("/cart/items/:index", middleware.Protected(), validate.GetById("index"), validate.SetQuantity(), handler.UpdateCartItem)
	pos.Delete("/cart/items/:index", middleware.Protected(), validate.GetById("index"), handler.RemoveCartItem)
	pos.Post("/order-type", middleware.Protected(), validate.OrderType(), handler.SetOrderType)
	pos.Post("/order-meta", middleware.Protected(), validate.OrderMeta(), handler.SetOrderMeta)
	pos.Post("/discount", middleware.Protected(), validate.Discount(), handler.SetDiscount)
	pos.Post("/coupon", middleware.Protected(), validate.Coupon(), handler.ApplyCoupon)
	pos.Post("/hold", middleware.Protected(), handler.HoldOrder)
	pos.Post("/recall/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.RecallOrder)
	pos.Post("/kot", middleware.Protected(), handler.KitchenTicket)
	pos.Post("/checkout", middleware.Protected(), validate.Checkout(), handler.Checkout)
	pos.Get("/bills", middleware.Protected(), handler.GetBills)
	pos.Post("/command", middleware.Protected(), validate.Command(), handler.ExecCommand)
	pos.Get("/live-status", middleware.Protected(), handler.LiveStatus)

	catalog := v1.Group("/catalog", logger.New())
	catalog.Get("/products", middleware.Protected(), handler.GetProducts)
	catalog.Get("/products/search", middleware.Protected(), handler.SearchCachedProducts)
	catalog.Get("/categories", middleware.Protected(), handler.GetCategories)
	catalog.Get("/tables", middleware.Protected(), handler.GetTables)
	catalog.Get("/staff", middleware.Protected(), handler.GetStaff)
	catalog.Get("/customers", middleware.Protected(), handler.GetCustomers)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/orders", websocket.New(handler.OrderWebsocket))
}
