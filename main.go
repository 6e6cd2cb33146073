package main

import (
	"context"
	"log"
	"time"

	"restro_pos/client"
	"restro_pos/config"
	"restro_pos/handler"
	"restro_pos/pos"
	"restro_pos/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	orders := client.NewOrders(config.Config("ORDER_SERVICE_URL"))
	payments := client.NewPayments(config.Config("PAYMENT_SERVICE_URL"))
	promotions := client.NewPromotions(config.Config("PROMOTION_SERVICE_URL"))
	tables := client.NewTables(config.Config("TABLE_SERVICE_URL"))
	catalog := client.NewCatalog(config.Config("CATALOG_SERVICE_URL"))

	engine := pos.NewEngine(orders, payments, promotions, tables)

	cache := pos.NewCatalogCache(catalog)
	cache.StartRefreshScheduler(1 * time.Minute)
	defer cache.StopRefreshScheduler()

	pos.StartTableReconciler(orders, catalog, tables)
	defer pos.StopTableReconciler()

	rdb := redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})
	listener := pos.NewListener(rdb, orders, handler.BroadcastBills)
	listener.Start(context.Background())
	defer listener.Stop()

	handler.Setup(engine, cache, listener)
	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
