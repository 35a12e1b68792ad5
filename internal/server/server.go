package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber app with the single KPI route registered.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "kpi-server",
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Get("/api/inventory_stats", handler.InventoryStats)

	return app
}
