package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func LostFoundRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lost := api.Group("/lost-items")
	lost.Get("", handlers.ListLostItems)
	lost.Get("/:itemId", handlers.GetLostItem)
	lost.Post("", middleware.Protected(), handlers.ReportLostItem)
	lost.Post("/:itemId/resolve", middleware.Protected(), handlers.MarkLostItemResolved)
	lost.Delete("/:itemId", middleware.Protected(), handlers.DeleteLostItem)

	found := api.Group("/found-items")
	found.Get("", handlers.ListFoundItems)
	found.Post("", middleware.Protected(), handlers.ReportFoundItem)
	found.Post("/:itemId/claim", middleware.Protected(), handlers.ClaimFoundItem)
}
