package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/stats", handlers.AdminGetStats)
	admin.Get("/users", handlers.AdminListUsers)
	admin.Put("/users/:userId/active", handlers.AdminSetUserActive)
	admin.Get("/resources/pending", handlers.AdminListPendingResources)
	admin.Post("/resources/:resourceId/approve", handlers.AdminApproveResource)
	admin.Post("/resources/:resourceId/reject", handlers.AdminRejectResource)
	admin.Post("/services/:serviceId/verify", handlers.AdminVerifyService)
}
