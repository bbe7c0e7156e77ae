package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func ServiceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	services := api.Group("/services")
	services.Get("", handlers.ListServices)
	services.Get("/:serviceId", handlers.GetService)
	services.Post("", middleware.Protected(), handlers.CreateService)
	services.Put("/:serviceId", middleware.Protected(), handlers.UpdateService)
	services.Delete("/:serviceId", middleware.Protected(), handlers.DeleteService)
	services.Post("/:serviceId/reviews", middleware.Protected(), handlers.SubmitServiceReview)
}
