package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func ResourceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	resources := api.Group("/resources")
	resources.Get("", handlers.ListResources)
	resources.Get("/me", middleware.Protected(), handlers.GetMyResources)
	resources.Get("/:resourceId", handlers.GetResource)
	resources.Post("", middleware.Protected(), handlers.UploadResource)
	resources.Post("/:resourceId/download", handlers.DownloadResource)
	resources.Post("/:resourceId/reviews", middleware.Protected(), handlers.SubmitResourceReview)
	resources.Delete("/:resourceId", middleware.Protected(), handlers.DeleteResource)
}
