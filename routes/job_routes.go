package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func JobRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	jobs := api.Group("/jobs")
	jobs.Get("", handlers.ListJobs)
	jobs.Get("/:jobId", handlers.GetJob)

	jobs.Post("", middleware.Protected(), handlers.CreateJob)
	jobs.Put("/:jobId", middleware.Protected(), handlers.UpdateJob)
	jobs.Delete("/:jobId", middleware.Protected(), handlers.DeleteJob)
	jobs.Post("/:jobId/apply", middleware.Protected(), handlers.ApplyToJob)
	jobs.Get("/:jobId/applications", middleware.Protected(), handlers.ListJobApplications)

	applications := api.Group("/applications", middleware.Protected())
	applications.Get("/me", handlers.GetMyApplications)
	applications.Post("/:applicationId/withdraw", handlers.WithdrawApplication)
	applications.Post("/:applicationId/:decision", handlers.DecideApplication)
}
