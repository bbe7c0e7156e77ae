package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tutors := api.Group("/tutors")
	tutors.Get("", handlers.ListTutors)
	tutors.Get("/:tutorId", handlers.GetTutor)
	tutors.Get("/:tutorId/availability", handlers.GetTutorAvailability)

	tutors.Post("", middleware.Protected(), handlers.BecomeTutor)
	tutors.Post("/:tutorId/reviews", middleware.Protected(), handlers.SubmitTutorReview)
	tutors.Delete("/:tutorId/reviews/me", middleware.Protected(), handlers.DeleteTutorReview)

	me := api.Group("/tutors/me", middleware.Protected(), middleware.TutorRequired())
	me.Put("", handlers.UpdateTutorProfile)
	me.Put("/availability", handlers.SetMyAvailability)
	me.Get("/sessions", handlers.GetMyTutorSessions)
}
