package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("/me", handlers.GetMySessions)
	sessions.Post("", handlers.CreateSession)
	sessions.Get("/:sessionId", handlers.GetSession)
	sessions.Post("/:sessionId/cancel", handlers.CancelSession)

	tutorSessions := api.Group("/tutor/sessions", middleware.Protected(), middleware.TutorRequired())
	tutorSessions.Post("/:sessionId/confirm", handlers.ConfirmSession)
	tutorSessions.Post("/:sessionId/complete", handlers.CompleteSession)
	tutorSessions.Post("/:sessionId/mark-paid", handlers.MarkSessionPaid)
}
