package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	messages := api.Group("/messages", middleware.Protected())
	messages.Get("", handlers.GetMyInbox)
	messages.Post("", handlers.SendMessage)
	messages.Get("/:userId", handlers.GetConversation)

	notifications := api.Group("/notifications", middleware.Protected())
	notifications.Get("", handlers.ListNotifications)
	notifications.Post("/read-all", handlers.MarkAllNotificationsRead)
	notifications.Post("/:notificationId/read", handlers.MarkNotificationRead)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
