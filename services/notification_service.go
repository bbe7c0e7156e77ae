package services

import (
	"log"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/websocket"
	"github.com/google/uuid"
)

// Notify writes an in-app notification and pushes it to the recipient's
// websocket connection if one is open. It is fire-and-forget: failures are
// logged and never surfaced to the caller, so a failed notification cannot
// roll back the state change that triggered it.
func Notify(userID uuid.UUID, notificationType, title, message, link string) {
	notification := models.Notification{
		UserID:           userID,
		NotificationType: notificationType,
		Title:            title,
		Message:          message,
		Link:             link,
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("🔥 Failed to store notification for user %s: %v", userID, err)
		return
	}

	websocket.PushNotification(&notification)
}
