package handlers

import (
	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Subject    string `json:"subject"`
	Body       string `json:"body" validate:"required"`
}

func SendMessage(c *fiber.Ctx) error {
	senderID := currentUserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	receiverID, _ := uuid.Parse(req.ReceiverID)
	if receiverID == senderID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot message yourself"})
	}

	var receiver models.User
	if err := database.DB.Where("id = ? AND is_active = ?", receiverID, true).First(&receiver).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipient not found"})
	}

	var sender models.User
	database.DB.First(&sender, "id = ?", senderID)

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Subject:    req.Subject,
		Body:       req.Body,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	services.Notify(receiverID, models.NotificationTypeMessage,
		"New message from "+sender.FullName,
		req.Body,
		"/messages/"+senderID.String()+"/")

	return c.Status(fiber.StatusCreated).JSON(message)
}

func GetConversation(c *fiber.Ctx) error {
	userID := currentUserID(c)
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var messages []models.Message
	database.DB.Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("sent_at asc").
		Find(&messages)

	// Opening a conversation marks everything the other party sent as read.
	database.DB.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true)

	return c.JSON(messages)
}

func GetMyInbox(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var messages []models.Message
	database.DB.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at desc").
		Limit(100).
		Find(&messages)

	var unread int64
	database.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	return c.JSON(fiber.Map{
		"messages":     messages,
		"unread_count": unread,
	})
}

func ListNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	query.Order("created_at desc").Limit(50).Find(&notifications)

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	notificationID := c.Params("notificationId")

	result := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
