package handlers

import (
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportLostItemRequest struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	LocationLost string   `json:"location_lost"`
	DateLost     string   `json:"date_lost" validate:"required,datetime=2006-01-02"`
	ImageURL     *string  `json:"image_url"`
	ContactInfo  string   `json:"contact_info"`
	Reward       *float64 `json:"reward"`
}

func ReportLostItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ReportLostItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dateLost, _ := time.Parse("2006-01-02", req.DateLost)
	item := models.LostItem{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       models.LostItemStatusLost,
		LocationLost: req.LocationLost,
		DateLost:     dateLost,
		ImageURL:     req.ImageURL,
		ContactInfo:  req.ContactInfo,
		Reward:       req.Reward,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to report lost item"})
	}

	go services.AwardPoints(userID, "report_lost")

	return c.Status(fiber.StatusCreated).JSON(item)
}

type ReportFoundItemRequest struct {
	LostItemID    *string `json:"lost_item_id"`
	Title         string  `json:"title" validate:"required,min=3"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required"`
	LocationFound string  `json:"location_found"`
	DateFound     string  `json:"date_found" validate:"required,datetime=2006-01-02"`
	ImageURL      *string `json:"image_url"`
	ContactInfo   string  `json:"contact_info"`
}

func ReportFoundItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ReportFoundItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dateFound, _ := time.Parse("2006-01-02", req.DateFound)
	item := models.FoundItem{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		LocationFound: req.LocationFound,
		DateFound:     dateFound,
		ImageURL:      req.ImageURL,
		ContactInfo:   req.ContactInfo,
	}
	if req.LostItemID != nil {
		if lostID, err := uuid.Parse(*req.LostItemID); err == nil {
			item.LostItemID = &lostID
		}
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to report found item"})
	}

	go services.AwardPoints(userID, "report_found")
	go services.NotifyPotentialMatches(item)

	return c.Status(fiber.StatusCreated).JSON(item)
}

func ListLostItems(c *fiber.Ctx) error {
	query := database.DB.Preload("User")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("is_resolved = ?", false)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var items []models.LostItem
	query.Order("created_at desc").Limit(50).Find(&items)

	return c.JSON(items)
}

func ListFoundItems(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Where("is_claimed = ?", false)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var items []models.FoundItem
	query.Order("created_at desc").Limit(50).Find(&items)

	return c.JSON(items)
}

func GetLostItem(c *fiber.Ctx) error {
	var item models.LostItem
	if err := database.DB.Preload("User").First(&item, "id = ?", c.Params("itemId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lost item not found"})
	}
	return c.JSON(item)
}

// MarkLostItemResolved closes the report, whether the item was recovered
// through the platform or elsewhere.
func MarkLostItemResolved(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var item models.LostItem
	if err := database.DB.First(&item, "id = ?", c.Params("itemId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lost item not found"})
	}
	if item.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your report"})
	}

	now := time.Now()
	item.Status = models.LostItemStatusReturned
	item.IsResolved = true
	item.DateFound = &now
	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update report"})
	}

	return c.JSON(item)
}

// ClaimFoundItem lets the owner claim a found item. The finder is credited
// for the return and both reports are closed.
func ClaimFoundItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var item models.FoundItem
	if err := database.DB.First(&item, "id = ?", c.Params("itemId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Found item not found"})
	}
	if item.IsClaimed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This item has already been claimed"})
	}
	if item.UserID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot claim an item you reported finding"})
	}

	item.IsClaimed = true
	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to claim item"})
	}

	if item.LostItemID != nil {
		now := time.Now()
		database.DB.Model(&models.LostItem{}).
			Where("id = ?", *item.LostItemID).
			Updates(map[string]interface{}{
				"status":      models.LostItemStatusClaimed,
				"is_resolved": true,
				"date_found":  &now,
			})
	}

	go services.AwardPoints(item.UserID, "return_item")
	services.Notify(item.UserID, models.NotificationTypeMatch,
		"Your found item was claimed",
		"The owner has claimed the item you reported. Thank you for returning it!",
		"/lost-found/found/"+item.ID.String()+"/")

	return c.JSON(item)
}

func DeleteLostItem(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var item models.LostItem
	if err := database.DB.First(&item, "id = ?", c.Params("itemId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lost item not found"})
	}
	if item.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your report"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete report"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
