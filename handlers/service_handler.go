package handlers

import (
	"errors"
	"math"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateServiceRequest struct {
	Name          string `json:"name" validate:"required,min=3"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"required"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Website       string `json:"website" validate:"omitempty,url"`
	OpeningHours  string `json:"opening_hours"`
	PriceRange    string `json:"price_range"`
}

func CreateService(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := models.Service{
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		Website:       req.Website,
		OpeningHours:  req.OpeningHours,
		PriceRange:    req.PriceRange,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func ListServices(c *fiber.Ctx) error {
	query := database.DB.Preload("User")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if c.Query("verified") == "true" {
		query = query.Where("is_verified = ?", true)
	}

	var services []models.Service
	query.Order("average_rating desc, total_reviews desc").Limit(50).Find(&services)

	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := database.DB.Preload("User").First(&service, "id = ?", c.Params("serviceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var reviews []models.ServiceReview
	database.DB.Preload("User").
		Where("service_id = ?", service.ID).
		Order("created_at desc").
		Limit(20).
		Find(&reviews)

	return c.JSON(fiber.Map{
		"service": service,
		"reviews": reviews,
	})
}

type UpdateServiceRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	ContactNumber *string `json:"contact_number"`
	ContactEmail  *string `json:"contact_email"`
	Website       *string `json:"website"`
	OpeningHours  *string `json:"opening_hours"`
	PriceRange    *string `json:"price_range"`
}

func UpdateService(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("serviceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your service listing"})
	}

	var req UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Location != nil {
		service.Location = *req.Location
	}
	if req.ContactNumber != nil {
		service.ContactNumber = *req.ContactNumber
	}
	if req.ContactEmail != nil {
		service.ContactEmail = *req.ContactEmail
	}
	if req.Website != nil {
		service.Website = *req.Website
	}
	if req.OpeningHours != nil {
		service.OpeningHours = *req.OpeningHours
	}
	if req.PriceRange != nil {
		service.PriceRange = *req.PriceRange
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}
	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("serviceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your service listing"})
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ServiceReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func SubmitServiceReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	serviceID, err := uuid.Parse(c.Params("serviceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service id"})
	}

	var req ServiceReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var review models.ServiceReview
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
			return err
		}
		if service.UserID == userID {
			return errors.New("you cannot review your own service")
		}

		err := tx.Where("service_id = ? AND user_id = ?", serviceID, userID).First(&review).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.ServiceReview{ServiceID: serviceID, UserID: userID}
		default:
			return err
		}

		review.Rating = req.Rating
		review.Comment = req.Comment
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		var result struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&models.ServiceReview{}).
			Where("service_id = ?", serviceID).
			Select("coalesce(avg(rating), 0) as avg, count(*) as count").
			Scan(&result).Error; err != nil {
			return err
		}

		return tx.Model(&models.Service{}).Where("id = ?", serviceID).
			Updates(map[string]interface{}{
				"average_rating": math.Round(result.Avg*100) / 100,
				"total_reviews":  result.Count,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
