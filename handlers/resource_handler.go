package handlers

import (
	"errors"
	"math"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadResourceRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description"`
	ResourceType string `json:"resource_type" validate:"required,oneof=notes past_paper slides textbook assignment other"`
	Subject      string `json:"subject" validate:"required"`
	CourseCode   string `json:"course_code" validate:"required"`
	FileURL      string `json:"file_url" validate:"required,url"`
}

func UploadResource(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UploadResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resource := models.Resource{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		ResourceType: req.ResourceType,
		Subject:      req.Subject,
		CourseCode:   req.CourseCode,
		FileURL:      req.FileURL,
	}
	if err := database.DB.Create(&resource).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload resource"})
	}

	go services.AwardPoints(userID, "upload_resource")

	return c.Status(fiber.StatusCreated).JSON(resource)
}

func ListResources(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Where("is_approved = ?", true)

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if courseCode := c.Query("course_code"); courseCode != "" {
		query = query.Where("course_code LIKE ?", "%"+courseCode+"%")
	}
	if resourceType := c.Query("type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var resources []models.Resource
	query.Order("average_rating desc, downloads desc").Limit(50).Find(&resources)

	return c.JSON(resources)
}

func GetResource(c *fiber.Ctx) error {
	var resource models.Resource
	if err := database.DB.Preload("User").First(&resource, "id = ?", c.Params("resourceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}

	var reviews []models.ResourceReview
	database.DB.Preload("User").
		Where("resource_id = ?", resource.ID).
		Order("created_at desc").
		Limit(20).
		Find(&reviews)

	return c.JSON(fiber.Map{
		"resource": resource,
		"reviews":  reviews,
	})
}

// DownloadResource hands back the file URL and bumps the download counter.
func DownloadResource(c *fiber.Ctx) error {
	var resource models.Resource
	if err := database.DB.First(&resource, "id = ? AND is_approved = ?", c.Params("resourceId"), true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}

	database.DB.Model(&resource).Update("downloads", gorm.Expr("downloads + 1"))

	return c.JSON(fiber.Map{"file_url": resource.FileURL})
}

func DeleteResource(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var resource models.Resource
	if err := database.DB.First(&resource, "id = ?", c.Params("resourceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	if resource.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your resource"})
	}

	if err := database.DB.Delete(&resource).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete resource"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ResourceReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func SubmitResourceReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	resourceID, err := uuid.Parse(c.Params("resourceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid resource id"})
	}

	var req ResourceReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var review models.ResourceReview
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		if err := tx.First(&resource, "id = ?", resourceID).Error; err != nil {
			return err
		}
		if resource.UserID == userID {
			return errors.New("you cannot review your own resource")
		}

		err := tx.Where("resource_id = ? AND user_id = ?", resourceID, userID).First(&review).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.ResourceReview{ResourceID: resourceID, UserID: userID}
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
		if err := tx.Model(&models.ResourceReview{}).
			Where("resource_id = ?", resourceID).
			Select("coalesce(avg(rating), 0) as avg, count(*) as count").
			Scan(&result).Error; err != nil {
			return err
		}

		return tx.Model(&models.Resource{}).Where("id = ?", resourceID).
			Updates(map[string]interface{}{
				"average_rating": math.Round(result.Avg*100) / 100,
				"total_reviews":  result.Count,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func GetMyResources(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var resources []models.Resource
	database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&resources)

	return c.JSON(resources)
}
