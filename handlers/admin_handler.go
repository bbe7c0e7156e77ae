package handlers

import (
	"strconv"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
)

func AdminListUsers(c *fiber.Ctx) error {
	query := database.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if c.Query("unverified") == "true" {
		query = query.Where("is_verified = ?", false)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("full_name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size", "25"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}

	var total int64
	query.Count(&total)

	var users []models.User
	query.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users)

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
	})
}

func AdminSetUserActive(c *fiber.Ctx) error {
	type Request struct {
		IsActive bool `json:"is_active"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.User{}).
		Where("id = ?", c.Params("userId")).
		Update("is_active", req.IsActive)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"message": "User updated"})
}

func AdminListPendingResources(c *fiber.Ctx) error {
	var resources []models.Resource
	database.DB.Preload("User").
		Where("is_approved = ?", false).
		Order("created_at asc").
		Find(&resources)

	return c.JSON(resources)
}

func AdminApproveResource(c *fiber.Ctx) error {
	var resource models.Resource
	if err := database.DB.First(&resource, "id = ?", c.Params("resourceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	if resource.IsApproved {
		return c.JSON(resource)
	}

	resource.IsApproved = true
	if err := database.DB.Save(&resource).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve resource"})
	}

	services.Notify(resource.UserID, models.NotificationTypeSystem,
		"Resource approved",
		"Your resource \""+resource.Title+"\" is now live.",
		"/resources/"+resource.ID.String()+"/")

	return c.JSON(resource)
}

func AdminRejectResource(c *fiber.Ctx) error {
	var resource models.Resource
	if err := database.DB.First(&resource, "id = ?", c.Params("resourceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}

	if err := database.DB.Delete(&resource).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject resource"})
	}

	services.Notify(resource.UserID, models.NotificationTypeSystem,
		"Resource rejected",
		"Your resource \""+resource.Title+"\" did not pass review and has been removed.",
		"/resources/")

	return c.SendStatus(fiber.StatusNoContent)
}

func AdminVerifyService(c *fiber.Ctx) error {
	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("serviceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	service.IsVerified = true
	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify service"})
	}

	services.Notify(service.UserID, models.NotificationTypeSystem,
		"Service verified",
		"Your service \""+service.Name+"\" now carries a verified badge.",
		"/services/"+service.ID.String()+"/")

	return c.JSON(service)
}

func AdminGetStats(c *fiber.Ctx) error {
	var users, tutors, sessions, lostItems, jobs, resources, serviceListings int64

	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Tutor{}).Count(&tutors)
	database.DB.Model(&models.Session{}).Count(&sessions)
	database.DB.Model(&models.LostItem{}).Count(&lostItems)
	database.DB.Model(&models.Job{}).Count(&jobs)
	database.DB.Model(&models.Resource{}).Count(&resources)
	database.DB.Model(&models.Service{}).Count(&serviceListings)

	return c.JSON(fiber.Map{
		"total_users":      users,
		"total_tutors":     tutors,
		"total_sessions":   sessions,
		"total_lost_items": lostItems,
		"total_jobs":       jobs,
		"total_resources":  resources,
		"total_services":   serviceListings,
	})
}
