package handlers

import (
	"errors"
	"strconv"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BecomeTutorRequest struct {
	Subjects       string  `json:"subjects" validate:"required"`
	PrimarySubject string  `json:"primary_subject" validate:"required"`
	YearOfStudy    string  `json:"year_of_study"`
	HourlyRate     float64 `json:"hourly_rate" validate:"required,gt=0"`
	Bio            string  `json:"bio" validate:"required,min=20"`
	Qualifications string  `json:"qualifications"`
}

func BecomeTutor(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req BecomeTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Tutor
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a tutor profile."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var tutor models.Tutor
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		tutor = models.Tutor{
			UserID:         userID,
			Subjects:       req.Subjects,
			PrimarySubject: req.PrimarySubject,
			YearOfStudy:    req.YearOfStudy,
			HourlyRate:     req.HourlyRate,
			Bio:            req.Bio,
			Qualifications: req.Qualifications,
			IsAvailable:    true,
		}
		if err := tx.Create(&tutor).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Update("role", "tutor").Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tutor profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(tutor)
}

type UpdateTutorRequest struct {
	Subjects       *string  `json:"subjects"`
	PrimarySubject *string  `json:"primary_subject"`
	YearOfStudy    *string  `json:"year_of_study"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Bio            *string  `json:"bio"`
	Qualifications *string  `json:"qualifications"`
	IsAvailable    *bool    `json:"is_available"`
}

func UpdateTutorProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var tutor models.Tutor
	if err := database.DB.Where("user_id = ?", userID).First(&tutor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor profile not found"})
	}

	var req UpdateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Subjects != nil {
		tutor.Subjects = *req.Subjects
	}
	if req.PrimarySubject != nil {
		tutor.PrimarySubject = *req.PrimarySubject
	}
	if req.YearOfStudy != nil {
		tutor.YearOfStudy = *req.YearOfStudy
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hourly rate must be positive"})
		}
		// Rate changes apply to new bookings only; existing sessions keep
		// the amount fixed at creation.
		tutor.HourlyRate = *req.HourlyRate
	}
	if req.Bio != nil {
		tutor.Bio = *req.Bio
	}
	if req.Qualifications != nil {
		tutor.Qualifications = *req.Qualifications
	}
	if req.IsAvailable != nil {
		tutor.IsAvailable = *req.IsAvailable
	}

	if err := database.DB.Save(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tutor profile"})
	}

	return c.JSON(tutor)
}

func ListTutors(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Where("is_available = ?", true)

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subjects LIKE ? OR primary_subject = ?", "%"+subject+"%", subject)
	}
	if maxRate := c.Query("max_rate"); maxRate != "" {
		if rate, err := strconv.ParseFloat(maxRate, 64); err == nil {
			query = query.Where("hourly_rate <= ?", rate)
		}
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		if rating, err := strconv.ParseFloat(minRating, 64); err == nil {
			query = query.Where("rating >= ?", rating)
		}
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var tutors []models.Tutor
	query.Order("rating desc, total_sessions desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tutors)

	return c.JSON(tutors)
}

func GetTutor(c *fiber.Ctx) error {
	tutorID := c.Params("tutorId")

	var tutor models.Tutor
	if err := database.DB.Preload("User").Where("user_id = ?", tutorID).First(&tutor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var reviews []models.TutorReview
	database.DB.Preload("Student").
		Where("tutor_id = ?", tutorID).
		Order("created_at desc").
		Limit(20).
		Find(&reviews)

	return c.JSON(fiber.Map{
		"tutor":   tutor,
		"reviews": reviews,
	})
}

type SetAvailabilityRequest struct {
	Hours models.WeeklyHours `json:"hours" validate:"required"`
}

func SetMyAvailability(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	availability, err := services.ReplaceAvailability(userID, req.Hours)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(availability)
}

func GetTutorAvailability(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	var availability models.TutorAvailability
	if err := database.DB.Where("tutor_id = ?", tutorID).First(&availability).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"tutor_id": tutorID, "hours": models.WeeklyHours{}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(availability)
}
