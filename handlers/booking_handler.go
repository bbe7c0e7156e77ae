package handlers

import (
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	TutorID   string `json:"tutor_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	Duration  int    `json:"duration" validate:"required,gt=0"`
	Subject   string `json:"subject" validate:"required"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

func CreateSession(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	date, _ := time.Parse("2006-01-02", req.Date)
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session date cannot be in the past"})
	}

	session, err := services.CreateSession(studentID, services.CreateSessionInput{
		TutorID:   tutorID,
		Date:      date,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Subject:   req.Subject,
		Location:  req.Location,
		Notes:     req.Notes,
	})
	if err != nil {
		return serviceError(c, err)
	}

	go services.AwardPoints(studentID, "book_tutor")

	return c.Status(fiber.StatusCreated).JSON(session)
}

func ConfirmSession(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.ConfirmSession(actorID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(session)
}

func CompleteSession(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.CompleteSession(actorID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	go services.AwardPoints(session.TutorID, "complete_session")
	go services.CheckAndGenerateCertificate(*session)

	return c.JSON(session)
}

func CancelSession(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.CancelSession(actorID, sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(session)
}

func GetMySessions(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	query := database.DB.Preload("Tutor.User").Where("student_id = ?", studentID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.Session
	query.Order("date desc, start_time desc").Find(&sessions)

	return c.JSON(sessions)
}

func GetMyTutorSessions(c *fiber.Ctx) error {
	tutorID := currentUserID(c)

	query := database.DB.Preload("Student").Where("tutor_id = ?", tutorID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.Session
	query.Order("date desc, start_time desc").Find(&sessions)

	return c.JSON(sessions)
}

func GetSession(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	sessionID := c.Params("sessionId")

	var session models.Session
	if err := database.DB.Preload("Tutor.User").Preload("Student").First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.StudentID != actorID && session.TutorID != actorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your session"})
	}

	return c.JSON(session)
}

func MarkSessionPaid(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	sessionID := c.Params("sessionId")

	var session models.Session
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.TutorID != actorID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the tutor can mark a session as paid"})
	}

	session.IsPaid = true
	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(session)
}

type TutorReviewRequest struct {
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Knowledge     int    `json:"knowledge" validate:"required,min=1,max=5"`
	Communication int    `json:"communication" validate:"required,min=1,max=5"`
	Punctuality   int    `json:"punctuality" validate:"required,min=1,max=5"`
	Helpfulness   int    `json:"helpfulness" validate:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

func SubmitTutorReview(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	var req TutorReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var completedSessions int64
	database.DB.Model(&models.Session{}).
		Where("tutor_id = ? AND student_id = ? AND status = ?", tutorID, studentID, models.SessionStatusCompleted).
		Count(&completedSessions)
	if completedSessions == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Reviews can only be submitted after a completed session"})
	}

	review, err := services.UpsertTutorReview(studentID, tutorID, services.ReviewInput{
		Rating:        req.Rating,
		Knowledge:     req.Knowledge,
		Communication: req.Communication,
		Punctuality:   req.Punctuality,
		Helpfulness:   req.Helpfulness,
		Comment:       req.Comment,
	})
	if err != nil {
		return serviceError(c, err)
	}

	go services.AwardPoints(studentID, "write_review")

	return c.Status(fiber.StatusCreated).JSON(review)
}

func DeleteTutorReview(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	if err := services.DeleteTutorReview(studentID, tutorID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
