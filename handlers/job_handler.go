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

type CreateJobRequest struct {
	Title          string  `json:"title" validate:"required,min=5"`
	Description    string  `json:"description" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	Location       string  `json:"location"`
	Budget         float64 `json:"budget" validate:"required,gt=0"`
	BudgetType     string  `json:"budget_type" validate:"omitempty,oneof=fixed hourly negotiable"`
	Duration       string  `json:"duration"`
	SkillsRequired string  `json:"skills_required"`
}

func CreateJob(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	budgetType := req.BudgetType
	if budgetType == "" {
		budgetType = "fixed"
	}

	job := models.Job{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Location:       req.Location,
		Budget:         req.Budget,
		BudgetType:     budgetType,
		Duration:       req.Duration,
		SkillsRequired: req.SkillsRequired,
		Status:         models.JobStatusOpen,
	}
	if err := database.DB.Create(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to post job"})
	}

	go services.AwardPoints(userID, "post_job")

	return c.Status(fiber.StatusCreated).JSON(job)
}

func ListJobs(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Where("status = ?", models.JobStatusOpen)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if minBudget := c.Query("min_budget"); minBudget != "" {
		if budget, err := strconv.ParseFloat(minBudget, 64); err == nil {
			query = query.Where("budget >= ?", budget)
		}
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var jobs []models.Job
	query.Order("created_at desc").Limit(50).Find(&jobs)

	return c.JSON(jobs)
}

func GetJob(c *fiber.Ctx) error {
	var job models.Job
	if err := database.DB.Preload("User").First(&job, "id = ?", c.Params("jobId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}

	var applicationCount int64
	database.DB.Model(&models.JobApplication{}).
		Where("job_id = ? AND status <> ?", job.ID, models.ApplicationStatusWithdrawn).
		Count(&applicationCount)

	return c.JSON(fiber.Map{
		"job":               job,
		"application_count": applicationCount,
	})
}

type UpdateJobRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Location       *string  `json:"location"`
	Budget         *float64 `json:"budget"`
	Duration       *string  `json:"duration"`
	SkillsRequired *string  `json:"skills_required"`
	Status         *string  `json:"status" validate:"omitempty,oneof=open in_progress completed cancelled"`
}

func UpdateJob(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var job models.Job
	if err := database.DB.First(&job, "id = ?", c.Params("jobId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your job posting"})
	}

	var req UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Budget != nil {
		job.Budget = *req.Budget
	}
	if req.Duration != nil {
		job.Duration = *req.Duration
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = *req.SkillsRequired
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := database.DB.Save(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update job"})
	}
	return c.JSON(job)
}

func DeleteJob(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var job models.Job
	if err := database.DB.First(&job, "id = ?", c.Params("jobId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your job posting"})
	}

	if err := database.DB.Delete(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete job"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ApplyToJobRequest struct {
	CoverLetter  string   `json:"cover_letter" validate:"required,min=20"`
	ProposedRate *float64 `json:"proposed_rate"`
}

func ApplyToJob(c *fiber.Ctx) error {
	applicantID := currentUserID(c)
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid job id"})
	}

	var req ApplyToJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var job models.Job
	if err := database.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.UserID == applicantID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot apply to your own job"})
	}
	if job.Status != models.JobStatusOpen {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This job is no longer accepting applications"})
	}

	application := models.JobApplication{
		JobID:        jobID,
		ApplicantID:  applicantID,
		CoverLetter:  req.CoverLetter,
		ProposedRate: req.ProposedRate,
		Status:       models.ApplicationStatusPending,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already applied to this job"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	go services.AwardPoints(applicantID, "apply_job")
	services.Notify(job.UserID, models.NotificationTypeApplication,
		"New application for "+job.Title,
		"Someone applied to your job posting.",
		"/jobs/"+job.ID.String()+"/applications/")

	return c.Status(fiber.StatusCreated).JSON(application)
}

func ListJobApplications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var job models.Job
	if err := database.DB.First(&job, "id = ?", c.Params("jobId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	if job.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the poster can view applications"})
	}

	var applications []models.JobApplication
	database.DB.Preload("Applicant").
		Where("job_id = ? AND status <> ?", job.ID, models.ApplicationStatusWithdrawn).
		Order("applied_at asc").
		Find(&applications)

	return c.JSON(applications)
}

func GetMyApplications(c *fiber.Ctx) error {
	applicantID := currentUserID(c)

	var applications []models.JobApplication
	database.DB.Preload("Job.User").
		Where("applicant_id = ?", applicantID).
		Order("applied_at desc").
		Find(&applications)

	return c.JSON(applications)
}

// DecideApplication accepts or rejects a pending application. Accepting
// moves the job to in_progress and rejects nothing else automatically; the
// poster may still accept more than one applicant.
func DecideApplication(c *fiber.Ctx) error {
	userID := currentUserID(c)
	decision := c.Params("decision")
	if decision != "accept" && decision != "reject" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Decision must be accept or reject"})
	}

	var application models.JobApplication
	if err := database.DB.Preload("Job").First(&application, "id = ?", c.Params("applicationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.Job.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the poster can decide applications"})
	}
	if application.Status != models.ApplicationStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This application has already been decided"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if decision == "accept" {
			application.Status = models.ApplicationStatusAccepted
			if err := tx.Model(&models.Job{}).Where("id = ?", application.JobID).
				Update("status", models.JobStatusInProgress).Error; err != nil {
				return err
			}
		} else {
			application.Status = models.ApplicationStatusRejected
		}
		return tx.Save(&application).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	title := "Application update"
	message := "Your application for " + application.Job.Title + " was not successful this time."
	if decision == "accept" {
		message = "Your application for " + application.Job.Title + " was accepted!"
	}
	services.Notify(application.ApplicantID, models.NotificationTypeApplication,
		title, message, "/jobs/"+application.JobID.String()+"/")

	return c.JSON(application)
}

func WithdrawApplication(c *fiber.Ctx) error {
	applicantID := currentUserID(c)

	var application models.JobApplication
	if err := database.DB.First(&application, "id = ?", c.Params("applicationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if application.ApplicantID != applicantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your application"})
	}
	if application.Status != models.ApplicationStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only pending applications can be withdrawn"})
	}

	application.Status = models.ApplicationStatusWithdrawn
	if err := database.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to withdraw application"})
	}
	return c.JSON(application)
}
