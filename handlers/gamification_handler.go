package handlers

import (
	"strconv"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/omondi254/campus_hub/services"
	"github.com/gofiber/fiber/v2"
)

func GetLeaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	leaderboard, err := services.GetLeaderboard(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve leaderboard"})
	}

	return c.JSON(leaderboard)
}

func GetMyRank(c *fiber.Ctx) error {
	userID := currentUserID(c)

	rank, err := services.GetUserRank(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute rank"})
	}

	var user models.User
	database.DB.Select("points").First(&user, "id = ?", userID)

	return c.JSON(fiber.Map{
		"rank":   rank,
		"points": user.Points,
	})
}

func GetMyBadges(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var badges []models.Badge
	database.DB.Where("user_id = ?", userID).Order("awarded_at asc").Find(&badges)

	return c.JSON(badges)
}

func ListMyCertificates(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var certificates []models.Certificate
	database.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&certificates)

	return c.JSON(certificates)
}
