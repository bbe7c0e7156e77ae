package routes

import (
	"github.com/omondi254/campus_hub/handlers"
	"github.com/omondi254/campus_hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func GamificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/leaderboard", handlers.GetLeaderboard)

	gamification := api.Group("/gamification", middleware.Protected())
	gamification.Get("/rank", handlers.GetMyRank)
	gamification.Get("/badges", handlers.GetMyBadges)
	gamification.Get("/certificates", handlers.ListMyCertificates)

	api.Get("/recommendations", middleware.Protected(), handlers.GetRecommendations)
}
