package services

import (
	"fmt"
	"strings"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
)

type Recommendation struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Link        string  `json:"link"`
}

// GetRecommendations assembles rule-based suggestions for the user: tutors
// and resources matching their course, open lost items in busy categories,
// services near their location, topped up with popular items. Deterministic
// lookups against the live data, no learning involved.
func GetRecommendations(user *models.User, limit int) []Recommendation {
	var recommendations []Recommendation

	if user.Course != nil && *user.Course != "" {
		recommendations = append(recommendations, courseBasedRecommendations(user)...)
	}
	recommendations = append(recommendations, activityBasedRecommendations(user)...)
	if user.Location != nil && *user.Location != "" {
		recommendations = append(recommendations, locationBasedRecommendations(user)...)
	}

	unique := dedupe(recommendations, limit)
	if len(unique) < limit {
		unique = dedupe(append(unique, popularRecommendations(user, limit)...), limit)
	}
	return unique
}

func courseBasedRecommendations(user *models.User) []Recommendation {
	var recommendations []Recommendation

	var tutors []models.Tutor
	database.DB.Preload("User").
		Joins("JOIN users ON users.id = tutors.user_id").
		Where("users.course LIKE ? AND tutors.user_id <> ?", "%"+*user.Course+"%", user.ID).
		Order("tutors.rating desc").
		Limit(3).
		Find(&tutors)

	for _, tutor := range tutors {
		recommendations = append(recommendations, Recommendation{
			Type:        "tutor",
			ID:          tutor.UserID.String(),
			Title:       fmt.Sprintf("%s - %s Tutor", tutor.User.FullName, tutor.PrimarySubject),
			Description: truncate(tutor.Bio, 100),
			Score:       0.8,
			Link:        fmt.Sprintf("/tutoring/%s/", tutor.UserID),
		})
	}

	coursePrefix := *user.Course
	if len(coursePrefix) > 3 {
		coursePrefix = coursePrefix[:3]
	}
	var resources []models.Resource
	database.DB.Where("course_code LIKE ? AND is_approved = ?", "%"+coursePrefix+"%", true).
		Order("average_rating desc, downloads desc").
		Limit(2).
		Find(&resources)

	for _, resource := range resources {
		recommendations = append(recommendations, Recommendation{
			Type:        "resource",
			ID:          resource.ID.String(),
			Title:       resource.Title,
			Description: fmt.Sprintf("%s for %s", resource.ResourceType, resource.CourseCode),
			Score:       0.7,
			Link:        fmt.Sprintf("/resources/%s/", resource.ID),
		})
	}

	return recommendations
}

func activityBasedRecommendations(user *models.User) []Recommendation {
	var recommendations []Recommendation

	for _, category := range []string{"electronics", "documents"} {
		var items []models.LostItem
		database.DB.Where("category = ? AND status = ? AND user_id <> ?", category, models.LostItemStatusLost, user.ID).
			Order("created_at desc").
			Limit(2).
			Find(&items)

		for _, item := range items {
			recommendations = append(recommendations, Recommendation{
				Type:        "lost_item",
				ID:          item.ID.String(),
				Title:       item.Title,
				Description: fmt.Sprintf("Lost %s near %s", item.Category, item.LocationLost),
				Score:       0.6,
				Link:        fmt.Sprintf("/lost-found/%s/", item.ID),
			})
		}
	}

	return recommendations
}

func locationBasedRecommendations(user *models.User) []Recommendation {
	area := strings.SplitN(*user.Location, ",", 2)[0]

	var services []models.Service
	database.DB.Where("location LIKE ?", "%"+area+"%").
		Order("average_rating desc").
		Limit(2).
		Find(&services)

	var recommendations []Recommendation
	for _, service := range services {
		recommendations = append(recommendations, Recommendation{
			Type:        "service",
			ID:          service.ID.String(),
			Title:       service.Name,
			Description: fmt.Sprintf("%s in %s", service.Category, service.Location),
			Score:       0.5,
			Link:        fmt.Sprintf("/services/%s/", service.ID),
		})
	}
	return recommendations
}

func popularRecommendations(user *models.User, limit int) []Recommendation {
	var recommendations []Recommendation

	var tutors []models.Tutor
	database.DB.Preload("User").
		Where("is_available = ? AND user_id <> ?", true, user.ID).
		Order("rating desc, total_sessions desc").
		Limit(limit).
		Find(&tutors)

	for _, tutor := range tutors {
		recommendations = append(recommendations, Recommendation{
			Type:        "tutor",
			ID:          tutor.UserID.String(),
			Title:       fmt.Sprintf("%s - %s Tutor", tutor.User.FullName, tutor.PrimarySubject),
			Description: truncate(tutor.Bio, 100),
			Score:       0.4,
			Link:        fmt.Sprintf("/tutoring/%s/", tutor.UserID),
		})
	}
	return recommendations
}

func dedupe(recommendations []Recommendation, limit int) []Recommendation {
	seen := make(map[string]bool)
	var unique []Recommendation
	for _, rec := range recommendations {
		key := rec.Type + "_" + rec.ID
		if !seen[key] && len(unique) < limit {
			seen[key] = true
			unique = append(unique, rec)
		}
	}
	return unique
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
