package services

import (
	"errors"
	"log"
	"time"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Point values per action. Unknown actions award nothing.
var actionPoints = map[string]int{
	"upload_resource":  20,
	"post_job":         15,
	"apply_job":        10,
	"book_tutor":       10,
	"complete_session": 25,
	"report_lost":      10,
	"report_found":     15,
	"return_item":      30,
	"write_review":     5,
	"verify_email":     50,
	"complete_profile": 20,
}

var badgeDescriptions = map[string]struct {
	Title       string
	Description string
}{
	"tutor":    {"Top Tutor", "Awarded for maintaining a 4.5+ rating as a tutor"},
	"expert":   {"Subject Expert", "Awarded for completing 20+ tutoring sessions"},
	"helper":   {"Helpful Hero", "Awarded for sharing 10+ study resources"},
	"finder":   {"Finder Star", "Awarded for helping return 5+ lost items"},
	"active":   {"Active User", "Awarded for consistent platform activity"},
	"verified": {"Verified User", "Awarded for verifying university email"},
}

// AwardPoints credits the point value for the action and re-evaluates badge
// rules. Called fire-and-forget after the triggering write; failures are
// logged, never propagated.
func AwardPoints(userID uuid.UUID, action string) {
	points, ok := actionPoints[action]
	if !ok {
		log.Printf("Warning: unknown gamification action %q, no points awarded", action)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
			return err
		}
		return checkBadges(tx, userID)
	})
	if err != nil {
		log.Printf("🔥 Failed to award %d points to user %s for %s: %v", points, userID, action, err)
	}
}

// checkBadges awards any badge whose rule the user now satisfies. The
// unique (user, badge type) index makes awards idempotent.
func checkBadges(tx *gorm.DB, userID uuid.UUID) error {
	var earned []string
	tx.Model(&models.Badge{}).Where("user_id = ?", userID).Pluck("badge_type", &earned)
	has := make(map[string]bool, len(earned))
	for _, b := range earned {
		has[b] = true
	}

	var toAward []string

	if !has["verified"] {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err == nil && user.IsVerified {
			toAward = append(toAward, "verified")
		}
	}

	if !has["tutor"] || !has["expert"] {
		var tutor models.Tutor
		if err := tx.First(&tutor, "user_id = ?", userID).Error; err == nil {
			if !has["tutor"] && tutor.Rating >= 4.5 {
				toAward = append(toAward, "tutor")
			}
			if !has["expert"] && tutor.TotalSessions >= 20 {
				toAward = append(toAward, "expert")
			}
		}
	}

	if !has["helper"] {
		var resources int64
		tx.Model(&models.Resource{}).Where("user_id = ?", userID).Count(&resources)
		if resources >= 10 {
			toAward = append(toAward, "helper")
		}
	}

	if !has["finder"] {
		var returned int64
		tx.Model(&models.FoundItem{}).Where("user_id = ? AND is_claimed = ?", userID, true).Count(&returned)
		if returned >= 5 {
			toAward = append(toAward, "finder")
		}
	}

	if !has["active"] {
		thirtyDaysAgo := timeNow().AddDate(0, 0, -30)
		var activity int64
		var n int64
		tx.Model(&models.LostItem{}).Where("user_id = ? AND created_at >= ?", userID, thirtyDaysAgo).Count(&n)
		activity += n
		tx.Model(&models.Job{}).Where("user_id = ? AND created_at >= ?", userID, thirtyDaysAgo).Count(&n)
		activity += n
		if activity >= 15 {
			toAward = append(toAward, "active")
		}
	}

	for _, badgeType := range toAward {
		if err := awardBadge(tx, userID, badgeType); err != nil {
			return err
		}
	}
	return nil
}

func awardBadge(tx *gorm.DB, userID uuid.UUID, badgeType string) error {
	info := badgeDescriptions[badgeType]
	badge := models.Badge{
		UserID:      userID,
		BadgeType:   badgeType,
		Title:       info.Title,
		Description: info.Description,
		AwardedAt:   time.Now(),
	}
	if err := tx.Create(&badge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	go Notify(userID, models.NotificationTypeSystem,
		"New Badge Earned!",
		"You earned the "+info.Title+" badge!",
		"/dashboard/")
	return nil
}

type LeaderboardEntry struct {
	FullName          string  `json:"full_name"`
	Points            int     `json:"points"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	var leaderboard []LeaderboardEntry
	err := database.DB.Model(&models.User{}).
		Select("full_name", "points", "profile_picture_url").
		Where("is_verified = ?", true).
		Order("points desc, created_at desc").
		Limit(limit).
		Find(&leaderboard).Error
	return leaderboard, err
}

// GetUserRank returns the user's 1-based position among verified users by
// points, or 0 if the user is unranked.
func GetUserRank(userID uuid.UUID) (int, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}

	var ahead int64
	err := database.DB.Model(&models.User{}).
		Where("is_verified = ? AND points > ?", true, user.Points).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}
	if !user.IsVerified {
		return 0, nil
	}
	return int(ahead) + 1, nil
}
