package services

import (
	"fmt"
	"log"

	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
)

// NotifyPotentialMatches alerts owners of unresolved lost reports in the
// same category when a new found report arrives. Keyword-free on purpose:
// the category filter keeps it cheap and the owner decides from there.
func NotifyPotentialMatches(found models.FoundItem) {
	var lostItems []models.LostItem
	err := database.DB.
		Where("category = ? AND status = ? AND is_resolved = ?", found.Category, models.LostItemStatusLost, false).
		Order("created_at desc").
		Limit(20).
		Find(&lostItems).Error
	if err != nil {
		log.Printf("🔥 Failed to scan lost items for matches: %v", err)
		return
	}

	for _, lost := range lostItems {
		Notify(lost.UserID, models.NotificationTypeMatch,
			"Possible match for your lost item",
			fmt.Sprintf("A %s item was found at %s. It might be your %q.", found.Category, found.LocationFound, lost.Title),
			fmt.Sprintf("/lost-found/found/%s/", found.ID))
	}
}
