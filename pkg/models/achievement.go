package models

// Achievement ids stored in the progress file.
const (
	AchievementFirstReview = "first_review"
	AchievementWeekStreak  = "week_streak"
	AchievementMaster10    = "master_10"
	AchievementPerfect10   = "perfect_10"
)

// Achievement describes an unlockable badge.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Achievements lists every achievement the application can award.
var Achievements = []Achievement{
	{ID: AchievementFirstReview, Name: "First Review", Description: "Complete your first review"},
	{ID: AchievementWeekStreak, Name: "Week Streak", Description: "7 days in a row"},
	{ID: AchievementMaster10, Name: "Master 10", Description: "Master 10 cards"},
	{ID: AchievementPerfect10, Name: "Perfect 10", Description: "10 correct in a row"},
}

// AchievementByID returns the achievement definition for an id, if known.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
