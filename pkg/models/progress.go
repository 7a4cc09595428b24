package models

// Settings holds user preferences persisted alongside scheduling state.
// The scheduling engine only reads TestType and SRSInterval; the rest is
// carried for the presentation layer.
type Settings struct {
	Theme       string `json:"theme"`
	Layout      string `json:"layout"`
	Sound       bool   `json:"sound"`
	TestType    string `json:"test_type"`
	SRSInterval int    `json:"srs_interval"`
}

// DefaultSettings returns the settings written into a brand-new progress file.
func DefaultSettings() Settings {
	return Settings{
		Theme:       "Sakura Bliss",
		Layout:      "Desktop",
		Sound:       true,
		TestType:    "typing",
		SRSInterval: 1,
	}
}

// Stats holds aggregate review counters.
type Stats struct {
	TotalReviews  int `json:"total_reviews"`
	ReviewsToday  int `json:"reviews_today"`
	CorrectStreak int `json:"correct_streak"`
	MaxStreak     int `json:"max_streak"`
}
