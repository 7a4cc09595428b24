package progress

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/example/nihongo/pkg/models"
)

// DefaultProgressFile is the canonical progress file name.
const DefaultProgressFile = "japanese_progress.json"

// Store is the durable home for all scheduling state: per-item cards grouped
// by category, aggregate stats, the daily streak and unlocked achievements.
// Every mutating operation writes the whole file synchronously before
// returning; a failed write is reported to the caller but the in-memory
// update is kept. The store does no internal locking — a multi-threaded host
// must serialize mutations itself.
type Store struct {
	filepath string
	data     *Data
}

// New creates a store backed by the given file. A missing or unreadable file
// never fails startup: the store starts from the default structure instead
// and the problem is logged.
func New(path string) *Store {
	s := &Store{filepath: path}
	s.data = s.load()
	return s
}

func (s *Store) load() *Data {
	raw, err := os.ReadFile(s.filepath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading progress: %v", err)
		}
		return defaultData(time.Now())
	}
	data, err := migrate(raw, time.Now())
	if err != nil {
		log.Printf("Error loading progress: %v", err)
		return defaultData(time.Now())
	}
	return data
}

// Save writes the full progress state to the canonical file.
func (s *Store) Save() error {
	return s.writeTo(s.filepath)
}

func (s *Store) writeTo(path string) error {
	raw, err := s.data.marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create progress directory: %v", err)
		}
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to save progress: %v", err)
	}
	return nil
}

// GetCard returns the card for an item, materializing a default card into the
// store on first access. Repeated calls before any update return the same
// default; the insert itself is not persisted until the next save.
func (s *Store) GetCard(category, key string) models.Card {
	cards, ok := s.data.Categories[category]
	if !ok {
		cards = make(map[string]models.Card)
		s.data.Categories[category] = cards
	}
	card, ok := cards[key]
	if !ok {
		card = models.NewCard()
		cards[key] = card
	}
	return card
}

// UpdateCard overwrites the stored card for an item and persists the store.
// On a write failure the in-memory update is kept and the error is returned.
func (s *Store) UpdateCard(category, key string, card models.Card) error {
	cards, ok := s.data.Categories[category]
	if !ok {
		cards = make(map[string]models.Card)
		s.data.Categories[category] = cards
	}
	cards[key] = card
	return s.Save()
}

// GetDueItems returns the keys in a category that are due on the given day:
// never-reviewed items and items whose next review date has arrived. Keys are
// returned in sorted order; callers shuffle as needed.
func (s *Store) GetDueItems(category string, today time.Time) []string {
	var due []string
	for key, card := range s.data.Categories[category] {
		if card.IsDue(today) {
			due = append(due, key)
		}
	}
	sort.Strings(due)
	return due
}

// UpdateStreak advances the daily streak for the given day and returns the
// resulting streak. Calling it again on the same day is a no-op. On a day
// transition the reviews_today counter is reset and, from 7 days on, the
// week_streak achievement is unlocked.
func (s *Store) UpdateStreak(today time.Time) (int, error) {
	day := today.Format(models.DateLayout)
	if s.data.LastDate == day {
		return s.data.Streak, nil
	}

	yesterday := today.AddDate(0, 0, -1).Format(models.DateLayout)
	if s.data.LastDate == yesterday {
		s.data.Streak++
	} else {
		s.data.Streak = 1
	}
	s.data.LastDate = day
	s.data.Stats.ReviewsToday = 0

	err := s.Save()

	if s.data.Streak >= 7 {
		if _, achErr := s.AddAchievement(models.AchievementWeekStreak); achErr != nil && err == nil {
			err = achErr
		}
	}
	return s.data.Streak, err
}

// AddAchievement unlocks an achievement. It returns true if the achievement
// was newly unlocked and persists only in that case.
func (s *Store) AddAchievement(id string) (bool, error) {
	for _, existing := range s.data.Achievements {
		if existing == id {
			return false, nil
		}
	}
	s.data.Achievements = append(s.data.Achievements, id)
	return true, s.Save()
}

// HasAchievement reports whether an achievement is already unlocked.
func (s *Store) HasAchievement(id string) bool {
	for _, existing := range s.data.Achievements {
		if existing == id {
			return true
		}
	}
	return false
}

// Achievements returns the unlocked achievement ids in unlock order.
func (s *Store) Achievements() []string {
	out := make([]string, len(s.data.Achievements))
	copy(out, s.data.Achievements)
	return out
}

// IncrementStat adds amount to a named stat counter and persists. Unknown
// stat names are ignored so that callers built against a newer or older
// schema do not fail.
func (s *Store) IncrementStat(name string, amount int) error {
	switch name {
	case "total_reviews":
		s.data.Stats.TotalReviews += amount
	case "reviews_today":
		s.data.Stats.ReviewsToday += amount
	case "correct_streak":
		s.data.Stats.CorrectStreak += amount
	case "max_streak":
		s.data.Stats.MaxStreak += amount
	default:
		return nil
	}
	return s.Save()
}

// RecordCorrectStreak stores the session's current run of correct answers
// and raises max_streak to match when exceeded.
func (s *Store) RecordCorrectStreak(streak int) error {
	s.data.Stats.CorrectStreak = streak
	if streak > s.data.Stats.MaxStreak {
		s.data.Stats.MaxStreak = streak
	}
	return s.Save()
}

// Stats returns a copy of the aggregate counters.
func (s *Store) Stats() models.Stats {
	return s.data.Stats
}

// Settings returns a copy of the persisted settings.
func (s *Store) Settings() models.Settings {
	return s.data.Settings
}

// SetSettings replaces the persisted settings. The scheduling engine never
// calls this; it exists for the presentation layer.
func (s *Store) SetSettings(settings models.Settings) error {
	s.data.Settings = settings
	return s.Save()
}

// Streak returns the current daily streak without advancing it.
func (s *Store) Streak() int {
	return s.data.Streak
}

// LastDate returns the last active day as YYYY-MM-DD.
func (s *Store) LastDate() string {
	return s.data.LastDate
}

// CategoryNames returns all known category names in sorted order.
func (s *Store) CategoryNames() []string {
	names := make([]string, 0, len(s.data.Categories))
	for name := range s.data.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CardCount returns the number of tracked cards in a category.
func (s *Store) CardCount(category string) int {
	return len(s.data.Categories[category])
}

// CountCards counts the cards across all categories matching the predicate.
func (s *Store) CountCards(match func(models.Card) bool) int {
	count := 0
	for _, cards := range s.data.Categories {
		for _, card := range cards {
			if match(card) {
				count++
			}
		}
	}
	return count
}

// ResetAll replaces the entire store with the default structure and persists.
// This cannot be undone.
func (s *Store) ResetAll() error {
	s.data = defaultData(time.Now())
	return s.Save()
}

// ExportTo writes the full progress state to an external file.
func (s *Store) ExportTo(path string) error {
	return s.writeTo(path)
}

// ImportFrom replaces the in-memory state wholesale with the contents of an
// external file, runs the usual schema migration over it, and persists to the
// canonical location. On a read or parse failure the prior state is intact.
func (s *Store) ImportFrom(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %v", err)
	}
	data, err := migrate(raw, time.Now())
	if err != nil {
		return fmt.Errorf("failed to import progress: %v", err)
	}
	s.data = data
	return s.Save()
}
