package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/example/nihongo/internal/content"
	"github.com/example/nihongo/internal/history"
	"github.com/example/nihongo/internal/progress"
	"github.com/example/nihongo/internal/spaced_repetition"
	"github.com/example/nihongo/pkg/models"
)

// Mode selects how a session builds its question pool.
type Mode string

const (
	// ModeStudy walks the whole category.
	ModeStudy Mode = "study"
	// ModeTest draws a limited random sample from the category.
	ModeTest Mode = "test"
	// ModeReview asks only the items due today.
	ModeReview Mode = "review"
)

// Result describes the outcome of one judged answer.
type Result struct {
	Correct       bool
	Quality       spaced_repetition.QualityResponse
	Card          models.Card
	CorrectStreak int
	Unlocked      []string
}

// Session is one run through a question pool.
type Session struct {
	Category string
	Mode     Mode
	Score    int
	Asked    int

	pool          []string
	idx           int
	correctStreak int
}

// Remaining returns how many items are left in the pool.
func (s *Session) Remaining() int {
	return len(s.pool) - s.idx
}

// Next returns the next item key in the pool.
func (s *Session) Next() (string, bool) {
	if s.idx >= len(s.pool) {
		return "", false
	}
	key := s.pool[s.idx]
	s.idx++
	return key, true
}

// Controller drives review sessions against the progress store: it builds
// question pools, maps correctness judgments onto SM-2 quality scores, applies
// the scheduler, and keeps aggregate stats and achievements up to date.
type Controller struct {
	store   *progress.Store
	sm2     *spaced_repetition.SM2
	library *content.Library
	history *history.Repository

	rng *rand.Rand
	now func() time.Time
}

// NewController creates a session controller.
func NewController(store *progress.Store, library *content.Library) *Controller {
	return &Controller{
		store:   store,
		sm2:     spaced_repetition.NewSM2(),
		library: library,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// SetHistory attaches a review history log. Without one, answers are still
// scheduled and counted but no per-review rows are written.
func (c *Controller) SetHistory(repo *history.Repository) {
	c.history = repo
}

// Start builds a new session for a category. For ModeTest the pool is capped
// at limit items; other modes ignore limit.
func (c *Controller) Start(category string, mode Mode, limit int) (*Session, error) {
	var pool []string
	switch mode {
	case ModeReview:
		pool = c.store.GetDueItems(category, c.now())
	case ModeStudy, ModeTest:
		pool = c.library.Keys(category)
	default:
		return nil, fmt.Errorf("unknown session mode: %s", mode)
	}

	c.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if mode == ModeTest && limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}

	return &Session{Category: category, Mode: mode, pool: pool}, nil
}

// StartDay advances the daily streak, resetting the reviews_today counter on
// a day change. Safe to call any number of times.
func (c *Controller) StartDay() (int, error) {
	return c.store.UpdateStreak(c.now())
}

// Submit applies one correctness judgment to an item: the card is rescheduled
// (5 for correct, 1 for wrong), stats and streaks are updated, achievements
// are evaluated, and the answer is appended to the history log. A persistence
// failure does not roll back the in-memory updates; the first such error is
// returned alongside the result.
func (c *Controller) Submit(s *Session, key string, correct bool) (*Result, error) {
	quality := spaced_repetition.QualityIncorrect
	if correct {
		quality = spaced_repetition.QualityPerfect
	}

	card := c.store.GetCard(s.Category, key)
	updated, err := c.sm2.ReviewCard(card, quality, c.now())
	if err != nil {
		return nil, err
	}

	firstEver := c.store.Stats().TotalReviews == 0

	var saveErr error
	keep := func(err error) {
		if err != nil && saveErr == nil {
			saveErr = err
		}
	}

	keep(c.store.UpdateCard(s.Category, key, updated))
	keep(c.store.IncrementStat("total_reviews", 1))
	keep(c.store.IncrementStat("reviews_today", 1))

	s.Asked++
	if correct {
		s.Score++
		s.correctStreak++
	} else {
		s.correctStreak = 0
	}
	keep(c.store.RecordCorrectStreak(s.correctStreak))

	result := &Result{
		Correct:       correct,
		Quality:       quality,
		Card:          updated,
		CorrectStreak: s.correctStreak,
	}

	unlock := func(id string) {
		added, err := c.store.AddAchievement(id)
		keep(err)
		if added {
			result.Unlocked = append(result.Unlocked, id)
		}
	}

	if firstEver {
		unlock(models.AchievementFirstReview)
	}
	if s.correctStreak >= 10 {
		unlock(models.AchievementPerfect10)
	}
	if correct && c.sm2.IsMastered(updated) && c.store.CountCards(c.sm2.IsMastered) >= 10 {
		unlock(models.AchievementMaster10)
	}

	if c.history != nil {
		review := &models.Review{
			Category:   s.Category,
			ItemKey:    key,
			Quality:    int(quality),
			Correct:    correct,
			ReviewedAt: c.now(),
		}
		if err := c.history.Record(review); err != nil {
			// History is best-effort; the scheduling state already landed.
			log.Printf("Error recording review history: %v", err)
		}
	}

	return result, saveErr
}

// DueCounts returns the number of due items per store category.
func (c *Controller) DueCounts() map[string]int {
	counts := make(map[string]int)
	for _, category := range c.store.CategoryNames() {
		counts[category] = len(c.store.GetDueItems(category, c.now()))
	}
	return counts
}

// MasteredCount returns how many cards are currently mastered.
func (c *Controller) MasteredCount() int {
	return c.store.CountCards(c.sm2.IsMastered)
}
