package models

import "time"

// DateLayout is the calendar-day format used for all review dates.
const DateLayout = "2006-01-02"

// Card holds the SM-2 scheduling state for a single learnable item.
type Card struct {
	Ease        float64 `json:"ease"`        // SM-2 ease factor, never below 1.3
	Interval    int     `json:"interval"`    // Days until the next review
	Repetitions int     `json:"repetitions"` // Consecutive successful reviews since last lapse
	LastReview  *string `json:"last_review"` // YYYY-MM-DD, nil if never reviewed
	NextReview  *string `json:"next_review"` // YYYY-MM-DD, nil means always due
	WrongCount  int     `json:"wrong_count"` // Lifetime count of failed reviews
}

// NewCard returns a card with default scheduling state.
func NewCard() Card {
	return Card{
		Ease:        2.5,
		Interval:    1,
		Repetitions: 0,
		WrongCount:  0,
	}
}

// IsDue reports whether the card is due on the given day. Cards that have
// never been reviewed are always due.
func (c Card) IsDue(today time.Time) bool {
	if c.NextReview == nil {
		return true
	}
	return *c.NextReview <= today.Format(DateLayout)
}
