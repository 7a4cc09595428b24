package spaced_repetition

import (
	"errors"
	"fmt"
	"time"

	"github.com/example/nihongo/pkg/models"
)

// ErrInvalidQuality is returned when a review quality is outside [0,5].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// QualityResponse represents the quality of a recall in SM-2
type QualityResponse int

const (
	// Complete blackout, unable to recall
	QualityBlackout QualityResponse = 0
	// Incorrect response but remembered upon seeing the correct answer
	QualityIncorrect QualityResponse = 1
	// Incorrect response but the correct answer felt familiar
	QualityIncorrectFamiliar QualityResponse = 2
	// Correct response but required significant effort
	QualityCorrectDifficult QualityResponse = 3
	// Correct response after some hesitation
	QualityCorrectHesitation QualityResponse = 4
	// Perfect response with no hesitation
	QualityPerfect QualityResponse = 5
)

// SM2 implements the SuperMemo-2 algorithm for spaced repetition
type SM2 struct {
	// Answers at or above this quality count as successful recalls
	PassThreshold int
	// Reviews needed before a card can count as mastered
	MasteryRepetitions int
	// Interval in days a card must reach to count as mastered
	MasteryInterval int
}

// NewSM2 creates a new SM2 instance with default settings
func NewSM2() *SM2 {
	return &SM2{
		PassThreshold:      3,
		MasteryRepetitions: 5,
		MasteryInterval:    30,
	}
}

// ReviewCard applies one review outcome to a card and returns the updated
// card. quality 0-2 is a failed recall, 3-5 a successful one. The input card
// is not modified and no I/O happens here; persisting the result is the
// caller's job.
func (sm *SM2) ReviewCard(card models.Card, quality QualityResponse, today time.Time) (models.Card, error) {
	if quality < QualityBlackout || quality > QualityPerfect {
		return card, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	day := today.Format(models.DateLayout)
	card.LastReview = &day

	if int(quality) < sm.PassThreshold {
		// Failed recall: restart the interval ladder. The ease factor
		// is not updated on failure.
		card.Repetitions = 0
		card.Interval = 1
		card.WrongCount++
	} else {
		switch card.Repetitions {
		case 0:
			card.Interval = 1
		case 1:
			card.Interval = 6
		default:
			card.Interval = int(float64(card.Interval) * card.Ease)
		}
		card.Repetitions++

		ease := card.Ease + (0.1 - (5.0-float64(quality))*(0.08+(5.0-float64(quality))*0.02))
		if ease < 1.3 {
			ease = 1.3
		}
		card.Ease = ease
	}

	next := today.AddDate(0, 0, card.Interval).Format(models.DateLayout)
	card.NextReview = &next

	return card, nil
}

// IsMastered determines if a card is considered "mastered": reviewed enough
// times in a row and scheduled far enough out.
func (sm *SM2) IsMastered(card models.Card) bool {
	return card.Repetitions >= sm.MasteryRepetitions &&
		card.Interval >= sm.MasteryInterval
}
