package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	card := NewCard()

	assert.Equal(t, 2.5, card.Ease)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, 0, card.WrongCount)
	assert.Nil(t, card.LastReview)
	assert.Nil(t, card.NextReview)
}

func TestCardIsDue(t *testing.T) {
	today := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	date := func(s string) *string { return &s }

	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"never reviewed", NewCard(), true},
		{"due today", Card{NextReview: date("2024-03-10")}, true},
		{"overdue", Card{NextReview: date("2024-02-01")}, true},
		{"due tomorrow", Card{NextReview: date("2024-03-11")}, false},
		{"far future", Card{NextReview: date("2025-01-01")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.IsDue(today))
		})
	}
}
