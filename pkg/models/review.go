package models

import "time"

// Review is a single judged answer recorded in the history log.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	Category   string    `json:"category" db:"category"`
	ItemKey    string    `json:"item_key" db:"item_key"`
	Quality    int       `json:"quality" db:"quality"`
	Correct    bool      `json:"correct" db:"correct"`
	ReviewedAt time.Time `json:"reviewed_at" db:"reviewed_at"`
}
