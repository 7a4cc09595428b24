package history

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/nihongo/pkg/models"
)

// Repository handles database operations for the review history log. The log
// keeps one row per judged answer; the progress store only keeps aggregates.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new repository instance
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a review row and fills in its generated id.
func (r *Repository) Record(review *models.Review) error {
	if review.ReviewedAt.IsZero() {
		review.ReviewedAt = time.Now()
	}

	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO reviews (category, item_key, quality, correct, reviewed_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return r.db.QueryRow(query,
			review.Category, review.ItemKey, review.Quality, review.Correct, review.ReviewedAt,
		).Scan(&review.ID)
	}

	// SQLite path: no RETURNING support on this driver version
	result, err := r.db.Exec(
		`INSERT INTO reviews (category, item_key, quality, correct, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		review.Category, review.ItemKey, review.Quality, review.Correct, review.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record review: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	review.ID = id
	return nil
}

// TotalCount returns the number of recorded reviews.
func (r *Repository) TotalCount() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM reviews"); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %v", err)
	}
	return count, nil
}

// CountForDay returns the number of reviews recorded on a calendar day.
func (r *Repository) CountForDay(day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int
	err := r.db.Get(&count,
		"SELECT COUNT(*) FROM reviews WHERE reviewed_at >= $1 AND reviewed_at < $2",
		start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews for day: %v", err)
	}
	return count, nil
}

// Accuracy returns the fraction of correct answers in a category since the
// given time. It returns 0 when there are no reviews in the window.
func (r *Repository) Accuracy(category string, since time.Time) (float64, error) {
	var total, correct int
	err := r.db.Get(&total,
		"SELECT COUNT(*) FROM reviews WHERE category = $1 AND reviewed_at >= $2",
		category, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %v", err)
	}
	if total == 0 {
		return 0, nil
	}
	err = r.db.Get(&correct,
		"SELECT COUNT(*) FROM reviews WHERE category = $1 AND reviewed_at >= $2 AND correct",
		category, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count correct reviews: %v", err)
	}
	return float64(correct) / float64(total), nil
}

// RecentForItem returns the most recent reviews of one item, newest first.
func (r *Repository) RecentForItem(category, key string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Select(&reviews,
		`SELECT * FROM reviews
		 WHERE category = $1 AND item_key = $2
		 ORDER BY reviewed_at DESC, id DESC
		 LIMIT $3`,
		category, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get item reviews: %v", err)
	}
	return reviews, nil
}
