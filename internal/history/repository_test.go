package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/nihongo/pkg/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := Connect("sqlite", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestConnect_UnsupportedType(t *testing.T) {
	_, err := Connect("mysql", "dsn")
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	repo := newTestRepository(t)

	review := &models.Review{
		Category:   "vocab",
		ItemKey:    "水",
		Quality:    5,
		Correct:    true,
		ReviewedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Record(review))
	assert.NotZero(t, review.ID)

	count, err := repo.TotalCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecord_FillsTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	review := &models.Review{Category: "kana", ItemKey: "あ", Quality: 1}
	require.NoError(t, repo.Record(review))
	assert.False(t, review.ReviewedAt.IsZero())
}

func TestCountForDay(t *testing.T) {
	repo := newTestRepository(t)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{
		day.Add(1 * time.Hour),
		day.Add(23 * time.Hour),
		day.AddDate(0, 0, -1),
		day.AddDate(0, 0, 1),
	} {
		require.NoError(t, repo.Record(&models.Review{
			Category: "vocab", ItemKey: "水", Quality: 5, Correct: true, ReviewedAt: at,
		}))
	}

	count, err := repo.CountForDay(day)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAccuracy(t *testing.T) {
	repo := newTestRepository(t)
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	for i, correct := range []bool{true, true, true, false} {
		quality := 5
		if !correct {
			quality = 1
		}
		require.NoError(t, repo.Record(&models.Review{
			Category: "vocab", ItemKey: "水", Quality: quality, Correct: correct,
			ReviewedAt: at.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Record(&models.Review{
		Category: "kana", ItemKey: "あ", Quality: 1, Correct: false, ReviewedAt: at,
	}))

	accuracy, err := repo.Accuracy("vocab", at.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, accuracy, 1e-9)

	accuracy, err = repo.Accuracy("grammar", at.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Zero(t, accuracy)
}

func TestRecentForItem(t *testing.T) {
	repo := newTestRepository(t)
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(&models.Review{
			Category: "vocab", ItemKey: "水", Quality: 5, Correct: true,
			ReviewedAt: at.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Record(&models.Review{
		Category: "vocab", ItemKey: "火", Quality: 1, Correct: false, ReviewedAt: at,
	}))

	reviews, err := repo.RecentForItem("vocab", "水", 3)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for _, r := range reviews {
		assert.Equal(t, "水", r.ItemKey)
	}
	assert.True(t, reviews[0].ReviewedAt.After(reviews[1].ReviewedAt))
	assert.True(t, reviews[1].ReviewedAt.After(reviews[2].ReviewedAt))
}
