package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/nihongo/internal/progress"
	"github.com/example/nihongo/internal/scheduler"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, progress.DefaultProgressFile, cfg.ProgressFile)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "data/history.db", cfg.HistoryDSN)
	assert.Equal(t, scheduler.DefaultStartHour, cfg.NotificationStartHour)
	assert.Equal(t, scheduler.DefaultEndHour, cfg.NotificationEndHour)
	assert.Equal(t, 10, cfg.WordsPerSession)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PROGRESS_FILE", "/tmp/p.json")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/reviews")
	t.Setenv("NOTIFICATION_START_HOUR", "9")
	t.Setenv("NOTIFICATION_END_HOUR", "21")
	t.Setenv("WORDS_PER_SESSION", "25")

	cfg := Load()

	assert.Equal(t, "/tmp/p.json", cfg.ProgressFile)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "postgres://localhost/reviews", cfg.HistoryDSN)
	assert.Equal(t, 9, cfg.NotificationStartHour)
	assert.Equal(t, 21, cfg.NotificationEndHour)
	assert.Equal(t, 25, cfg.WordsPerSession)
}

func TestLoad_SQLitePath(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("HISTORY_DB", "/tmp/h.db")
	t.Setenv("DATABASE_URL", "postgres://ignored")

	cfg := Load()
	assert.Equal(t, "/tmp/h.db", cfg.HistoryDSN)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("NOTIFICATION_START_HOUR", "25")
	t.Setenv("NOTIFICATION_END_HOUR", "later")
	t.Setenv("WORDS_PER_SESSION", "-3")

	cfg := Load()

	assert.Equal(t, scheduler.DefaultStartHour, cfg.NotificationStartHour)
	assert.Equal(t, scheduler.DefaultEndHour, cfg.NotificationEndHour)
	assert.Equal(t, 10, cfg.WordsPerSession)
}
