package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/example/nihongo/internal/progress"
	"github.com/example/nihongo/internal/scheduler"
)

// Config holds everything the host process needs to wire the engine together.
// All values come from the environment, optionally seeded from a .env file.
type Config struct {
	// Path of the canonical progress file
	ProgressFile string
	// "sqlite" or "postgres"
	DBType string
	// Database file path (sqlite) or connection string (postgres) for the
	// review history log
	HistoryDSN string
	// Local-time window in which reminders may be sent
	NotificationStartHour int
	NotificationEndHour   int
	// Pool size for test sessions
	WordsPerSession int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ProgressFile:          progress.DefaultProgressFile,
		DBType:                "sqlite",
		HistoryDSN:            "data/history.db",
		NotificationStartHour: scheduler.DefaultStartHour,
		NotificationEndHour:   scheduler.DefaultEndHour,
		WordsPerSession:       10,
	}

	if v := os.Getenv("PROGRESS_FILE"); v != "" {
		cfg.ProgressFile = v
	}
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.DBType = v
	}
	if cfg.DBType == "postgres" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			cfg.HistoryDSN = v
		}
	} else if v := os.Getenv("HISTORY_DB"); v != "" {
		cfg.HistoryDSN = v
	}
	if h, ok := envHour("NOTIFICATION_START_HOUR"); ok {
		cfg.NotificationStartHour = h
	}
	if h, ok := envHour("NOTIFICATION_END_HOUR"); ok {
		cfg.NotificationEndHour = h
	}
	if v := os.Getenv("WORDS_PER_SESSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WordsPerSession = n
		}
	}

	return cfg
}

func envHour(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	h, err := strconv.Atoi(v)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
