package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/nihongo/internal/config"
	"github.com/example/nihongo/internal/content"
	"github.com/example/nihongo/internal/history"
	"github.com/example/nihongo/internal/progress"
	"github.com/example/nihongo/internal/scheduler"
	"github.com/example/nihongo/internal/session"
	"github.com/example/nihongo/pkg/models"
)

// logNotifier reports due-item reminders to the process log. A UI host
// replaces this with its own notifier.
type logNotifier struct{}

func (logNotifier) SendReminder(category string, dueCount int) error {
	log.Printf("Reminder: %d items due in %s", dueCount, category)
	return nil
}

func main() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	cfg := config.Load()

	// The store owns all scheduling state for the process lifetime. A
	// missing or corrupt progress file starts from defaults.
	store := progress.New(cfg.ProgressFile)

	library := content.Default()
	controller := session.NewController(store, library)

	// The history log is best-effort: reviews still schedule without it.
	db, err := history.Connect(cfg.DBType, cfg.HistoryDSN)
	if err != nil {
		log.Printf("Review history disabled: %v", err)
	} else {
		defer db.Close()
		controller.SetHistory(history.NewRepository(db))
	}

	streak, err := controller.StartDay()
	if err != nil {
		log.Printf("Warning: progress not saved: %v", err)
	}

	stats := store.Stats()
	log.Printf("Daily streak: %d days | total reviews: %d | today: %d",
		streak, stats.TotalReviews, stats.ReviewsToday)
	for category, due := range controller.DueCounts() {
		log.Printf("Due in %s: %d of %d tracked items", category, due, store.CardCount(category))
	}
	for _, id := range store.Achievements() {
		if a, ok := models.AchievementByID(id); ok {
			log.Printf("Achievement unlocked: %s - %s", a.Name, a.Description)
		}
	}

	reminders := scheduler.New(store, logNotifier{}, cfg.NotificationStartHour, cfg.NotificationEndHour)
	reminders.Start()
	defer reminders.Stop()

	log.Println("Engine started. Press Ctrl+C to stop.")
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)

	if err := store.Save(); err != nil {
		log.Printf("Error saving progress on shutdown: %v", err)
	}
	log.Println("Stopped")
}
