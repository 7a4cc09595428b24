package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/nihongo/internal/progress"
)

// Default notification window in local hours.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 22
)

// Notifier delivers a due-items reminder for one category.
type Notifier interface {
	SendReminder(category string, dueCount int) error
}

// Scheduler periodically checks the progress store for due items and hands
// per-category reminders to the notifier. It runs outside the scheduling
// core: the store itself stays synchronous.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *progress.Store
	notifier  Notifier
	startHour int
	endHour   int
}

// New creates a scheduler. Reminders are only sent between startHour and
// endHour (inclusive, local time).
func New(store *progress.Store, notifier Notifier, startHour, endHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		notifier:  notifier,
		startHour: startHour,
		endHour:   endHour,
	}
}

// Start begins the hourly due-item checks in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled checks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	now := time.Now()
	if !s.withinWindow(now.Hour()) {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			now.Hour(), s.startHour, s.endHour)
		return
	}
	if err := s.RunManualCheck(); err != nil {
		log.Printf("Error sending reminders: %v", err)
	}
}

func (s *Scheduler) withinWindow(hour int) bool {
	return hour >= s.startHour && hour <= s.endHour
}

// RunManualCheck sends a reminder for every category that has due items,
// regardless of the notification window.
func (s *Scheduler) RunManualCheck() error {
	now := time.Now()
	for _, category := range s.store.CategoryNames() {
		due := s.store.GetDueItems(category, now)
		if len(due) == 0 {
			continue
		}
		if err := s.notifier.SendReminder(category, len(due)); err != nil {
			return err
		}
	}
	return nil
}
