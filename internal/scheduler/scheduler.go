// Package scheduler periodically reminds the owner that cards are due.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier interface for sending notifications
type Notifier interface {
	SendDueReminder(count int) error
}

// DueCounter reports how many cards are due right now.
type DueCounter interface {
	CountDue(ctx context.Context) int
}

// DueCounterFunc adapts a function to DueCounter.
type DueCounterFunc func(ctx context.Context) int

func (f DueCounterFunc) CountDue(ctx context.Context) int { return f(ctx) }

// Config controls how often reminders are considered and when they may be sent.
type Config struct {
	Interval  time.Duration
	StartHour int            // first hour reminders may be sent, inclusive
	EndHour   int            // last hour reminders may be sent, inclusive
	Location  *time.Location // hours are evaluated in this zone, time.Local when nil
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	counter   DueCounter
	notifier  Notifier
	cfg       Config
	log       *zap.Logger
	now       func() time.Time
}

// New creates a new scheduler instance
func New(counter DueCounter, notifier Notifier, cfg Config, log *zap.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(cfg.Location),
		counter:   counter,
		notifier:  notifier,
		cfg:       cfg,
		log:       log.Named("scheduler"),
		now:       time.Now,
	}
}

// Start registers the reminder job and runs it in the background. The first
// check happens immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(s.cfg.Interval).Do(func() {
		s.checkAndSendReminders(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.scheduler.StartAsync()
	s.log.Info("reminder scheduler started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Int("start_hour", s.cfg.StartHour),
		zap.Int("end_hour", s.cfg.EndHour),
	)
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("reminder scheduler stopped")
}

// checkAndSendReminders sends a reminder when cards are due inside the window.
func (s *Scheduler) checkAndSendReminders(ctx context.Context) {
	currentHour := s.now().In(s.cfg.Location).Hour()
	if currentHour < s.cfg.StartHour || currentHour > s.cfg.EndHour {
		s.log.Debug("outside notification hours, skipping reminder",
			zap.Int("hour", currentHour),
			zap.Int("start_hour", s.cfg.StartHour),
			zap.Int("end_hour", s.cfg.EndHour),
		)
		return
	}

	if _, err := s.remind(ctx); err != nil {
		s.log.Error("failed to send reminder", zap.Error(err))
	}
}

// RunManualCheck counts due cards and notifies immediately, ignoring the window.
// It returns the number of due cards.
func (s *Scheduler) RunManualCheck(ctx context.Context) (int, error) {
	return s.remind(ctx)
}

func (s *Scheduler) remind(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := s.counter.CountDue(ctx)
	if count == 0 {
		s.log.Debug("no cards due")
		return 0, nil
	}

	if err := s.notifier.SendDueReminder(count); err != nil {
		return count, fmt.Errorf("send reminder for %d cards: %w", count, err)
	}
	s.log.Info("sent due reminder", zap.Int("due", count))
	return count, nil
}
