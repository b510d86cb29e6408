// Package scheduler fires one-shot reminders by publishing a notice on the
// message bus when they fall due.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/config"
)

var (
	// ErrNotFound is returned by Cancel for unknown reminder IDs.
	ErrNotFound = errors.New("reminder not found")
	// ErrNotFuture is returned by Add when the due time has already passed.
	ErrNotFuture = errors.New("reminder due time is not in the future")
)

// NoticePrefix starts every fired reminder notice.
const NoticePrefix = "MPA Reminder: "

// Reminder is a pending notice.
type Reminder struct {
	ID      string    `json:"id"`
	Task    string    `json:"task"`
	Due     time.Time `json:"due"`
	Channel string    `json:"channel"`
	ChatID  string    `json:"chat_id"`
	Created time.Time `json:"created"`
}

// Scheduler holds pending reminders in memory and fires them from Run.
type Scheduler struct {
	tick      time.Duration
	bus       *bus.MessageBus
	now       func() time.Time
	reminders map[string]*Reminder
	mu        sync.Mutex
}

// New creates a Scheduler.
func New(cfg config.SchedulerConfig, b *bus.MessageBus) *Scheduler {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	return &Scheduler{
		tick:      cfg.TickInterval,
		bus:       b,
		now:       time.Now,
		reminders: make(map[string]*Reminder),
	}
}

// Add schedules task to be announced on channel/chatID at due.
func (s *Scheduler) Add(task string, due time.Time, channel, chatID string) (Reminder, error) {
	now := s.now()
	if !due.After(now) {
		return Reminder{}, fmt.Errorf("%w: %s", ErrNotFuture, due.Format(time.RFC3339))
	}
	r := &Reminder{
		ID:      uuid.NewString(),
		Task:    task,
		Due:     due,
		Channel: channel,
		ChatID:  chatID,
		Created: now,
	}

	s.mu.Lock()
	s.reminders[r.ID] = r
	s.mu.Unlock()

	slog.Info("Reminder scheduled", "id", r.ID, "due", due, "in", due.Sub(now).Round(time.Second))
	return *r, nil
}

// List returns pending reminders, soonest first.
func (s *Scheduler) List() []Reminder {
	s.mu.Lock()
	out := make([]Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, *r)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Due.Equal(out[j].Due) {
			return out[i].ID < out[j].ID
		}
		return out[i].Due.Before(out[j].Due)
	})
	return out
}

// Cancel drops a pending reminder.
func (s *Scheduler) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reminders[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.reminders, id)
	return nil
}

// Run fires due reminders every tick. Blocks until context is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.Info("Scheduler started", "tick", s.tick)
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.fireDue(ctx, s.now())
		}
	}
}

// fireDue publishes and removes every reminder due at or before now. It
// returns how many fired.
func (s *Scheduler) fireDue(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	var due []*Reminder
	for id, r := range s.reminders {
		if !r.Due.After(now) {
			due = append(due, r)
			delete(s.reminders, id)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].Due.Before(due[j].Due) })
	for _, r := range due {
		err := s.bus.PublishOutbound(ctx, &bus.OutboundMessage{
			Channel:   r.Channel,
			ChatID:    r.ChatID,
			Content:   NoticePrefix + r.Task,
			Timestamp: now,
		})
		if err != nil {
			slog.Warn("Reminder notice dropped", "id", r.ID, "error", err)
			continue
		}
		slog.Info("Reminder fired", "id", r.ID, "channel", r.Channel)
	}
	return len(due)
}
