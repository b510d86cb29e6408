package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/config"
)

func newTestScheduler(t *testing.T, now time.Time) (*Scheduler, *bus.MessageBus) {
	t.Helper()
	b := bus.NewMessageBus()
	s := New(config.SchedulerConfig{TickInterval: 10 * time.Millisecond}, b)
	s.now = func() time.Time { return now }
	return s, b
}

func TestAddRejectsPastAndPresent(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(t, now)

	for _, due := range []time.Time{now, now.Add(-time.Minute)} {
		if _, err := s.Add("stretch", due, bus.ChannelCLI, "local"); !errors.Is(err, ErrNotFuture) {
			t.Fatalf("due %v: expected ErrNotFuture, got %v", due, err)
		}
	}
	if len(s.List()) != 0 {
		t.Fatal("rejected reminders must not be stored")
	}
}

func TestListOrdersByDue(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(t, now)

	late, _ := s.Add("late", now.Add(2*time.Hour), bus.ChannelCLI, "local")
	early, _ := s.Add("early", now.Add(time.Hour), bus.ChannelCLI, "local")
	if late.ID == "" || late.ID == early.ID {
		t.Fatalf("expected distinct ids, got %q and %q", late.ID, early.ID)
	}

	list := s.List()
	if len(list) != 2 || list[0].Task != "early" || list[1].Task != "late" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s, _ := newTestScheduler(t, now)

	r, err := s.Add("call mom", now.Add(time.Hour), bus.ChannelCLI, "local")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Cancel(r.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := s.Cancel(r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFireDueOnlyOnce(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s, b := newTestScheduler(t, now)
	ctx := context.Background()

	if _, err := s.Add("go to the gym", now.Add(time.Minute), bus.ChannelHTTP, "web-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("later", now.Add(time.Hour), bus.ChannelCLI, "local"); err != nil {
		t.Fatal(err)
	}

	if n := s.fireDue(ctx, now); n != 0 {
		t.Fatalf("nothing should be due yet, fired %d", n)
	}
	if n := s.fireDue(ctx, now.Add(time.Minute)); n != 1 {
		t.Fatalf("expected 1 fired, got %d", n)
	}
	if n := s.fireDue(ctx, now.Add(2*time.Minute)); n != 0 {
		t.Fatalf("reminder fired twice")
	}
	if b.OutboundSize() != 1 {
		t.Fatalf("expected one queued notice, got %d", b.OutboundSize())
	}
	if left := s.List(); len(left) != 1 || left[0].Task != "later" {
		t.Fatalf("unexpected pending reminders: %+v", left)
	}
}

func TestRunPublishesNotice(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s, b := newTestScheduler(t, now)

	got := make(chan *bus.OutboundMessage, 1)
	b.Subscribe(bus.ChannelCLI, func(m *bus.OutboundMessage) { got <- m })

	if _, err := s.Add("stretch", now.Add(time.Second), bus.ChannelCLI, "local"); err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return now.Add(time.Minute) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.DispatchOutbound(ctx)
	go s.Run(ctx)

	select {
	case m := <-got:
		if m.Content != "MPA Reminder: stretch" || m.ChatID != "local" {
			t.Fatalf("unexpected notice %+v", m)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reminder")
	}
}
