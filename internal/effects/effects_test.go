package effects

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iiskills/mpa/internal/actions"
	"github.com/iiskills/mpa/internal/config"
	"github.com/iiskills/mpa/internal/scheduler"
)

type addCall struct {
	task    string
	due     time.Time
	channel string
	chatID  string
}

type fakeScheduler struct {
	calls []addCall
	err   error
}

func (f *fakeScheduler) Add(task string, due time.Time, channel, chatID string) (scheduler.Reminder, error) {
	f.calls = append(f.calls, addCall{task, due, channel, chatID})
	if f.err != nil {
		return scheduler.Reminder{}, f.err
	}
	return scheduler.Reminder{ID: "r-1", Task: task, Due: due}, nil
}

var origin = Origin{Channel: "cli", ChatID: "local", Message: "Remind me to go to the gym today at 6 PM"}

func TestApplyReminderSchedulesOriginalMessage(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDispatcher(sched, config.EffectsConfig{})

	notices := d.Apply(context.Background(), []actions.Action{
		actions.SetReminder{Datetime: "2026-10-15T12:30:00.000Z", Display: "10/15/2026, 6:00:00 PM"},
	}, origin)

	if len(notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(notices))
	}
	n := notices[0]
	if n.Text != "Reminder set for 10/15/2026, 6:00:00 PM" || n.ReminderID != "r-1" || n.Error != "" {
		t.Fatalf("unexpected notice %+v", n)
	}
	if len(sched.calls) != 1 {
		t.Fatalf("expected one Add call, got %d", len(sched.calls))
	}
	c := sched.calls[0]
	want := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	if c.task != origin.Message || !c.due.Equal(want) || c.channel != "cli" || c.chatID != "local" {
		t.Fatalf("unexpected Add call %+v", c)
	}
}

func TestApplyReminderErrors(t *testing.T) {
	sched := &fakeScheduler{err: scheduler.ErrNotFuture}
	d := NewDispatcher(sched, config.EffectsConfig{})

	notices := d.Apply(context.Background(), []actions.Action{
		actions.SetReminder{Datetime: "2020-01-01T00:00:00.000Z"},
		actions.SetReminder{Datetime: "soon"},
	}, origin)

	if notices[0].Error == "" || notices[0].ReminderID != "" {
		t.Fatalf("past reminder should report an error: %+v", notices[0])
	}
	if notices[1].Error == "" {
		t.Fatalf("unparsable reminder should report an error: %+v", notices[1])
	}
	if len(sched.calls) != 1 {
		t.Fatalf("unparsable time must not reach the scheduler, got %d calls", len(sched.calls))
	}
}

func TestApplyWhatsAppWritesQR(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qr")
	d := NewDispatcher(nil, config.EffectsConfig{QRDir: dir, QRSize: 128})

	notices := d.Apply(context.Background(), []actions.Action{
		actions.WhatsAppLink{Phone: "1234567890", Message: "Hey there!"},
	}, origin)

	n := notices[0]
	if n.Text != "WhatsApp message ready for 1234567890" {
		t.Fatalf("text = %q", n.Text)
	}
	if n.Link != "https://wa.me/1234567890?text=Hey%20there!" {
		t.Fatalf("link = %q", n.Link)
	}
	if n.File != filepath.Join(dir, "whatsapp-1234567890.png") {
		t.Fatalf("file = %q", n.File)
	}
	data, err := os.ReadFile(n.File)
	if err != nil {
		t.Fatalf("read qr: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("qr file is not a PNG")
	}
}

func TestApplyLinks(t *testing.T) {
	d := NewDispatcher(nil, config.EffectsConfig{})
	notices := d.Apply(context.Background(), []actions.Action{
		actions.Translate{Language: "Tamil", Text: "Hello", Oral: true},
		actions.Call{Phone: "+91 98765 43210", Contact: "+91 98765 43210"},
		actions.Call{Phone: "mom", Contact: "mom"},
		actions.PlayVideo{VideoName: "Nature Documentary"},
		actions.PlaySong{SongName: "Amazing Grace"},
	}, origin)

	want := []Notice{
		{Kind: actions.KindTranslate, Text: "Translate to Tamil (orally)", Link: "https://translate.google.com/?op=translate&sl=auto&text=Hello&tl=ta"},
		{Kind: actions.KindCall, Text: "Call +91 98765 43210", Link: "tel:+919876543210"},
		{Kind: actions.KindCall, Text: "Call mom"},
		{Kind: actions.KindPlayVideo, Text: "Play video: Nature Documentary", Link: "https://www.youtube.com/results?search_query=Nature+Documentary"},
		{Kind: actions.KindPlaySong, Text: "Play song: Amazing Grace", Link: "https://www.youtube.com/results?search_query=Amazing+Grace"},
	}
	if len(notices) != len(want) {
		t.Fatalf("expected %d notices, got %d", len(want), len(notices))
	}
	for i := range want {
		if notices[i] != want[i] {
			t.Errorf("notice %d = %+v, want %+v", i, notices[i], want[i])
		}
	}
}

func TestApplyStopsWhenContextDone(t *testing.T) {
	d := NewDispatcher(nil, config.EffectsConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := d.Apply(ctx, []actions.Action{actions.PlaySong{SongName: "x"}}, origin); len(got) != 0 {
		t.Fatalf("expected no notices, got %+v", got)
	}
}

func TestLanguageCode(t *testing.T) {
	cases := map[string]string{
		"Tamil":    "ta",
		" HINDI ":  "hi",
		"Bengali":  "bn",
		"Chinese":  "zh-CN",
		"fr":       "fr",
		"Klingon":  "klingon",
	}
	for in, want := range cases {
		if got := LanguageCode(in); got != want {
			t.Errorf("LanguageCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTelURI(t *testing.T) {
	cases := map[string]string{
		"555-1234":        "tel:5551234",
		"+1 (555) 123":    "tel:+1555123",
		"Dr Smith":        "",
		"12":              "",
	}
	for in, want := range cases {
		if got := TelURI(in); got != want {
			t.Errorf("TelURI(%q) = %q, want %q", in, got, want)
		}
	}
}
