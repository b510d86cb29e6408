package timeparse

import (
	"testing"
	"time"
)

var berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 2*60*60)
	}
	return loc
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		phrase string
		want   time.Time
		ok     bool
	}{
		{"6 PM", time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC), true},
		{"6:30pm", time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC), true},
		{"9am", time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), true},
		{"12 am", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), true},
		{"12pm", time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), true},
		{"15:45", time.Date(2026, 10, 15, 15, 45, 0, 0, time.UTC), true},
		{"10", time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), true},
		{"tomorrow 9am", time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), true},
		{"Tomorrow at 8 pm", time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC), true},
		{"today", now, false},
		{"tomorrow", now.AddDate(0, 0, 1), false},
		{"", now, false},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.phrase, now)
		if ok != tc.ok {
			t.Errorf("Resolve(%q) ok = %v, want %v", tc.phrase, ok, tc.ok)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tc.phrase, got, tc.want)
		}
	}
}

func TestResolveRollsPastTimeToTomorrow(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, berlin)
	got, ok := Resolve("9am", now)
	if !ok {
		t.Fatal("expected an hour to be parsed")
	}
	if got.Day() != 16 || got.Hour() != 9 || got.Minute() != 0 {
		t.Fatalf("expected tomorrow 09:00, got %v", got)
	}
	if got.Location() != berlin {
		t.Fatalf("expected result in caller location, got %v", got.Location())
	}
}

func TestResolveExplicitTomorrowNeverRollsTwice(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 0, 0, 0, time.UTC)
	got, _ := Resolve("tomorrow at 1am", now)
	want := time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveMonthBoundary(t *testing.T) {
	now := time.Date(2026, 12, 31, 22, 0, 0, 0, time.UTC)
	got, _ := Resolve("7am", now)
	want := time.Date(2027, 1, 1, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFormatISO(t *testing.T) {
	ts := time.Date(2026, 10, 15, 20, 0, 0, 0, berlin)
	got := FormatISO(ts)
	want := ts.UTC().Format("2006-01-02T15:04:05") + ".000Z"
	if got != want {
		t.Fatalf("FormatISO = %q, want %q", got, want)
	}
	if _, err := time.Parse(time.RFC3339Nano, got); err != nil {
		t.Fatalf("FormatISO output not RFC3339: %v", err)
	}
}
