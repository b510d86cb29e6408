// Package effects turns parsed actions into things a surface can show or
// open: scheduled reminders, deep links, tel: URIs and QR codes.
package effects

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/iiskills/mpa/internal/actions"
	"github.com/iiskills/mpa/internal/config"
	"github.com/iiskills/mpa/internal/scheduler"
)

// Scheduler accepts reminders. *scheduler.Scheduler implements it.
type Scheduler interface {
	Add(task string, due time.Time, channel, chatID string) (scheduler.Reminder, error)
}

// Origin identifies the conversation an action came from. Message is the
// user's original text, which becomes the reminder task.
type Origin struct {
	Channel string
	ChatID  string
	Message string
}

// Notice is what a surface shows for one applied action.
type Notice struct {
	Kind       actions.Kind `json:"kind"`
	Text       string       `json:"text"`
	Link       string       `json:"link,omitempty"`
	File       string       `json:"file,omitempty"`
	ReminderID string       `json:"reminderId,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Dispatcher applies actions.
type Dispatcher struct {
	sched  Scheduler
	qrDir  string
	qrSize int
}

// NewDispatcher creates a Dispatcher. sched may be nil, in which case
// reminders are acknowledged but never fire.
func NewDispatcher(sched Scheduler, cfg config.EffectsConfig) *Dispatcher {
	size := cfg.QRSize
	if size <= 0 {
		size = 512
	}
	return &Dispatcher{sched: sched, qrDir: cfg.QRDir, qrSize: size}
}

// Apply performs every action in order and returns one notice per action.
// Failures are reported on the notice rather than aborting the batch.
func (d *Dispatcher) Apply(ctx context.Context, acts []actions.Action, o Origin) []Notice {
	notices := make([]Notice, 0, len(acts))
	for _, a := range acts {
		if ctx.Err() != nil {
			break
		}
		n := Notice{Kind: a.Kind(), Text: a.Label()}
		switch v := a.(type) {
		case actions.SetReminder:
			d.remind(&n, v, o)
		case actions.WhatsAppLink:
			d.whatsApp(&n, v)
		case actions.Translate:
			n.Link = TranslateURL(v.Language, v.Text)
			if v.Oral {
				n.Text += " (orally)"
			}
		case actions.Call:
			n.Link = TelURI(v.Phone)
		case actions.PlayVideo:
			n.Link = YouTubeSearchURL(v.VideoName)
		case actions.PlaySong:
			n.Link = YouTubeSearchURL(v.SongName)
		}
		notices = append(notices, n)
	}
	return notices
}

func (d *Dispatcher) remind(n *Notice, a actions.SetReminder, o Origin) {
	due, err := time.Parse(time.RFC3339Nano, a.Datetime)
	if err != nil {
		n.Error = fmt.Sprintf("unparsable reminder time %q", a.Datetime)
		return
	}
	if d.sched == nil {
		return
	}
	r, err := d.sched.Add(o.Message, due, o.Channel, o.ChatID)
	if err != nil {
		slog.Warn("Reminder not scheduled", "due", due, "error", err)
		n.Error = err.Error()
		return
	}
	n.ReminderID = r.ID
}

func (d *Dispatcher) whatsApp(n *Notice, a actions.WhatsAppLink) {
	n.Text = "WhatsApp message ready for " + a.Phone
	n.Link = a.Link()
	if d.qrDir == "" {
		return
	}
	path, err := WriteQR(d.qrDir, "whatsapp-"+a.Phone+".png", n.Link, d.qrSize)
	if err != nil {
		slog.Warn("WhatsApp QR code failed", "phone", a.Phone, "error", err)
		n.Error = err.Error()
		return
	}
	n.File = path
}

// WriteQR encodes content as a PNG QR code at dir/name.
func WriteQR(dir, name, content string, size int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create qr dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := qrcode.WriteFile(content, qrcode.Medium, size, path); err != nil {
		return "", fmt.Errorf("write qr code: %w", err)
	}
	return path, nil
}

var dialable = regexp.MustCompile(`^\+?[\d\s()-]{3,}$`)

// TelURI returns a tel: link for phone, or "" when phone is a contact name.
func TelURI(phone string) string {
	if !dialable.MatchString(phone) {
		return ""
	}
	digits := actions.DigitsOnly(phone)
	if phone[0] == '+' {
		digits = "+" + digits
	}
	return "tel:" + digits
}

// YouTubeSearchURL returns a YouTube search for query.
func YouTubeSearchURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}
