// Package slots pulls named pieces of information (task, time, phone,
// contact, message, language) out of free-form requests.
//
// Every extractor tries an ordered list of patterns and stops at the first
// usable match. Patterns run against the raw text, case-insensitively.
package slots

import (
	"regexp"
	"strings"
)

// Reminder holds the task and time phrase of a reminder request. Either may
// be empty.
type Reminder struct {
	Task string
	Time string
}

var reminderTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at (\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`),
	regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:am|pm))`),
	regexp.MustCompile(`(?i)(tomorrow|today|tonight)`),
	regexp.MustCompile(`(?i)on (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
}

var (
	reminderTaskPattern     = regexp.MustCompile(`(?i)remind me to (.+?)(?:\s+at|\s+tomorrow|\s+today|\s+on|\s+\d)`)
	reminderFallbackPattern = regexp.MustCompile(`(?i)remind me to (.+)`)
)

// ExtractReminder finds the task and time of a "remind me to ..." request.
func ExtractReminder(text string) Reminder {
	var r Reminder
	for _, p := range reminderTimePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			r.Time = m[1]
			break
		}
	}

	if m := reminderTaskPattern.FindStringSubmatch(text); m != nil {
		r.Task = strings.TrimSpace(m[1])
	} else if m := reminderFallbackPattern.FindStringSubmatch(text); m != nil {
		r.Task = strings.TrimSpace(removeFirstFold(m[1], r.Time))
	}
	return r
}

// removeFirstFold removes the first case-insensitive occurrence of sub from s.
func removeFirstFold(s, sub string) string {
	if sub == "" {
		return s
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(sub))
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// Translation holds the text to translate and the target language.
type Translation struct {
	Text     string
	Language string
	Oral     bool
}

type translatePattern struct {
	re            *regexp.Regexp
	languageFirst bool
}

var translatePatterns = []translatePattern{
	{re: regexp.MustCompile(`(?i)translate\s+["'](.+?)["']\s+to\s+(\w+)`)},
	{re: regexp.MustCompile(`(?i)translate\s+(.+?)\s+to\s+(\w+)`)},
	{re: regexp.MustCompile(`(?i)translate\s+to\s+(\w+):?\s*(.+)`), languageFirst: true},
}

// ExtractTranslation matches "translate 'x' to y", "translate x to y" and
// "translate to y: x", in that order.
func ExtractTranslation(text string) Translation {
	var tr Translation
	for _, p := range translatePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p.languageFirst {
			tr.Language, tr.Text = m[1], m[2]
		} else {
			tr.Text, tr.Language = m[1], m[2]
		}
		break
	}
	tr.Oral = strings.Contains(strings.ToLower(text), "oral")
	return tr
}

// CallTarget is who to call. Phone is empty when only a name was given.
type CallTarget struct {
	Phone   string
	Contact string
}

var (
	callPhonePattern = regexp.MustCompile(`(?i)call\s+(\+?\d[\d\s-]+)`)
	callNamePattern  = regexp.MustCompile(`(?i)call\s+([a-zA-Z][a-zA-Z\s]+?)(?:\s+at|\s+on|$)`)
	whitespace       = regexp.MustCompile(`\s`)
)

// ExtractCall prefers a dialable number and falls back to a contact name.
func ExtractCall(text string) CallTarget {
	if m := callPhonePattern.FindStringSubmatch(text); m != nil {
		phone := whitespace.ReplaceAllString(m[1], "")
		return CallTarget{Phone: phone, Contact: phone}
	}
	if m := callNamePattern.FindStringSubmatch(text); m != nil {
		return CallTarget{Contact: strings.TrimSpace(m[1])}
	}
	return CallTarget{}
}

var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)play video\s+["'](.+?)["']`),
	regexp.MustCompile(`(?i)play video\s+(.+)`),
	regexp.MustCompile(`(?i)show video\s+["'](.+?)["']`),
	regexp.MustCompile(`(?i)show video\s+(.+)`),
}

// ExtractVideo returns the video title after "play video" / "show video".
func ExtractVideo(text string) string {
	for _, p := range videoPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

var songPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)play\s+(?:song|music)\s+["'](.+?)["']`),
	regexp.MustCompile(`(?i)play\s+["'](.+?)["']`),
	regexp.MustCompile(`(?i)play\s+(?:song|music)\s+(.+)`),
	regexp.MustCompile(`(?i)play\s+(.+)`),
}

// genericSongWords are captures that name a medium rather than a song.
var genericSongWords = map[string]bool{
	"video":      true,
	"videos":     true,
	"a song":     true,
	"music":      true,
	"something":  true,
	"song":       true,
	"songs":      true,
	"some music": true,
}

// ExtractSong returns the first captured song title that is not a generic
// word such as "music" or "song". Empty when nothing usable was found.
func ExtractSong(text string) string {
	for _, p := range songPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !genericSongWords[strings.ToLower(name)] {
			return name
		}
	}
	return ""
}

// WhatsApp holds a drafted WhatsApp message. Phone keeps the caller's
// formatting (a leading + is preserved).
type WhatsApp struct {
	Phone   string
	Contact string
	Message string
}

const (
	defaultWhatsAppContact = "contact"
	defaultWhatsAppMessage = "Hello!"
)

var (
	whatsappPhonePattern = regexp.MustCompile(`(\+?\d{10,15})`)
	whatsappNamePattern  = regexp.MustCompile(`(?i)(?:message|text|whatsapp)\s+([a-zA-Z]+)`)
	whatsappMsgPatterns  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:say|tell|message).*?["'](.+?)["']`),
		regexp.MustCompile(`(?i)message:?\s*(.+)`),
	}
)

// ExtractWhatsApp finds the phone number, contact name and message body.
// Contact defaults to "contact" and Message to "Hello!".
func ExtractWhatsApp(text string) WhatsApp {
	wa := WhatsApp{Contact: defaultWhatsAppContact, Message: defaultWhatsAppMessage}
	if m := whatsappPhonePattern.FindStringSubmatch(text); m != nil {
		wa.Phone = m[1]
	}
	if m := whatsappNamePattern.FindStringSubmatch(text); m != nil {
		wa.Contact = m[1]
	}
	for _, p := range whatsappMsgPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			wa.Message = m[1]
			break
		}
	}
	return wa
}
