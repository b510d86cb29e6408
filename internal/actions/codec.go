package actions

import (
	"regexp"
	"strings"
	"time"
)

const (
	oralFlag          = "oral"
	unparsableDisplay = "the specified time"
	displayLayout     = "1/2/2006, 3:04:05 PM"
)

var (
	reminderPattern  = regexp.MustCompile(`\[SET_REMINDER:\s*([^\]]+)\]`)
	whatsappPattern  = regexp.MustCompile(`\[WHATSAPP_LINK:\s*([^|]+)\|([^\]]+)\]`)
	translatePattern = regexp.MustCompile(`\[TRANSLATE:\s*([^|]+)\|([^|\]]+)(?:\|([^\]]+))?\]`)
	callPattern      = regexp.MustCompile(`\[CALL:\s*([^|]+)\|([^\]]+)\]`)
	videoPattern     = regexp.MustCompile(`\[PLAY_VIDEO:\s*([^\]]+)\]`)
	songPattern      = regexp.MustCompile(`\[PLAY_SONG:\s*([^\]]+)\]`)

	anyCodePattern = regexp.MustCompile(`\[(?:SET_REMINDER|WHATSAPP_LINK|TRANSLATE|CALL|PLAY_VIDEO|PLAY_SONG):[^\]]+\]`)
	nonDigit       = regexp.MustCompile(`\D`)
)

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Codec parses action codes. Location controls how reminder times are displayed.
type Codec struct {
	Location *time.Location
}

// Parse extracts every action code from reply. Kinds are scanned one after
// another (all reminders first, then WhatsApp links, ...), each in order of
// appearance.
func (c Codec) Parse(reply string) []Action {
	var out []Action

	for _, m := range reminderPattern.FindAllStringSubmatch(reply, -1) {
		datetime := strings.TrimSpace(m[1])
		out = append(out, SetReminder{
			Datetime: datetime,
			Display:  c.Display(datetime),
		})
	}
	for _, m := range whatsappPattern.FindAllStringSubmatch(reply, -1) {
		out = append(out, WhatsAppLink{
			Phone:   DigitsOnly(strings.TrimSpace(m[1])),
			Message: strings.TrimSpace(m[2]),
		})
	}
	for _, m := range translatePattern.FindAllStringSubmatch(reply, -1) {
		out = append(out, Translate{
			Language: strings.TrimSpace(m[1]),
			Text:     strings.TrimSpace(m[2]),
			Oral:     strings.TrimSpace(m[3]) == oralFlag,
		})
	}
	for _, m := range callPattern.FindAllStringSubmatch(reply, -1) {
		out = append(out, Call{
			Phone:   strings.TrimSpace(m[1]),
			Contact: strings.TrimSpace(m[2]),
		})
	}
	for _, m := range videoPattern.FindAllStringSubmatch(reply, -1) {
		out = append(out, PlayVideo{VideoName: strings.TrimSpace(m[1])})
	}
	for _, m := range songPattern.FindAllStringSubmatch(reply, -1) {
		out = append(out, PlaySong{SongName: strings.TrimSpace(m[1])})
	}
	return out
}

// Display renders an action datetime for humans in the codec's location,
// or "the specified time" when it cannot be parsed.
func (c Codec) Display(datetime string) string {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, datetime, loc); err == nil {
			return t.In(loc).Format(displayLayout)
		}
	}
	return unparsableDisplay
}

// Clean strips every action code from reply and trims the result.
// Removal repeats until nothing matches, so a code spliced together by an
// earlier removal is removed too and Clean(Clean(x)) == Clean(x).
func Clean(reply string) string {
	for {
		next := anyCodePattern.ReplaceAllString(reply, "")
		if next == reply {
			break
		}
		reply = next
	}
	return strings.TrimSpace(reply)
}

// Parse extracts action codes, displaying reminder times in the local zone.
func Parse(reply string) []Action {
	return Codec{}.Parse(reply)
}

// DigitsOnly drops every non-digit rune from s.
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// WhatsAppURL builds the wa.me deep link for phone and message.
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + EncodeURIComponent(message)
}

// EncodeURIComponent percent-encodes s the way browsers encode URI
// components: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped as
// UTF-8 bytes.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
