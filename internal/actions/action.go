// Package actions implements the inline action-code protocol embedded in
// assistant replies: [KIND: field1|field2|...].
package actions

import (
	"fmt"
	"strings"
)

// Kind names an action code.
type Kind string

const (
	KindSetReminder  Kind = "SET_REMINDER"
	KindWhatsAppLink Kind = "WHATSAPP_LINK"
	KindTranslate    Kind = "TRANSLATE"
	KindCall         Kind = "CALL"
	KindPlayVideo    Kind = "PLAY_VIDEO"
	KindPlaySong     Kind = "PLAY_SONG"
)

// Kinds lists every known kind in scan order.
var Kinds = []Kind{
	KindSetReminder,
	KindWhatsAppLink,
	KindTranslate,
	KindCall,
	KindPlayVideo,
	KindPlaySong,
}

// Action is one side-effect directive carried by a reply.
type Action interface {
	Kind() Kind
	// Label is the short human text a collaborator shows next to the effect.
	Label() string
}

// SetReminder asks the collaborator to fire a notification at Datetime.
type SetReminder struct {
	Datetime string `json:"datetime"`
	// Display is Datetime rendered for humans. Filled by Parse.
	Display string `json:"display,omitempty"`
}

func (SetReminder) Kind() Kind { return KindSetReminder }

func (a SetReminder) Label() string {
	display := a.Display
	if display == "" {
		display = unparsableDisplay
	}
	return "Reminder set for " + display
}

// WhatsAppLink carries a drafted WhatsApp message. Phone holds digits only.
type WhatsAppLink struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (WhatsAppLink) Kind() Kind { return KindWhatsAppLink }

func (WhatsAppLink) Label() string { return "Open WhatsApp" }

// Link returns the wa.me deep link for the drafted message.
func (a WhatsAppLink) Link() string { return WhatsAppURL(a.Phone, a.Message) }

// Translate asks for Text to be translated into Language, spoken when Oral.
type Translate struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	Oral     bool   `json:"oral"`
}

func (Translate) Kind() Kind { return KindTranslate }

func (a Translate) Label() string { return "Translate to " + a.Language }

// Call places a phone call. Phone may be a contact name when no number was given.
type Call struct {
	Phone   string `json:"phone"`
	Contact string `json:"contact"`
}

func (Call) Kind() Kind { return KindCall }

func (a Call) Label() string { return "Call " + a.Contact }

type PlayVideo struct {
	VideoName string `json:"videoName"`
}

func (PlayVideo) Kind() Kind { return KindPlayVideo }

func (a PlayVideo) Label() string { return "Play video: " + a.VideoName }

type PlaySong struct {
	SongName string `json:"songName"`
}

func (PlaySong) Kind() Kind { return KindPlaySong }

func (a PlaySong) Label() string { return "Play song: " + a.SongName }

// Encode renders a in the wire format understood by Parse.
func Encode(a Action) string {
	var fields []string
	switch v := a.(type) {
	case SetReminder:
		fields = []string{v.Datetime}
	case WhatsAppLink:
		fields = []string{v.Phone, v.Message}
	case Translate:
		fields = []string{v.Language, v.Text}
		if v.Oral {
			fields = append(fields, oralFlag)
		}
	case Call:
		fields = []string{v.Phone, v.Contact}
	case PlayVideo:
		fields = []string{v.VideoName}
	case PlaySong:
		fields = []string{v.SongName}
	default:
		return ""
	}
	return fmt.Sprintf("[%s: %s]", a.Kind(), strings.Join(fields, "|"))
}
