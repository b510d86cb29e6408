package assistant

// Intent is the classified purpose of a message.
type Intent int

const (
	Obscene Intent = iota
	Joke
	Quote
	Reminder
	Translate
	Call
	PlayVideo
	PlaySong
	WhatsApp
	General
)

var intentNames = [...]string{
	Obscene:   "obscene",
	Joke:      "joke",
	Quote:     "quote",
	Reminder:  "reminder",
	Translate: "translate",
	Call:      "call",
	PlayVideo: "play_video",
	PlaySong:  "play_song",
	WhatsApp:  "whatsapp",
	General:   "general",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}
