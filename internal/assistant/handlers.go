package assistant

import (
	"fmt"
	"strings"

	"github.com/iiskills/mpa/internal/actions"
	"github.com/iiskills/mpa/internal/slots"
	"github.com/iiskills/mpa/internal/timeparse"
)

func (a *Assistant) pick(list []string) string {
	return list[a.rng.Intn(len(list))]
}

func (a *Assistant) refuse(string) Reply {
	return Reply{Text: refusal}
}

func (a *Assistant) joke(string) Reply {
	return Reply{Text: a.pick(jokes) + jokeSuffix}
}

func (a *Assistant) quote(string) Reply {
	return Reply{Text: a.pick(quotes) + quoteSuffix}
}

func (a *Assistant) general(string) Reply {
	return Reply{Text: a.pick(generalResponses)}
}

func (a *Assistant) reminder(text string) Reply {
	r := slots.ExtractReminder(text)
	if r.Task == "" || r.Time == "" {
		return Reply{Text: askReminder}
	}

	due, ok := timeparse.Resolve(r.Time, a.now().In(a.loc))
	if !ok {
		a.logger.Debug("Reminder time has no clock, using current time", "phrase", r.Time)
	}
	iso := timeparse.FormatISO(due)

	var b strings.Builder
	fmt.Fprintf(&b, "Done. I've logged your %s for %s.", r.Task, r.Time)
	if containsAny(motivationalKeywords...)(strings.ToLower(text)) {
		b.WriteString(" Here's some motivation: " + a.pick(quotes))
	} else {
		b.WriteString(" Anything else?")
	}

	return Reply{
		Text:    b.String(),
		Actions: []actions.Action{actions.SetReminder{Datetime: iso, Display: a.codec.Display(iso)}},
	}
}

func (a *Assistant) translate(text string) Reply {
	tr := slots.ExtractTranslation(text)
	if tr.Text == "" || tr.Language == "" {
		return Reply{Text: askTranslate}
	}
	orally := ""
	if tr.Oral {
		orally = " (orally)"
	}
	return Reply{
		Text: fmt.Sprintf(`Translating "%s" to %s%s.`, tr.Text, tr.Language, orally),
		Actions: []actions.Action{actions.Translate{
			Language: strings.TrimSpace(tr.Language),
			Text:     strings.TrimSpace(tr.Text),
			Oral:     tr.Oral,
		}},
	}
}

func (a *Assistant) call(text string) Reply {
	target := slots.ExtractCall(text)
	if target.Contact == "" {
		return Reply{Text: askCall}
	}
	phone := target.Phone
	if phone == "" {
		phone = target.Contact
	}
	return Reply{
		Text:    fmt.Sprintf("Calling %s now. Setting to speaker mode.", target.Contact),
		Actions: []actions.Action{actions.Call{Phone: phone, Contact: target.Contact}},
	}
}

func (a *Assistant) playVideo(text string) Reply {
	name := slots.ExtractVideo(text)
	if name == "" {
		return Reply{Text: askVideo}
	}
	return Reply{
		Text:    playing(name),
		Actions: []actions.Action{actions.PlayVideo{VideoName: name}},
	}
}

func (a *Assistant) playSong(text string) Reply {
	name := slots.ExtractSong(text)
	if len(name) < 2 {
		return Reply{Text: askSong}
	}
	return Reply{
		Text:    playing(name),
		Actions: []actions.Action{actions.PlaySong{SongName: name}},
	}
}

func playing(name string) string {
	return `Playing "` + name + `" from public domain.`
}

func (a *Assistant) whatsApp(text string) Reply {
	wa := slots.ExtractWhatsApp(text)
	if wa.Phone == "" {
		return Reply{Text: fmt.Sprintf("I'd be happy to draft a WhatsApp message to %s. Could you provide their phone number?", wa.Contact)}
	}
	return Reply{
		Text: fmt.Sprintf(`Drafted your message to %s: "%s"`, wa.Contact, wa.Message),
		Actions: []actions.Action{actions.WhatsAppLink{
			Phone:   actions.DigitsOnly(wa.Phone),
			Message: strings.TrimSpace(wa.Message),
		}},
	}
}
