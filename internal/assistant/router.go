package assistant

import "strings"

// rule pairs an intent with the keyword test that selects it and the handler
// that answers it. Rules are evaluated in table order and the first match
// wins, so the order below is part of the behaviour: "remind me to call mom"
// must be a reminder, and obscenity must beat every other keyword.
type rule struct {
	intent Intent
	match  func(lower string) bool
	handle func(a *Assistant, text string) Reply
}

var rules = []rule{
	{Obscene, containsAny(obsceneKeywords...), (*Assistant).refuse},
	{Joke, containsAny("joke"), (*Assistant).joke},
	{Quote, containsAny("quote"), (*Assistant).quote},
	{Reminder, containsAny("remind"), (*Assistant).reminder},
	{Translate, containsAny("translate"), (*Assistant).translate},
	{Call, containsAny("call "), (*Assistant).call},
	{PlayVideo, containsAny("play video", "show video"), (*Assistant).playVideo},
	{PlaySong, containsAny("play song", "play music"), (*Assistant).playSong},
	{WhatsApp, containsAny("message", "whatsapp", "text"), (*Assistant).whatsApp},
	{General, func(string) bool { return true }, (*Assistant).general},
}

func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

// Classify returns the intent of text.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.match(lower) {
			return r.intent
		}
	}
	return General
}

// Rules returns the intents in the order they are tested.
func Rules() []Intent {
	out := make([]Intent, len(rules))
	for i, r := range rules {
		out[i] = r.intent
	}
	return out
}

// Dispatch runs the handler for intent. Unknown intents get a general reply.
func (a *Assistant) Dispatch(intent Intent, text string) Reply {
	handle := (*Assistant).general
	for _, r := range rules {
		if r.intent == intent {
			handle = r.handle
			break
		}
	}
	reply := handle(a, text)
	reply.Intent = intent
	reply.Authorized = true
	return reply
}
