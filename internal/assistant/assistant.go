// Package assistant is the rule-based conversational core: it authorizes the
// caller, classifies the message by keyword and builds a reply that may carry
// action codes for collaborators to execute.
package assistant

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/iiskills/mpa/internal/actions"
	"github.com/iiskills/mpa/internal/gate"
)

// Options configures an Assistant. Zero values get sensible defaults.
type Options struct {
	Gate     *gate.Gate
	Config   Config
	Rand     *rand.Rand
	Now      func() time.Time
	Location *time.Location
	Logger   *slog.Logger
}

// Assistant answers messages. It is not safe for concurrent use; callers
// that share one across goroutines must serialize access.
type Assistant struct {
	gate   *gate.Gate
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
	codec  actions.Codec
}

// New creates an Assistant.
func New(opts Options) *Assistant {
	a := &Assistant{
		gate:   opts.Gate,
		cfg:    opts.Config.withDefaults(),
		rng:    opts.Rand,
		now:    opts.Now,
		loc:    opts.Location,
		logger: opts.Logger,
	}
	if a.gate == nil {
		a.gate = gate.New()
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.loc == nil {
		a.loc = time.Local
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.codec = actions.Codec{Location: a.loc}
	return a
}

// Respond answers text on behalf of claimed. Rejected callers get the
// gate's refusal before any classification runs.
func (a *Assistant) Respond(text, claimed string) Reply {
	if d := a.gate.Evaluate(claimed); !d.Allow {
		a.logger.Warn("Message rejected", "user", claimed, "reason", d.Reason)
		return Reply{Intent: General, Text: a.gate.UnauthorizedMessage()}
	}

	intent := Classify(text)
	reply := a.Dispatch(intent, text)
	a.logger.Info("Message processed", "intent", intent.String(), "actions", len(reply.Actions))
	return reply
}

// ProcessMessage returns the raw reply for text, action codes included.
func (a *Assistant) ProcessMessage(text, claimed string) string {
	return a.Respond(text, claimed).String()
}

// ParseActionCodes extracts the actions embedded in a raw reply, displaying
// reminder times in the assistant's location.
func (a *Assistant) ParseActionCodes(reply string) []actions.Action {
	return a.codec.Parse(reply)
}

// CleanResponse strips action codes from a raw reply for display.
func (a *Assistant) CleanResponse(reply string) string {
	return actions.Clean(reply)
}

// Config returns the current persona.
func (a *Assistant) Config() Config {
	return a.cfg
}

func (a *Assistant) SetUserName(name string) {
	a.cfg.DisplayName = name
}

// SetGender changes the voice. Invalid values leave the config untouched.
func (a *Assistant) SetGender(g Gender) error {
	if !g.Valid() {
		return ErrInvalidGender
	}
	a.cfg.Gender = g
	return nil
}

func (a *Assistant) SetLanguage(language string) {
	a.cfg.Language = language
}

// SetRegisteredUser registers the only identity the assistant answers to.
// The empty string returns the assistant to setup mode.
func (a *Assistant) SetRegisteredUser(name string) {
	a.gate.Register(name)
}

// RegisteredUser returns the registered identity, if any.
func (a *Assistant) RegisteredUser() (string, bool) {
	return a.gate.Registered()
}

// Location is the zone reminder times are resolved in.
func (a *Assistant) Location() *time.Location {
	return a.loc
}
