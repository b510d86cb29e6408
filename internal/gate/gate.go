// Package gate decides whether a caller may talk to the assistant.
package gate

import (
	"fmt"
	"time"
)

// Decision is the result of a gate evaluation.
type Decision struct {
	Allow  bool
	Reason string
	Ts     time.Time
}

// Authorizer evaluates a claimed identity.
type Authorizer interface {
	Evaluate(claimed string) Decision
}

// Gate holds at most one registered identity. With nobody registered every
// claim is allowed so that first-time setup can proceed. Once registered,
// only an exact, case-sensitive match is allowed.
//
// Gate is not safe for concurrent mutation.
type Gate struct {
	registered string
}

// New returns a gate in setup mode.
func New() *Gate {
	return &Gate{}
}

// Register sets the identity, replacing any previous one. Registering the
// empty string is the same as Reset.
func (g *Gate) Register(name string) {
	g.registered = name
}

// Reset forgets the registered identity and returns to setup mode.
func (g *Gate) Reset() {
	g.registered = ""
}

// Registered returns the registered identity, if any.
func (g *Gate) Registered() (string, bool) {
	return g.registered, g.registered != ""
}

// Authorize reports whether claimed may use the assistant.
func (g *Gate) Authorize(claimed string) bool {
	return g.Evaluate(claimed).Allow
}

// Evaluate is Authorize with a machine-readable reason attached.
func (g *Gate) Evaluate(claimed string) Decision {
	d := Decision{Ts: time.Now()}
	switch {
	case g.registered == "":
		d.Allow = true
		d.Reason = "setup_mode"
	case claimed == g.registered:
		d.Allow = true
		d.Reason = "registered_user"
	case claimed == "":
		d.Reason = "anonymous_rejected"
	default:
		d.Reason = fmt.Sprintf("user_not_registered: %s", claimed)
	}
	return d
}

// UnauthorizedMessage is the reply sent to rejected callers.
func (g *Gate) UnauthorizedMessage() string {
	name := g.registered
	if name == "" {
		name = "my registered user"
	}
	return fmt.Sprintf("Sorry, I am only available for %s.", name)
}
