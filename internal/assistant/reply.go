package assistant

import (
	"strings"

	"github.com/iiskills/mpa/internal/actions"
)

// Reply is a handler's answer. Text is what the user reads; Actions are the
// side effects it asks for.
type Reply struct {
	Intent     Intent
	Text       string
	Actions    []actions.Action
	Authorized bool
}

// String renders the raw reply: Text followed by one action code per line.
func (r Reply) String() string {
	if len(r.Actions) == 0 {
		return r.Text
	}
	var b strings.Builder
	b.WriteString(r.Text)
	for _, a := range r.Actions {
		b.WriteByte('\n')
		b.WriteString(actions.Encode(a))
	}
	return b.String()
}
