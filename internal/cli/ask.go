package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/effects"
)

var (
	askMessage string
	askUser    string
	askRaw     bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Send one message and print the reply",
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askMessage, "message", "m", "", "Message to send")
	askCmd.Flags().StringVarP(&askUser, "user", "u", "", "Identity to send as (defaults to assistant.defaultUser)")
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "Print the reply with its action codes")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askMessage == "" {
		return errors.New("--message is required")
	}
	ctx := context.Background()
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	reply := rt.assistant.Respond(askMessage, rt.claimed(askUser))
	raw := reply.String()
	if askRaw {
		fmt.Fprintln(out, raw)
		return nil
	}
	fmt.Fprintln(out, rt.assistant.CleanResponse(raw))
	if !reply.Authorized {
		return nil
	}

	// One-shot runs have no scheduler; reminders only fire from chat or serve.
	d := effects.NewDispatcher(nil, rt.cfg.Effects)
	notices := d.Apply(ctx, rt.assistant.ParseActionCodes(raw), effects.Origin{
		Channel: bus.ChannelCLI,
		ChatID:  "ask",
		Message: askMessage,
	})
	printNotices(out, notices)
	return nil
}
