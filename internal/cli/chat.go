package cli

import (
	"bufio"
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/effects"
	"github.com/iiskills/mpa/internal/scheduler"
)

const chatID = "local"

var chatUser string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant interactively",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatUser, "user", "u", "", "Identity to chat as (defaults to assistant.defaultUser)")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	msgBus := bus.NewMessageBus()
	sched := scheduler.New(rt.cfg.Scheduler, msgBus)
	msgBus.Subscribe(bus.ChannelCLI, func(msg *bus.OutboundMessage) {
		fmt.Fprintf(out, "\n%s\n> ", color.YellowString("🔔 "+msg.Content))
	})
	go msgBus.DispatchOutbound(ctx)
	if rt.cfg.Scheduler.Enabled {
		go sched.Run(ctx)
	}
	dispatcher := effects.NewDispatcher(sched, rt.cfg.Effects)

	name := rt.assistant.Config().DisplayName
	printHeader(out, "💬 "+name)
	fmt.Fprintln(out, "Type a message, or 'exit' to quit.")

	user := rt.claimed(chatUser)
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(l)
		}
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply := rt.assistant.Respond(line, user)
		raw := reply.String()
		fmt.Fprintf(out, "%s %s\n", color.CyanString(name+":"), rt.assistant.CleanResponse(raw))
		if !reply.Authorized {
			continue
		}
		printNotices(out, dispatcher.Apply(ctx, rt.assistant.ParseActionCodes(raw), effects.Origin{
			Channel: bus.ChannelCLI,
			ChatID:  chatID,
			Message: line,
		}))
	}
}
