package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/effects"
	"github.com/iiskills/mpa/internal/gateway"
	"github.com/iiskills/mpa/internal/scheduler"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides gateway.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides gateway.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	gwCfg := rt.cfg.Gateway
	if serveHost != "" {
		gwCfg.Host = serveHost
	}
	if servePort > 0 {
		gwCfg.Port = servePort
	}

	msgBus := bus.NewMessageBus()
	sched := scheduler.New(rt.cfg.Scheduler, msgBus)
	srv := gateway.New(gwCfg, gateway.Deps{
		Assistant: rt.assistant,
		Effects:   effects.NewDispatcher(sched, rt.cfg.Effects),
		Scheduler: sched,
		Bus:       msgBus,
		Settings:  rt.settings,
		Version:   version,
	})

	go msgBus.DispatchOutbound(ctx)
	if rt.cfg.Scheduler.Enabled {
		go sched.Run(ctx)
	}

	printHeader(cmd.OutOrStdout(), "🌐 MPA Gateway")
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s:%d\n", gwCfg.Host, gwCfg.Port)
	return srv.ListenAndServe(ctx)
}
