package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iiskills/mpa/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and profile status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "📊 MPA Status")
		fmt.Fprintf(out, "Version:  %s\n", version)

		if path, err := config.ConfigPath(); err == nil {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(out, "Config:   ✓ Found ("+path+")")
			} else {
				fmt.Fprintln(out, "Config:   ✗ Not found (defaults in use)")
			}
		}

		rt, err := openRuntime(context.Background())
		if err != nil {
			return err
		}
		defer rt.Close()

		fmt.Fprintf(out, "Store:    %s\n", rt.cfg.Store.Driver)
		if user, ok := rt.assistant.RegisteredUser(); ok {
			fmt.Fprintf(out, "User:     ✓ %s\n", user)
		} else {
			fmt.Fprintln(out, "User:     ✗ None (setup mode, run 'mpa register <name>')")
		}
		c := rt.assistant.Config()
		fmt.Fprintf(out, "Persona:  %s (%s, %s)\n", c.DisplayName, c.Gender, c.Language)
		fmt.Fprintf(out, "Timezone: %s\n", rt.assistant.Location())
		return nil
	},
}
