package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the system prompt for the current persona",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(context.Background())
		if err != nil {
			return err
		}
		defer rt.Close()
		fmt.Fprintln(cmd.OutOrStdout(), rt.assistant.SystemPrompt())
		return nil
	},
}
