package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var registerReset bool

var registerCmd = &cobra.Command{
	Use:   "register [name]",
	Short: "Register the only user the assistant answers to",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().BoolVar(&registerReset, "reset", false, "Clear the registered user (back to setup mode)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	var name string
	switch {
	case registerReset && len(args) > 0:
		return errors.New("pass either a name or --reset")
	case registerReset:
	case len(args) == 1 && args[0] != "":
		name = args[0]
	default:
		return errors.New("a name is required (or --reset)")
	}

	ctx := context.Background()
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.assistant.SetRegisteredUser(name)
	if err := rt.saveProfile(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if name == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Registered user cleared; the assistant is in setup mode.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s.\n", name)
	return nil
}
