package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiskills/mpa/internal/assistant"
)

var (
	prefsName     string
	prefsGender   string
	prefsLanguage string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the assistant's name, voice and language",
	RunE:  runPrefs,
}

func init() {
	prefsCmd.Flags().StringVar(&prefsName, "name", "", "Display name of the assistant")
	prefsCmd.Flags().StringVar(&prefsGender, "gender", "", "Voice: male, female or neutral")
	prefsCmd.Flags().StringVar(&prefsLanguage, "language", "", "Preferred language code")
}

func runPrefs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	changed := false
	if cmd.Flags().Changed("gender") {
		g, err := assistant.ParseGender(prefsGender)
		if err != nil {
			return err
		}
		if err := rt.assistant.SetGender(g); err != nil {
			return err
		}
		changed = true
	}
	if cmd.Flags().Changed("name") {
		rt.assistant.SetUserName(prefsName)
		changed = true
	}
	if cmd.Flags().Changed("language") {
		rt.assistant.SetLanguage(prefsLanguage)
		changed = true
	}
	if changed {
		if err := rt.saveProfile(ctx); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}

	c := rt.assistant.Config()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", c.DisplayName)
	fmt.Fprintf(out, "Gender:   %s\n", c.Gender)
	fmt.Fprintf(out, "Language: %s\n", c.Language)
	return nil
}
