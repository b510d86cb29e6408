// Package cli wires the assistant, its store and its collaborators into the
// mpa command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// version can be overridden at build time via:
	// go build -ldflags "-X github.com/iiskills/mpa/internal/cli.version=1.2.3"
	version = "0.4.0"
	logo    = "\n" +
		"  __  __ ____   _\n" +
		" |  \\/  |  _ \\ / \\\n" +
		" | |\\/| | |_) / _ \\\n" +
		" | |  | |  __/ ___ \\\n" +
		" |_|  |_|_| /_/   \\_\\\n"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mpa",
	Short: "MPA - My Personal Assistant",
	Long:  color.CyanString(logo) + "\nA rule-based personal assistant for reminders, messages, calls and media.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging keeps interactive commands quiet unless asked otherwise.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
