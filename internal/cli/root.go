package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nickofolas/wdle/internal/config"
	"github.com/nickofolas/wdle/internal/logging"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "wdle",
		Short: "Wordle round server",
		Long: `wdle serves Wordle rounds to a browser client.

The browser sends keystrokes over HTTP or a WebSocket; the server owns the
round, scores guesses and returns the board and keyboard state to draw.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json, console (env: LOG_FORMAT)")

	rootCmd.AddCommand(newServeCmd(&cfg))
	rootCmd.AddCommand(newWordsCmd(&cfg))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
