package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nickofolas/wdle/internal/config"
	"github.com/nickofolas/wdle/internal/words"
)

func newWordsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Load the configured word lists and print their sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := words.Load(cfg.Words)
			if err != nil {
				return err
			}
			sc, gc := lists.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "secrets: %d\nguesses: %d\n", sc, gc)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Words.SecretsFile, "secrets", cfg.Words.SecretsFile, "Secrets file (env: WORDS_SECRETS_FILE)")
	cmd.Flags().StringVar(&cfg.Words.GuessesFile, "guesses", cfg.Words.GuessesFile, "Guesses file (env: WORDS_GUESSES_FILE)")
	return cmd
}
