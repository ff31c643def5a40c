package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the legal-code corpus",
	Long: `Answers a question using retrieval over the built-in legal-code corpus.
The corpus index is built on first use and reused for later questions.

Requires configured embedding and LLM providers ('lexis settings').`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured; run 'lexis settings' to set up AI providers")
	}

	answer, err := corpusService.Answer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	cmd.Println(answer)
	return nil
}
