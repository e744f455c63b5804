package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velora-labs/promptforge/internal/reverse"
)

// ErrInvalidMode indicates a mode flag outside variables/analysis.
var ErrInvalidMode = errors.New("invalid mode")

// ReverseCmd creates the reverse command (email template to variable
// prompts).
func ReverseCmd(env *Env) *cobra.Command {
	var (
		language string
		mode     string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "reverse <email-file>",
		Short: "Reverse-engineer an email template into variable prompts",
		Long: `Reverse-engineer an email template containing {placeholder} tokens.

In variables mode (the default) the result carries one generation
prompt per placeholder, in document order. In analysis mode the result
carries a single combined analysis prompt instead.`,
		Example: `  promptforge reverse email.txt
  promptforge reverse email.txt --mode analysis -o analysis.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parse all inputs at the CLI boundary.
			parsedMode, err := parseMode(mode)
			if err != nil {
				return err
			}

			email, err := readInputFile(args[0])
			if err != nil {
				return err
			}

			cfg := env.ConfigLoader.Load()
			completer, err := env.CompleterFactory.NewCompleter(cfg)
			if err != nil {
				return err
			}

			result, err := reverse.EngineerVariables(cmd.Context(), completer,
				string(email), reverse.Options{
					Language: language,
					Mode:     parsedMode,
				})
			if err != nil {
				return err
			}

			return writeResult(env.Stdout, output, result)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Prompt language tag (default: es-ES)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Output mode: variables, analysis (default: variables)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// parseMode validates the mode flag. Empty means the default.
func parseMode(mode string) (reverse.Mode, error) {
	switch reverse.Mode(mode) {
	case "", reverse.ModeVariables:
		return reverse.ModeVariables, nil
	case reverse.ModeAnalysis:
		return reverse.ModeAnalysis, nil
	}
	return "", fmt.Errorf("%q: %w (expected variables or analysis)", mode, ErrInvalidMode)
}
