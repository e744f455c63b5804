package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/velora-labs/promptforge/internal/campaign"
	"github.com/velora-labs/promptforge/internal/cli"
	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/extract"
	"github.com/velora-labs/promptforge/internal/fieldref"
	"github.com/velora-labs/promptforge/internal/reverse"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitModel      = 5
	ExitInterrupt  = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create the CLI environment with production defaults.
	env := cli.DefaultEnv()

	// Root command.
	rootCmd := &cobra.Command{
		Use:     "promptforge",
		Short:   "Generate Genesy campaign prompts from sales call transcripts",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Subcommands.
	rootCmd.AddCommand(cli.ServeCmd(env))
	rootCmd.AddCommand(cli.IngestCmd(env))
	rootCmd.AddCommand(cli.GenerateCmd(env))
	rootCmd.AddCommand(cli.ReverseCmd(env))
	rootCmd.AddCommand(cli.CampaignsCmd(env))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	// Check for context cancellation (interrupt).
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Usage errors (ExitUsage = 2): Cobra flag/arg parsing errors.
	if isCobraUsageError(err) {
		return ExitUsage
	}

	// Setup errors (ExitSetup = 3).
	if errors.Is(err, completion.ErrNoAPIKey) {
		return ExitSetup
	}

	// Validation errors (ExitValidation = 4).
	if errors.Is(err, cli.ErrFileNotFound) || errors.Is(err, cli.ErrInvalidProfileFile) ||
		errors.Is(err, cli.ErrInvalidMode) || errors.Is(err, campaign.ErrUnknownCampaign) ||
		errors.Is(err, fieldref.ErrUnknown) || errors.Is(err, extract.ErrEmptyTranscript) ||
		errors.Is(err, reverse.ErrEmptyEmail) || errors.Is(err, reverse.ErrNoPlaceholders) {
		return ExitValidation
	}

	// Model response errors (ExitModel = 5).
	if errors.Is(err, completion.ErrMalformedResponse) || errors.Is(err, completion.ErrEmptyResponse) ||
		errors.Is(err, extract.ErrInvalidProfile) || errors.Is(err, reverse.ErrInvalidVariables) {
		return ExitModel
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate Cobra usage errors.
// These patterns are stable across Cobra versions (tested with v1.8+).
// Cobra doesn't expose typed errors, so string matching is the only reliable approach.
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
