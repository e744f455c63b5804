// Package cli implements the promptforge commands: serve the HTTP API,
// ingest a transcript into a client profile, generate a campaign prompt
// package, and reverse-engineer an email template.
package cli

import (
	"io"
	"os"

	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/config"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing commands in isolation.
//
// All fields have production defaults via DefaultEnv(). Tests override
// specific fields using the With* options.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	ConfigLoader     ConfigLoader
	CompleterFactory CompleterFactory
}

// ConfigLoader provides the runtime configuration.
type ConfigLoader interface {
	Load() config.Config
}

// CompleterFactory creates the completion client used by every command
// that talks to the model.
type CompleterFactory interface {
	NewCompleter(cfg config.Config) (completion.Completer, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithCompleterFactory sets the completer factory.
func WithCompleterFactory(f CompleterFactory) EnvOption {
	return func(e *Env) {
		e.CompleterFactory = f
	}
}

// NewEnv creates an Env with the given options applied over defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// DefaultEnv creates an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		ConfigLoader:     envConfigLoader{},
		CompleterFactory: openaiFactory{},
	}
}

type envConfigLoader struct{}

func (envConfigLoader) Load() config.Config {
	return config.FromEnv()
}

// openaiFactory builds the production OpenAI-backed completer. JSON
// calls (extraction, variable analysis) use the extractor model; text
// calls (prompt rendering, synthesis) use the prompt-builder model.
type openaiFactory struct{}

func (openaiFactory) NewCompleter(cfg config.Config) (completion.Completer, error) {
	return completion.NewOpenAIClient(cfg.APIKey,
		completion.WithJSONModel(cfg.ModelExtractor),
		completion.WithTextModel(cfg.ModelPromptBuilder),
	)
}
