package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/velora-labs/promptforge/internal/server"
)

// ServeCmd creates the serve command (run the HTTP API).
func ServeCmd(env *Env) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prompt generation HTTP API",
		Long: `Serve the HTTP API for transcript ingestion, campaign prompt
generation, and email reverse engineering.

Listens on HOST:PORT (default 0.0.0.0:4000); flags override the
environment.`,
		Example: `  promptforge serve
  promptforge serve --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := env.ConfigLoader.Load()
			if host != "" {
				cfg.Host = host
			}
			if port != 0 {
				cfg.Port = port
			}

			completer, err := env.CompleterFactory.NewCompleter(cfg)
			if err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			srv := server.New(cfg, completer, logger)
			return srv.Run(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind address (default: HOST env or 0.0.0.0)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port (default: PORT env or 4000)")

	return cmd
}
