package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/velora-labs/promptforge/internal/extract"
)

// IngestCmd creates the ingest command (transcript file to client
// profile JSON).
func IngestCmd(env *Env) *cobra.Command {
	var (
		clientName string
		website    string
		notes      string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "ingest <transcript-file>",
		Short: "Extract a client profile from a sales call transcript",
		Long: `Extract a structured client profile from a raw transcript.

The transcript is sent to the model together with any optional client
context; the resulting profile JSON is printed to stdout or written to
the output file.`,
		Example: `  promptforge ingest call.txt
  promptforge ingest call.txt --client-name "Acme" --website https://acme.example -o profile.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readInputFile(args[0])
			if err != nil {
				return err
			}

			cfg := env.ConfigLoader.Load()
			completer, err := env.CompleterFactory.NewCompleter(cfg)
			if err != nil {
				return err
			}

			pkt := extract.Packet{
				ID:         uuid.NewString(),
				Transcript: string(transcript),
				ClientName: clientName,
				Website:    website,
				Notes:      notes,
			}

			p, err := extract.ClientProfile(cmd.Context(), completer, pkt)
			if err != nil {
				return err
			}

			return writeResult(env.Stdout, output, p)
		},
	}

	cmd.Flags().StringVar(&clientName, "client-name", "", "Client or company name")
	cmd.Flags().StringVar(&website, "website", "", "Client website URL")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes about the client")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}
