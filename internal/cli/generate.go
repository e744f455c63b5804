package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velora-labs/promptforge/internal/campaign"
	"github.com/velora-labs/promptforge/internal/profile"
)

// GenerateCmd creates the generate command (campaign prompt package
// from a stored profile file).
func GenerateCmd(env *Env) *cobra.Command {
	var (
		profilePath string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate <campaign-id>",
		Short: "Generate a campaign prompt package for a client profile",
		Long: `Generate the full prompt package for one campaign.

Each line of the campaign is resolved against the client profile and
rendered by the model into a copy-paste-ready Genesy prompt. Known
campaigns: ` + strings.Join(campaignIDs(), ", ") + `.`,
		Example: `  promptforge generate lookalike --profile profile.json
  promptforge generate creative-ideas --profile profile.json -o prompts.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			cfg := env.ConfigLoader.Load()
			completer, err := env.CompleterFactory.NewCompleter(cfg)
			if err != nil {
				return err
			}

			builder := campaign.NewBuilder(completer,
				campaign.WithParallelism(cfg.Parallelism))
			pkg, err := builder.Build(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}

			return writeResult(env.Stdout, output, pkg)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Client profile JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")

	// Error is ignored: MarkFlagRequired only fails if the flag doesn't
	// exist, which is a programming error caught at development time.
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

// loadProfile reads and decodes a client profile JSON file.
func loadProfile(path string) (profile.ClientProfile, error) {
	data, err := readInputFile(path)
	if err != nil {
		return profile.ClientProfile{}, err
	}

	var p profile.ClientProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return profile.ClientProfile{}, fmt.Errorf("%s: %s: %w", path, err, ErrInvalidProfileFile)
	}
	return p.Normalized(), nil
}

func campaignIDs() []string {
	infos := campaign.Campaigns()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}
