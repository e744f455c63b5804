package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velora-labs/promptforge/internal/campaign"
)

// CampaignsCmd creates the campaigns command (list known campaigns).
func CampaignsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "campaigns",
		Short: "List the available campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range campaign.Campaigns() {
				if _, err := fmt.Fprintf(env.Stdout, "%s\t%s\n", info.ID, info.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
