package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the running stopwatch",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			snapshot, err := client.State(c.Context())
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			if asJSON {
				encoder := json.NewEncoder(c.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(snapshot)
			}
			fmt.Fprintln(c.OutOrStdout(), describe(snapshot))
			return nil
		},
	}

	statusCmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot as JSON")
	return statusCmd
}
