package cli

import (
	"fmt"

	"stopwatch/internal/core/command"

	"github.com/spf13/cobra"
)

func newCommandCmd(opts *rootOptions, cmd command.Command, short string) *cobra.Command {
	var viaAction bool

	commandCmd := &cobra.Command{
		Use:   cmd.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			request := command.ForCommand(cmd)
			if viaAction {
				request = command.ForAction(cmd)
			}

			snapshot, err := client.Send(c.Context(), request)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd, err)
			}
			fmt.Fprintln(c.OutOrStdout(), describe(snapshot))
			return nil
		},
	}

	commandCmd.Flags().BoolVar(&viaAction, "via-action", false, "Send the command as an action name instead of a state payload")
	return commandCmd
}
