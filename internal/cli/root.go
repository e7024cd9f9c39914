// Package cli provides the cobra commands of the stopwatch binary: the GUI and
// headless instances, and the client commands that drive a running instance.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stopwatch/internal/config"
	"stopwatch/internal/core/command"
	"stopwatch/internal/ipc"
	"stopwatch/internal/platform"
	"stopwatch/internal/storage"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	address    string
	headless   bool
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "A stopwatch that keeps running in the background",
		Long: `A stopwatch that keeps running in the background.

Without a subcommand the stopwatch window and tray controls are started. The
start, stop, cancel, status and watch commands talk to that running instance.`,
		Example: `  # Run the stopwatch with tray controls
  stopwatch

  # Run without a GUI, rendering the time on the terminal
  stopwatch --headless

  # Drive the running instance
  stopwatch start
  stopwatch stop
  stopwatch status --json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settingsPath, err := opts.settingsPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(settingsPath)
			if err != nil {
				return err
			}
			if opts.headless {
				return runHeadless(cmd.Context(), cmd.OutOrStdout(), cfg, opts.endpoint(cfg))
			}
			return runGUI(cmd.Context(), cfg, settingsPath, opts.endpoint(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the settings file (default <config dir>/Stopwatch/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.address, "address", "", "Command endpoint of the running instance")
	_ = rootCmd.PersistentFlags().MarkHidden("address")
	rootCmd.Flags().BoolVar(&opts.headless, "headless", false, "Run without a GUI and render the stopwatch on the terminal")

	rootCmd.AddCommand(
		newCommandCmd(opts, command.Start, "Start or resume the stopwatch"),
		newCommandCmd(opts, command.Stop, "Stop the stopwatch, keeping the elapsed time"),
		newCommandCmd(opts, command.Cancel, "Reset the stopwatch to zero"),
		newStatusCmd(opts),
		newWatchCmd(opts),
	)

	return rootCmd
}

func (opts *rootOptions) settingsPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	path, err := storage.SettingsPath(platform.NewService(), config.AppName)
	if err != nil {
		return "", fmt.Errorf("locate settings: %w", err)
	}
	return path, nil
}

func (opts *rootOptions) endpoint(cfg *config.Configuration) string {
	if opts.address != "" {
		return opts.address
	}
	return ipc.Address(cfg.InstanceName)
}

func (opts *rootOptions) client() (*ipc.Client, error) {
	if opts.address != "" {
		return ipc.NewClient(opts.address), nil
	}
	settingsPath, err := opts.settingsPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}
	return ipc.NewClient(opts.endpoint(cfg)), nil
}
