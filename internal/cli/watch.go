package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"stopwatch/internal/core/stopwatch"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var interval, duration time.Duration

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the running stopwatch live",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("watch: interval must be positive, got %s", interval)
			}
			client, err := opts.client()
			if err != nil {
				return err
			}

			ctx := c.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			out := c.OutOrStdout()
			display := newWatchDisplay(out, isTerminal(out))
			defer display.stop()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				snapshot, err := client.State(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("watch: %w", err)
				}
				display.show(snapshot)

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	watchCmd.Flags().DurationVar(&interval, "interval", 250*time.Millisecond, "Polling interval")
	watchCmd.Flags().DurationVar(&duration, "for", 0, "Stop watching after this long (0 watches until interrupted)")
	return watchCmd
}

// watchDisplay spins while the stopwatch runs. Off a terminal it prints one
// line per change instead.
type watchDisplay struct {
	out     io.Writer
	tty     bool
	spinner *spinner.Spinner
	last    string
}

func newWatchDisplay(out io.Writer, tty bool) *watchDisplay {
	return &watchDisplay{out: out, tty: tty}
}

func (display *watchDisplay) show(snapshot stopwatch.Snapshot) {
	line := describe(snapshot)

	if !display.tty {
		if line != display.last {
			fmt.Fprintln(display.out, line)
		}
		display.last = line
		return
	}

	if snapshot.Status == stopwatch.StatusStarted {
		if display.spinner == nil {
			display.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(display.out))
			display.spinner.Suffix = " " + line
			display.spinner.Start()
		} else {
			display.spinner.Lock()
			display.spinner.Suffix = " " + line
			display.spinner.Unlock()
		}
		display.last = line
		return
	}

	display.stopSpinner()
	if line != display.last {
		fmt.Fprintf(display.out, "\r  %s\n", line)
	}
	display.last = line
}

func (display *watchDisplay) stopSpinner() {
	if display.spinner != nil {
		display.spinner.Stop()
		display.spinner = nil
		display.last = ""
	}
}

func (display *watchDisplay) stop() {
	if display.spinner != nil {
		display.spinner.FinalMSG = "  " + display.last + "\n"
	}
	display.stopSpinner()
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
