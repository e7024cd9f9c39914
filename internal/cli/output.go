package cli

import (
	"fmt"

	"stopwatch/internal/core/stopwatch"

	"github.com/fatih/color"
)

// describe renders snapshot as "Started  00:01:05".
func describe(snapshot stopwatch.Snapshot) string {
	return fmt.Sprintf("%s  %s", statusColor(snapshot.Status).Sprintf("%-7s", snapshot.Status), snapshot.Time)
}

func statusColor(status stopwatch.Status) *color.Color {
	switch status {
	case stopwatch.StatusStarted:
		return color.New(color.FgGreen, color.Bold)
	case stopwatch.StatusStopped:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}
