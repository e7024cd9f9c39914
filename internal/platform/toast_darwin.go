//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

type darwinSender struct{}

func newSender() Sender {
	if !toolAvailable("osascript") {
		return noopSender{}
	}
	return darwinSender{}
}

func (darwinSender) Send(toast Toast) error {
	script := fmt.Sprintf(`display notification %q with title %q`, toast.Message, toast.Title)
	return exec.Command("osascript", "-e", script).Run()
}

func (darwinSender) Available() bool {
	return true
}
