//go:build linux

package platform

import (
	"os"
	"os/exec"
)

type linuxSender struct{}

func newSender() Sender {
	if !toolAvailable("notify-send") || !hasDisplay() {
		return noopSender{}
	}
	return linuxSender{}
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (linuxSender) Send(toast Toast) error {
	return exec.Command("notify-send", "-u", "low", "-a", toast.Title, toast.Title, toast.Message).Run()
}

func (linuxSender) Available() bool {
	return true
}
