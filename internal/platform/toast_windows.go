//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type windowsSender struct{}

func newSender() Sender {
	if !toolAvailable("powershell") {
		return noopSender{}
	}
	return windowsSender{}
}

func (windowsSender) Send(toast Toast) error {
	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('Stopwatch').Show($toast)
`, escapeForPowerShell(toast.Title), escapeForPowerShell(toast.Message))

	return exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script).Run()
}

func (windowsSender) Available() bool {
	return true
}

func escapeForPowerShell(value string) string {
	replacer := strings.NewReplacer("'", "''", "`", "``", "$", "`$")
	return replacer.Replace(value)
}
