//go:build windows
// +build windows

package clipboard

import (
	"os/exec"
	"strings"
)

// platformCopy uses PowerShell's Set-Clipboard on Windows.
func platformCopy(text string) error {
	cmd := exec.Command("powershell", "-NoProfile", "-Command", "Set-Clipboard")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
