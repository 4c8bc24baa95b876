//go:build darwin
// +build darwin

package clipboard

import (
	"os/exec"
	"strings"
)

// platformCopy uses pbcopy on macOS.
func platformCopy(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
