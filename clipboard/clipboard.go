// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no native tool is usable (e.g. over SSH).
package clipboard

import "github.com/andareed/siftly-plot/logging"

// Copy puts text on the clipboard. The platform tool is tried first; OSC52 is
// the fallback so copying still works inside remote sessions.
func Copy(text string) error {
	if err := platformCopy(text); err == nil {
		return nil
	} else {
		logging.Debugf("Clipboard: platform copy failed: %v", err)
	}
	return copyOSC52(text)
}
