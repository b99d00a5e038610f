// Package clipboard copies tab titles to the system clipboard for the
// demo's yank binding.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Yank copies a tab title to the system clipboard. Native clipboard
// tools (pbcopy, wl-copy, xclip) are tried first; without one — SSH
// sessions, minimal containers — the OSC 52 sequence is emitted so the
// terminal emulator captures the text instead.
func Yank(title string) error {
	title = flatten(title)
	if err := clipboard.WriteAll(title); err == nil {
		return nil
	}
	return emitOSC52(title)
}

// flatten collapses a title to a single line. Titles render on one
// panel row and should paste the same way.
func flatten(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// emitOSC52 writes the base64 OSC 52 clipboard sequence to stderr,
// keeping it off the bubbletea-owned stdout.
func emitOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stderr, "\x1b]52;c;%s\x07", encoded)
	return err
}
