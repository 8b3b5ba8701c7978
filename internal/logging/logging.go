// Package logging provides the optional debug logger. A TUI owns the
// terminal, so debug output goes to a file instead of stderr.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Debug is the process-wide debug logger. It discards everything
// unless MDTODO_DEBUG names a writable log file.
var Debug = log.New(io.Discard)

func init() {
	path := os.Getenv("MDTODO_DEBUG")
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return
	}

	Debug = log.New(f)
	Debug.SetLevel(log.DebugLevel)
	Debug.SetReportTimestamp(true)
}
