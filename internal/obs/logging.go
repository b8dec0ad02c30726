// Package obs holds the process-wide logger.
package obs

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the shared structured logger. It is usable before InitLogger runs.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "MiniStore",
})

// InitLogger replaces Logger using the configured level ("debug", "info", ...)
// and format ("text", "json" or "logfmt").
func InitLogger(w io.Writer, level, format string) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	formatter := log.TextFormatter
	switch format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "MiniStore",
		Level:           lvl,
		Formatter:       formatter,
	})
}
