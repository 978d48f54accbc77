// Package debug provides opt-in diagnostic logging for eab.
//
// Output is silent unless EAB_DEBUG is set or SetEnabled(true) is called
// (the --debug flag). Messages go to stderr by default; UseLogFile redirects
// them to a size-rotated log file.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	enabled           = os.Getenv("EAB_DEBUG") != ""
	out     io.Writer = os.Stderr
)

// Enabled reports whether debug output is on.
func Enabled() bool {
	return enabled
}

// SetEnabled turns debug output on or off.
func SetEnabled(on bool) {
	enabled = on
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// UseLogFile sends debug output to path, rotating it once it grows past
// maxSizeMB. The returned closer must be closed before exit.
func UseLogFile(path string, maxSizeMB int) io.Closer {
	l := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
	}
	out = l
	return l
}

// Logf writes a timestamped line when debug output is enabled.
func Logf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(out, "%s %s", time.Now().Format("15:04:05.000"), msg)
}
