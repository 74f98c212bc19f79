// Package mlog is a minimal logging wrapper, grounded on golang-dep's
// log/logger.go: a thin shim over an io.Writer rather than a full
// structured-logging framework, since myxa's diagnostic needs are limited
// to a verbose/info stream and a debug stream gated by a CLI flag.
package mlog

import (
	"fmt"
	"io"
)

// Logger writes info-level lines only when Info is true and debug-level
// lines only when Debug is true, mirroring the --info/--no-info and
// --debug/--no-debug flag pairs of spec §6. Error lines are always written.
type Logger struct {
	Out, Err io.Writer
	Info     bool
	Debug    bool
}

// New returns a Logger writing to out/err with the given verbosity flags.
func New(out, err io.Writer, info, debug bool) *Logger {
	return &Logger{Out: out, Err: err, Info: info, Debug: debug}
}

// Infof prints a formatted line to Out if info logging is enabled.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Info {
		fmt.Fprintf(l.Out, format+"\n", args...)
	}
}

// Debugf prints a formatted line to Err if debug logging is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Debug {
		fmt.Fprintf(l.Err, "debug: "+format+"\n", args...)
	}
}

// Errorf always prints a formatted line to Err; errors are user-visible
// regardless of verbosity settings.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.Err, "myxa: "+format+"\n", args...)
}
