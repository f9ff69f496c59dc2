package logger

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI attribute sequences per severity. MESSAGE stays on plain white so
// neutral lines do not shout; SUCCESS and ERROR use the bright variants.
var levelColors = map[string]string{
	labelMessage: "\033[37m",
	labelSuccess: "\033[92m",
	labelWarning: "\033[33m",
	labelError:   "\033[91m",
}

const colorReset = "\033[0m"

// detectColor reports whether w is a terminal that can be expected to honor
// ANSI attribute sequences. Pipes, regular files and in-memory writers get
// plain text.
func detectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// writeConsole writes one line under the console lock. The lock covers the
// whole set-color/write/reset sequence so concurrent writers sharing the
// mutex cannot splice attribute codes into each other's lines.
func (l *Logger) writeConsole(label, line string) {
	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()

	if !l.color {
		fmt.Fprintln(l.out, line)
		return
	}
	fmt.Fprint(l.out, levelColors[label], line, "\n", colorReset)
}

// flushConsole forces the console stream to flush, under the console lock.
func (l *Logger) flushConsole() {
	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()
	flushWriter(l.out)
}

// flusher is implemented by buffered sinks that expose an explicit flush.
type flusher interface {
	Flush() error
}

func flushWriter(w io.Writer) {
	switch s := w.(type) {
	case *os.File:
		// Sync fails with EINVAL on terminals; there is nothing useful
		// to do with the error either way.
		_ = s.Sync()
	case flusher:
		_ = s.Flush()
	}
}
