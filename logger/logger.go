package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Severity labels written into every log line.
const (
	labelMessage = "MESSAGE"
	labelSuccess = "SUCCESS"
	labelWarning = "WARNING"
	labelError   = "ERROR"
)

// Column widths for the padded name and level fields. Values longer than
// the width are written whole, not truncated.
const (
	nameWidth  = 15
	levelWidth = 7
)

// timestampFormat is the fixed human-readable timestamp with millisecond
// resolution used on the console and in log files.
const timestampFormat = "2006-01-02 15:04:05.000"

// Logger writes leveled status lines to the console and, when file logging
// is enabled, mirrors the same lines into a log file.
//
// Console writes are guarded by a mutex that is either owned by the
// instance (New) or borrowed from the caller (NewShared). Every Logger
// constructed over the same shared mutex serializes console output against
// the others at line granularity. The log file and its lock are always
// private to the instance, so file I/O on one Logger never blocks console
// writes on another.
//
// All methods are safe for concurrent use and none of them returns an
// error: logging is best-effort and must never fail the caller.
type Logger struct {
	name string

	// consoleMu guards the console stream. Private mode allocates it;
	// shared mode stores the caller's pointer, which must outlive the
	// Logger. Both modes lock and unlock it the same way.
	consoleMu *sync.Mutex

	// fileMu guards file. Always owned by this instance, even when the
	// console mutex is shared.
	fileMu sync.Mutex
	file   *os.File

	// color is the cached console-capability detection result, decided
	// once at construction and never re-checked per write.
	color       bool
	colorForced bool

	out  io.Writer
	diag io.Writer
	now  func() time.Time
}

// Option customizes a Logger at construction time.
type Option func(*Logger)

// WithOutput redirects console output to w. Color capability is re-detected
// against the new writer unless WithColor was given.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		if w == nil {
			return
		}
		l.out = w
		if !l.colorForced {
			l.color = detectColor(w)
		}
	}
}

// WithDiagnostics redirects the failure-report stream. Diagnostics are
// written without taking the console lock; see EnableFileLogging.
func WithDiagnostics(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.diag = w
		}
	}
}

// WithColor forces colorized output on or off, overriding detection.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		l.color = enabled
		l.colorForced = true
	}
}

// WithClock sets the timestamp source. Useful in tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns a Logger with a private console lock. It coordinates console
// output only with itself; use NewShared when several loggers must not
// interleave their lines with each other.
func New(name string, opts ...Option) *Logger {
	return NewShared(name, &sync.Mutex{}, opts...)
}

// NewShared returns a Logger that serializes console writes through the
// supplied mutex. The mutex is borrowed, never owned: the caller typically
// creates one console mutex for the whole program and hands it to every
// Logger, and must keep it alive for as long as any of them.
//
// A nil mutex falls back to a private one.
func NewShared(name string, console *sync.Mutex, opts ...Option) *Logger {
	if console == nil {
		console = &sync.Mutex{}
	}
	l := &Logger{
		name:      name,
		consoleMu: console,
		out:       os.Stdout,
		diag:      os.Stderr,
		now:       time.Now,
	}
	l.color = detectColor(l.out)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogMessage writes a neutral status line.
func (l *Logger) LogMessage(text string) {
	l.write(labelMessage, text)
}

// LogSuccess writes a success line in bright green.
func (l *Logger) LogSuccess(text string) {
	l.write(labelSuccess, text)
}

// LogWarning writes a warning line in yellow.
func (l *Logger) LogWarning(text string) {
	l.write(labelWarning, text)
}

// LogError writes an error line in bright red and forces both the console
// and the file stream to flush before returning, so the line survives an
// abnormal termination immediately after the call.
func (l *Logger) LogError(text string) {
	l.write(labelError, text)
	l.flushConsole()
	l.flushFile()
}

// LogMessagef formats with fmt.Sprintf and writes a neutral status line.
func (l *Logger) LogMessagef(format string, args ...any) {
	l.LogMessage(fmt.Sprintf(format, args...))
}

// LogSuccessf formats with fmt.Sprintf and writes a success line.
func (l *Logger) LogSuccessf(format string, args ...any) {
	l.LogSuccess(fmt.Sprintf(format, args...))
}

// LogWarningf formats with fmt.Sprintf and writes a warning line.
func (l *Logger) LogWarningf(format string, args ...any) {
	l.LogWarning(fmt.Sprintf(format, args...))
}

// LogErrorf formats with fmt.Sprintf and writes an error line.
func (l *Logger) LogErrorf(format string, args ...any) {
	l.LogError(fmt.Sprintf(format, args...))
}

// write formats the line once, then pushes it through the two independent
// critical sections. The console and file sections of one call are not
// jointly atomic: another logger may slot a console line between them.
func (l *Logger) write(label, text string) {
	line := l.formatLine(label, text)
	l.writeConsole(label, line)
	l.writeFile(line)
}

// formatLine renders "[ts] [name...] [LEVEL..] text" with the name and
// level columns padded by dots.
func (l *Logger) formatLine(label, text string) string {
	var b strings.Builder
	b.Grow(48 + nameWidth + len(text))
	b.WriteByte('[')
	b.WriteString(l.now().Format(timestampFormat))
	b.WriteString("] [")
	b.WriteString(padDots(l.name, nameWidth))
	b.WriteString("] [")
	b.WriteString(padDots(label, levelWidth))
	b.WriteString("] ")
	b.WriteString(text)
	return b.String()
}

func padDots(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}
