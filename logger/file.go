package logger

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnableFileLogging opens path in append mode and mirrors every subsequent
// log line into it until DisableFileLogging or Close. The parent directory
// is created if missing.
//
// Failures to create the directory or open the file are reported as an
// ERROR console line and leave file logging disabled; nothing is returned
// to the caller. Safe to call while another file is already open: that file
// receives a switch marker and is closed first.
//
// Two Logger instances enabled on the same path are not coordinated with
// each other; give each instance its own file.
func (l *Logger) EnableFileLogging(path string) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	if l.file != nil {
		l.fileWrite("=== Switching to new log file ===\n")
		_ = l.file.Close()
		l.file = nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			l.writeConsole(labelError, l.formatLine(labelError, "Failed to create log directory: "+dir))
			return
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.writeConsole(labelError, l.formatLine(labelError, "Failed to open log file: "+path))
		return
	}
	l.file = f

	l.fileWrite("=== Log Started: " + l.now().Format(timestampFormat) + " ===\n")
	l.fileWrite("Logger: " + l.name + "\n")
	l.fileWrite("===================================\n")
	_ = f.Sync()

	l.writeConsole(labelMessage, l.formatLine(labelMessage, "File logging enabled: "+path))
}

// DisableFileLogging writes the session-end marker and closes the log file.
// A no-op when no file is open: nothing is created and nothing is reported.
func (l *Logger) DisableFileLogging() {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	if l.file == nil {
		return
	}

	l.fileWrite("=== Log Ended: " + l.now().Format(timestampFormat) + " ===\n\n")
	_ = l.file.Close()
	l.file = nil

	l.writeConsole(labelMessage, l.formatLine(labelMessage, "File logging disabled"))
}

// Close releases the log file, writing the session-end marker first. Call
// it (usually deferred) when the owning component shuts down so no handle
// or unflushed data outlives the Logger. Calling Close more than once, or
// with file logging never enabled, is harmless.
func (l *Logger) Close() {
	l.DisableFileLogging()
}

// writeFile mirrors a formatted line into the log file when enabled. It
// holds only the file lock, so console writers on other goroutines are
// never blocked behind file I/O.
func (l *Logger) writeFile(line string) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	l.fileWrite(line + "\n")
}

// fileWrite appends raw text to the open file; callers must hold fileMu.
// A write fault is reported on the diagnostic stream without taking the
// console lock: the caller may already hold that lock, and the report must
// not recurse into the logger.
func (l *Logger) fileWrite(s string) {
	if l.file == nil {
		return
	}
	if _, err := l.file.WriteString(s); err != nil {
		fmt.Fprintf(l.diag, "ERROR: failed to write to log file: %v\n", err)
	}
}

// flushFile forces the log file to disk, under the file lock.
func (l *Logger) flushFile() {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	if l.file != nil {
		_ = l.file.Sync()
	}
}
