// Package logger provides a small thread-safe status logger with
// color-coded console output and optional per-instance file output.
//
// # Console Output
//
// Every line carries a millisecond timestamp, the logger name and the
// severity, each in a fixed-width column:
//
//	[2026-08-29 14:03:07.214] [downloader.....] [SUCCESS] fetch complete
//
// Lines are colorized by severity when standard output is a terminal;
// redirected output stays plain. Detection happens once, at construction.
//
// # Shared Console Lock
//
// The point of this package is letting many loggers on many goroutines
// share one console without garbling it. Create one mutex for the program
// and hand it to every component's logger:
//
//	var consoleMu sync.Mutex
//	dl := logger.NewShared("downloader", &consoleMu)
//	ix := logger.NewShared("indexer", &consoleMu)
//
// Console lines from dl and ix never interleave. A logger built with New
// owns a private lock and coordinates only with itself.
//
// # File Logging
//
// Each logger can mirror its lines (uncolored) into its own file:
//
//	dl.EnableFileLogging("logs/downloader.log")
//	defer dl.Close()
//
// The file is opened in append mode, bracketed by session start/end
// banners, and guarded by a lock private to the instance, so file I/O on
// one logger never delays console output on another. Open or write
// failures are reported on the console and never returned: no method in
// this package fails the caller.
//
// # Severities
//
// Four levels: MESSAGE (neutral), SUCCESS, WARNING and ERROR. ERROR
// additionally flushes both streams before returning so the line survives
// a crash immediately after the call.
package logger
