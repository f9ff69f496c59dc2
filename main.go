package main

import (
	"os"
	"sync"
	"time"

	"github.com/mfreitas/go-statuslog/logger"
)

// Example demonstrating shared-console logging from multiple components.
func main() {
	logFile := ""

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// One console mutex for the whole program: every logger built over it
	// serializes its console lines against the others.
	// Usage: ./go-statuslog [logfile]
	// Example: ./go-statuslog ./logs/app.log
	var consoleMu sync.Mutex

	engine := logger.NewShared("engine", &consoleMu)
	worker := logger.NewShared("worker", &consoleMu)

	if logFile != "" {
		engine.EnableFileLogging(logFile)
		defer engine.Close() // Don't forget to close the log file!
	} else {
		engine.LogMessage("Logging to console only (provide a log file path to enable file logging)")
	}

	engine.LogMessage("engine starting")
	engine.LogSuccessf("configuration loaded in %v", 12*time.Millisecond)

	// Concurrent writers sharing the console: lines arrive whole, in
	// critical-section order, never spliced together.
	var wg sync.WaitGroup
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker.LogMessagef("worker %d: picked up job", id)
			worker.LogSuccessf("worker %d: job done", id)
		}(i)
	}
	wg.Wait()

	worker.LogWarning("queue depth above threshold")
	engine.LogErrorf("upstream unreachable: %v", "connection refused")

	// A private-mode logger owns its own lock and does not coordinate
	// with the loggers above.
	side := logger.New("sidecar")
	side.LogMessage("running with a private console lock")

	engine.LogSuccess("shutting down cleanly")
}
