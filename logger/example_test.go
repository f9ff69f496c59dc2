package logger_test

import (
	"sync"

	"github.com/mfreitas/go-statuslog/logger"
)

// This example shows a component with a private console lock.
func ExampleNew() {
	l := logger.New("worker")
	l.LogMessage("starting up")
	l.LogSuccess("ready")
}

// This example shows several components serializing console output
// through one shared mutex.
func ExampleNewShared() {
	var consoleMu sync.Mutex

	api := logger.NewShared("api", &consoleMu)
	db := logger.NewShared("database", &consoleMu)

	api.LogMessage("listening on :8080")
	db.LogWarning("slow query detected")
	api.LogError("request failed")
}

// This example mirrors log lines into a file between Enable and Close.
func ExampleLogger_EnableFileLogging() {
	l := logger.New("importer")
	l.EnableFileLogging("logs/importer.log")
	defer l.Close()

	l.LogMessagef("batch %d imported", 7)
}
