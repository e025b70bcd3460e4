package loadtest

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/tripace/pkg/logger"
)

const logFilePermission = 0600

// SetupLogging sends log output to both stdout and a file. If logFile is
// empty, a timestamped filename is generated. The returned closer releases
// the file.
func SetupLogging(logFile string, verbose bool) (io.Closer, error) {
	if logFile == "" {
		logFile = "loadtest_" + time.Now().Format("20060102_150405") + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(logger.WithLevel(level), logger.WithOutput(io.MultiWriter(os.Stdout, file))); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return file, nil
}

// ShowHelp prints usage information for the load test tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `tripace load test
=================

Submits generated finish-time requests to a running estimator and checks
every answer against a local calculation.

Usage:
  go run ./cmd/loadtest [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -requests int
        Number of requests to generate and submit (default 10000)
  -invalid float
        Share of requests generated out of range (default 0.1)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seed uint
        Generator seed (default: current time)
  -output string
        Optional JSON file receiving the generated cases
  -log string
        Log file for test output (default: loadtest_TIMESTAMP.log)
  -verbose
        Log every mismatch and enable debug output
  -help
        Show this help message

Examples:
  go run ./cmd/loadtest
  go run ./cmd/loadtest -requests 50000 -workers 16 -url http://localhost:8080
  go run ./cmd/loadtest -seed 42 -output cases.json
`)
}
