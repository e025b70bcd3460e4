package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/tripace/internal/loadtest"
)

// Default configuration constants.
const (
	defaultNumRequests  = 10000
	defaultInvalidRatio = 0.1
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultTestTimeout  = 10 * time.Minute
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numRequests  = flag.Int("requests", defaultNumRequests, "Number of requests to generate and submit")
		invalidRatio = flag.Float64("invalid", defaultInvalidRatio, "Share of requests generated out of range")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed         = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Generator seed")
		outputFile   = flag.String("output", "", "Optional JSON file receiving the generated cases")
		logFile      = flag.String("log", "", "Log file for test output (default: loadtest_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadtest.ShowHelp(os.Stdout)
		return 0
	}

	closer, err := loadtest.SetupLogging(*logFile, *verbose)
	if err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = closer.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &loadtest.Config{
		BaseURL:      *baseURL,
		NumRequests:  *numRequests,
		InvalidRatio: *invalidRatio,
		Workers:      *workers,
		Timeout:      *timeout,
		Seed:         *seed,
		OutputFile:   *outputFile,
		Verbose:      *verbose,
	}

	if _, err := loadtest.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Load test failed: " + err.Error() + "\n")
		return 1
	}
	return 0
}
