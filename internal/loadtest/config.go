// Package loadtest drives a running estimator over HTTP with generated
// requests and checks every answer against a local calculation.
package loadtest

import (
	"time"

	service "github.com/okian/tripace/internal/app"
)

// Config holds configuration for a load test run.
type Config struct {
	BaseURL      string        // Base URL of the service
	NumRequests  int           // Number of requests to generate
	InvalidRatio float64       // Share of requests generated out of range, in [0, 1]
	Workers      int           // Number of concurrent workers
	Timeout      time.Duration // HTTP request timeout
	Seed         uint64        // Generator seed; equal seeds give equal request sets
	OutputFile   string        // Optional JSON dump of the generated cases
	Verbose      bool          // Log every mismatch
}

// Case is one generated request and what the service must answer.
type Case struct {
	ID      string          `json:"id"` // sent as X-Request-ID
	Request service.Request `json:"request"`
	Valid   bool            `json:"valid"`
	// For valid cases: expected formatted total and weakest discipline.
	WantTotal   string `json:"want_total,omitempty"`
	WantWeakest string `json:"want_weakest,omitempty"`
}

// Stats holds run statistics.
type Stats struct {
	Generated  int
	Submitted  int
	Succeeded  int // 200 with the expected result
	Rejected   int // 400 for a case generated invalid
	Mismatched int // answered, but not as expected
	Failed     int // transport errors and unexpected statuses
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Problems counts cases the service got wrong.
func (s *Stats) Problems() int {
	return s.Mismatched + s.Failed
}
