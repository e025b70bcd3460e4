package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/okian/tripace/internal/adapters/http/api"
	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/pkg/logger"
)

type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeRejected
	outcomeMismatched
	outcomeFailed
)

// submitCases posts every case through a worker pool and tallies outcomes.
func submitCases(ctx context.Context, cfg *Config, client *HTTPClient, cases []Case, stats *Stats) {
	logger.Get().Info(ctx, "submitting requests", logger.Int("count", len(cases)), logger.Int("workers", cfg.Workers))

	var counts [outcomeFailed + 1]atomic.Int64
	var submitted atomic.Int64

	jobs := make(chan Case, cfg.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				o, err := submitCase(ctx, client, c)
				submitted.Add(1)
				counts[o].Add(1)
				if err != nil && cfg.Verbose {
					logger.Get().Warn(ctx, "case failed", logger.String("id", c.ID), logger.Error(err))
				}
			}
		}()
	}

feed:
	for _, c := range cases {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- c:
		}
	}
	close(jobs)
	wg.Wait()

	stats.Submitted = int(submitted.Load())
	stats.Succeeded = int(counts[outcomeSucceeded].Load())
	stats.Rejected = int(counts[outcomeRejected].Load())
	stats.Mismatched = int(counts[outcomeMismatched].Load())
	stats.Failed = int(counts[outcomeFailed].Load())
}

// submitCase posts one case and checks the answer.
func submitCase(ctx context.Context, client *HTTPClient, c Case) (outcome, error) {
	resp, err := client.PostJSON(ctx, "/estimate", c.ID, c.Request)
	if err != nil {
		return outcomeFailed, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return outcomeFailed, err
	}
	if got := resp.Header.Get(api.RequestIDHeader); got != c.ID {
		return outcomeMismatched, fmt.Errorf("request id %q echoed as %q", c.ID, got)
	}

	switch {
	case !c.Valid && resp.StatusCode == http.StatusBadRequest:
		return outcomeRejected, nil
	case !c.Valid:
		return outcomeMismatched, fmt.Errorf("invalid case answered %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return outcomeFailed, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var res service.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return outcomeFailed, fmt.Errorf("decode result: %w", err)
	}
	return verifyResult(c, &res)
}

// verifyResult compares the service answer with the local expectation.
func verifyResult(c Case, res *service.Result) (outcome, error) {
	switch {
	case res.Formatted.Total != c.WantTotal:
		return outcomeMismatched, fmt.Errorf("total %s, want %s", res.Formatted.Total, c.WantTotal)
	case string(res.Ranking.Weakest.Discipline) != c.WantWeakest:
		return outcomeMismatched, fmt.Errorf("weakest %s, want %s", res.Ranking.Weakest.Discipline, c.WantWeakest)
	case res.Plan.TotalAllocation() != 100:
		return outcomeMismatched, fmt.Errorf("allocation sums to %d", res.Plan.TotalAllocation())
	}
	return outcomeSucceeded, nil
}
