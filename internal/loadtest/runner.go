package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/pkg/logger"
)

const (
	directoryPermission = 0750
	filePermission      = 0600
	percent             = 100
)

// Run executes a complete load test: health check, generation, concurrent
// submission and verification.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting estimator load test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("requests", cfg.NumRequests),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
	)

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)
	if err := checkServiceHealth(ctx, client); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	// Expected answers come from an in-process calculator. Its default
	// category is irrelevant since every case names one.
	calc := service.New(service.WithLogger(log.Named("expected")))
	cases, err := generateCases(ctx, cfg, calc, stats)
	if err != nil {
		return nil, fmt.Errorf("request generation failed: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := saveCases(cfg.OutputFile, cases); err != nil {
			log.Warn(ctx, "failed to save cases", logger.Error(err))
		}
	}

	submitCases(ctx, cfg, client, cases, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if n := stats.Problems(); n > 0 {
		return stats, fmt.Errorf("%w: %d of %d cases", ErrVerification, n, stats.Submitted)
	}
	return stats, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg == nil:
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	case cfg.BaseURL == "":
		return fmt.Errorf("%w: base url is required", ErrInvalidConfig)
	case cfg.NumRequests <= 0:
		return fmt.Errorf("%w: request count must be positive, got %d", ErrInvalidConfig, cfg.NumRequests)
	case cfg.Workers <= 0:
		return fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	case cfg.InvalidRatio < 0 || cfg.InvalidRatio > 1:
		return fmt.Errorf("%w: invalid ratio must be in [0, 1], got %v", ErrInvalidConfig, cfg.InvalidRatio)
	}
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	resp, err := client.Get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &health); err != nil || health.Status != "ok" {
		return fmt.Errorf("unexpected health body: %s", body)
	}
	return nil
}

// saveCases writes the generated cases as a JSON array.
func saveCases(filename string, cases []Case) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cases: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, requestsPerSecond float64
	if stats.Submitted > 0 {
		successRate = float64(stats.Succeeded+stats.Rejected) / float64(stats.Submitted) * percent
	}
	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("generated", stats.Generated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("succeeded", stats.Succeeded),
		logger.Int("rejected", stats.Rejected),
		logger.Int("mismatched", stats.Mismatched),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond),
	)
}
