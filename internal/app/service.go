// Package service runs the finish-time calculation pipeline behind the HTTP
// API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/tripace/internal/domain/analysis"
	"github.com/okian/tripace/internal/domain/classify"
	"github.com/okian/tripace/internal/domain/estimate"
	"github.com/okian/tripace/internal/domain/model"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/internal/domain/plan"
	"github.com/okian/tripace/internal/domain/race"
	"github.com/okian/tripace/pkg/logger"
	"github.com/okian/tripace/pkg/metrics"
)

// Request is one calculation input. Exactly one of Split and Decimal must be
// set. An empty Category selects the calculator's default.
type Request struct {
	Category string             `json:"category"`
	Split    *pace.SplitInput   `json:"split,omitempty"`
	Decimal  *pace.DecimalInput `json:"decimal,omitempty"`
}

// Formatted holds the display strings of the estimated times.
type Formatted struct {
	Total string `json:"total"` // HH:MM:SS
	Swim  string `json:"swim"`  // MM:SS
	Bike  string `json:"bike"`
	Run   string `json:"run"`
}

// Result is everything produced by one calculation.
type Result struct {
	ID          string                      `json:"id"`
	Category    race.Category               `json:"category"`
	Name        string                      `json:"name"`
	Distances   race.Distances              `json:"distances"`
	Paces       pace.Paces                  `json:"paces"`
	PaceDisplay map[model.Discipline]string `json:"pace_display"`
	Times       estimate.Times              `json:"times"`
	Formatted   Formatted                   `json:"formatted"`
	Evaluations []model.Evaluation          `json:"evaluations"`
	Ranking     model.Ranking               `json:"ranking"`
	Breakdown   []analysis.Share            `json:"breakdown"`
	Plan        plan.Plan                   `json:"plan"`
}

// Calculator validates input and runs estimation, classification, weakness
// analysis and plan generation. It holds no per-request state and is safe
// for concurrent use.
type Calculator struct {
	defaultCategory race.Category
	newID           func() string
	now             func() time.Time
	startedAt       time.Time

	calculations       atomic.Int64
	validationFailures atomic.Int64
	computationErrors  atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithLogger sets a custom logger for the calculator.
func WithLogger(l logger.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultCategory sets the category used when a request leaves it
// empty. Unknown values are ignored.
func WithDefaultCategory(category string) Option {
	return func(c *Calculator) {
		if parsed, err := race.Parse(category); err == nil {
			c.defaultCategory = parsed
		}
	}
}

// WithIDGenerator replaces the calculation id source.
func WithIDGenerator(gen func() string) Option {
	return func(c *Calculator) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// New constructs a Calculator. Without WithLogger the global logger is used.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		defaultCategory: race.Olympic,
		newID:           uuid.NewString,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get()
	}
	c.startedAt = c.now()
	return c
}

// DefaultCategory returns the category used for empty requests.
func (c *Calculator) DefaultCategory() race.Category {
	return c.defaultCategory
}

// Categories lists the race catalog.
func (c *Calculator) Categories() []race.Entry {
	return race.Entries()
}

// Calculate runs the full pipeline. Validation problems come back as
// pace.ValidationErrors listing every failing field; failures after
// validation match estimate.ErrComputation.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, paces, err := c.validate(req)
	if err != nil {
		c.validationFailures.Add(1)
		var verrs pace.ValidationErrors
		if errors.As(err, &verrs) {
			for _, f := range verrs.Fields() {
				metrics.RecordValidationFailure(f)
			}
		}
		c.logger.Warn(ctx, "calculation input rejected",
			logger.String("category", req.Category),
			logger.Error(err),
		)
		return nil, err
	}

	res, err := c.compute(entry, paces)
	if err != nil {
		c.computationErrors.Add(1)
		metrics.RecordComputationError()
		c.logger.Error(ctx, "calculation failed",
			logger.String("category", string(entry.Category)),
			logger.Error(err),
		)
		return nil, err
	}

	c.calculations.Add(1)
	c.record(ctx, res)
	c.logger.Debug(ctx, "calculation completed",
		logger.String("id", res.ID),
		logger.String("category", string(res.Category)),
		logger.String("total", res.Formatted.Total),
		logger.String("weakest", string(res.Ranking.Weakest.Discipline)),
	)
	return res, nil
}

// validate resolves the category and normalizes the paces, collecting every
// failing field.
func (c *Calculator) validate(req Request) (race.Entry, pace.Paces, error) {
	var errs pace.ValidationErrors

	category := c.defaultCategory
	if strings.TrimSpace(req.Category) != "" {
		parsed, err := race.Parse(req.Category)
		if err != nil {
			errs = append(errs, &pace.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", req.Category)})
		}
		category = parsed
	}

	var (
		paces pace.Paces
		err   error
	)
	switch {
	case req.Split != nil && req.Decimal != nil:
		errs = append(errs, &pace.ValidationError{Field: "input", Reason: "provide either split or decimal, not both"})
	case req.Split != nil:
		paces, err = req.Split.Normalize()
	case req.Decimal != nil:
		paces, err = req.Decimal.Normalize()
	default:
		errs = append(errs, &pace.ValidationError{Field: "input", Reason: "one of split or decimal is required"})
	}
	var verrs pace.ValidationErrors
	if errors.As(err, &verrs) {
		errs = append(errs, verrs...)
	}

	if len(errs) > 0 {
		return race.Entry{}, pace.Paces{}, errs
	}

	entry, err := race.Lookup(category)
	if err != nil {
		return race.Entry{}, pace.Paces{}, pace.ValidationErrors{{Field: "category", Reason: err.Error()}}
	}
	return entry, paces, nil
}

func (c *Calculator) compute(entry race.Entry, paces pace.Paces) (*Result, error) {
	times, err := estimate.Estimate(entry.Distances, paces)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", entry.Category, err)
	}

	var evals [3]model.Evaluation
	for i, d := range model.Disciplines() {
		tier, err := classify.Classify(d, paces.Value(d))
		if err != nil {
			return nil, fmt.Errorf("classify %s: %w", d, &estimate.ComputationError{Reason: err.Error()})
		}
		evals[i] = model.Evaluation{
			Discipline: d,
			Pace:       paces.Value(d),
			Time:       times.Of(d),
			Tier:       tier,
		}
	}

	ranking := analysis.Analyze(evals)

	return &Result{
		ID:          c.newID(),
		Category:    entry.Category,
		Name:        entry.Name,
		Distances:   entry.Distances,
		Paces:       paces,
		PaceDisplay: paces.Displays(),
		Times:       times,
		Formatted: Formatted{
			Total: estimate.FormatTime(times.Total, true),
			Swim:  estimate.FormatTime(times.Swim, false),
			Bike:  estimate.FormatTime(times.Bike, false),
			Run:   estimate.FormatTime(times.Run, false),
		},
		Evaluations: evals[:],
		Ranking:     ranking,
		Breakdown:   analysis.Breakdown(times),
		Plan:        plan.Generate(ranking),
	}, nil
}

func (c *Calculator) record(ctx context.Context, res *Result) {
	metrics.RecordCalculation(string(res.Category))
	for _, e := range res.Evaluations {
		metrics.RecordTier(string(e.Discipline), e.Tier.String())
	}
	if err := metrics.ObserveFinishTime(string(res.Category), res.Times.Total); err != nil {
		c.logger.Debug(ctx, "finish time not observed", logger.Error(err))
	}
}

// GetStats returns calculator counters for monitoring.
func (c *Calculator) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"calculations":       c.calculations.Load(),
		"validationFailures": c.validationFailures.Load(),
		"computationErrors":  c.computationErrors.Load(),
		"defaultCategory":    string(c.defaultCategory),
		"uptimeSeconds":      int64(c.now().Sub(c.startedAt).Seconds()),
	}
}
