package loadtest

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/internal/domain/race"
	"github.com/okian/tripace/pkg/logger"
)

// Generation ranges. Valid values stay inside the accepted bounds; invalid
// ones push a single field past them.
const (
	swimMinPace = 1.2
	swimMaxPace = 3.5
	bikeMinKmh  = 18.0
	bikeMaxKmh  = 42.0
	runMinPace  = 3.5
	runMaxPace  = 7.5

	secondsPerMinute = 60
)

// generateCases builds cfg.NumRequests cases and computes the expected
// answer of each valid one with calc.
func generateCases(ctx context.Context, cfg *Config, calc *service.Calculator, stats *Stats) ([]Case, error) {
	logger.Get().Info(ctx, "generating requests",
		logger.Int("count", cfg.NumRequests),
		logger.Float64("invalidRatio", cfg.InvalidRatio),
	)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	categories := race.Entries()

	cases := make([]Case, cfg.NumRequests)
	for i := range cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during generation: %w", err)
		}

		c := Case{
			ID:    uuid.NewString(),
			Valid: rng.Float64() >= cfg.InvalidRatio,
		}
		c.Request.Category = string(categories[rng.IntN(len(categories))].Category)

		swim := between(rng, swimMinPace, swimMaxPace)
		bike := between(rng, bikeMinKmh, bikeMaxKmh)
		run := between(rng, runMinPace, runMaxPace)
		if !c.Valid {
			switch rng.IntN(3) {
			case 0:
				swim = pace.SwimMaxMinutes + 1 + rng.Float64()
			case 1:
				bike = pace.BikeMaxKmh + 1 + rng.Float64()*10
			default:
				run = -run
			}
		}

		if rng.IntN(2) == 0 {
			c.Request.Split = splitOf(swim, bike, run)
		} else {
			c.Request.Decimal = &pace.DecimalInput{SwimPace: swim, BikeKmh: bike, RunPace: run}
		}

		if c.Valid {
			res, err := calc.Calculate(ctx, c.Request)
			if err != nil {
				return nil, fmt.Errorf("case %d should be valid: %w", i, err)
			}
			c.WantTotal = res.Formatted.Total
			c.WantWeakest = string(res.Ranking.Weakest.Discipline)
		}
		cases[i] = c
	}

	stats.Generated = len(cases)
	return cases, nil
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// splitOf expresses decimal paces as whole minutes and seconds. Seconds are
// truncated so the split form is exact.
func splitOf(swim, bike, run float64) *pace.SplitInput {
	swimMin, swimSec := clockParts(swim)
	runMin, runSec := clockParts(run)
	return &pace.SplitInput{
		SwimMinutes: swimMin,
		SwimSeconds: swimSec,
		BikeKmh:     bike,
		RunMinutes:  runMin,
		RunSeconds:  runSec,
	}
}

func clockParts(v float64) (float64, float64) {
	if v < 0 {
		// keep it invalid: negative minutes
		m, s := clockParts(-v)
		return -m, s
	}
	whole := float64(int(v))
	return whole, float64(int((v - whole) * secondsPerMinute))
}
