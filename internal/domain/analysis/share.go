package analysis

import (
	"math"

	"github.com/okian/tripace/internal/domain/estimate"
	"github.com/okian/tripace/internal/domain/model"
)

const (
	percent    = 100
	minBalance = 10
)

// Share describes one discipline's slice of the total race time.
type Share struct {
	Discipline model.Discipline `json:"discipline"`
	Minutes    int              `json:"minutes"`       // rounded, for charting
	Percent    float64          `json:"percent"`       // share of total time
	Balance    float64          `json:"balance_score"` // 100 - percent, floored at 10
}

// Breakdown splits the total time by discipline in race order. A zero total
// yields zero shares and a full balance score.
func Breakdown(t estimate.Times) []Share {
	out := make([]Share, 0, len(model.Disciplines()))
	for _, d := range model.Disciplines() {
		minutes := t.Of(d)
		var pct float64
		if t.Total > 0 {
			pct = minutes / t.Total * percent
		}
		out = append(out, Share{
			Discipline: d,
			Minutes:    int(math.Round(minutes)),
			Percent:    pct,
			Balance:    math.Max(minBalance, percent-pct),
		})
	}
	return out
}
