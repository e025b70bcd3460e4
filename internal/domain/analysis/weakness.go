// Package analysis ranks the three disciplines from weakest to strongest and
// summarizes how the race time is split between them.
package analysis

import (
	"sort"

	"github.com/okian/tripace/internal/domain/model"
)

// Analyze orders the evaluations weakest first. Lower tier is weaker; within
// a tier the discipline taking more minutes is weaker; remaining ties keep
// input order.
func Analyze(evals [3]model.Evaluation) model.Ranking {
	ordered := evals
	sort.SliceStable(ordered[:], func(i, j int) bool {
		return weaker(ordered[i], ordered[j])
	})
	return model.Ranking{
		Weakest:       ordered[0],
		SecondWeakest: ordered[1],
		Strongest:     ordered[2],
	}
}

// weaker reports whether a ranks strictly below b.
func weaker(a, b model.Evaluation) bool {
	if a.Tier != b.Tier {
		return a.Tier < b.Tier
	}
	return a.Time > b.Time
}
