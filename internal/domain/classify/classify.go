// Package classify maps a discipline's pace to a performance tier using
// fixed per-discipline thresholds.
package classify

import (
	"fmt"

	"github.com/okian/tripace/internal/domain/model"
)

// Thresholds is one row of the standards table. For swim and run the value
// is decimal minutes per unit and lower is faster; for bike it is km/h and
// higher is faster.
type Thresholds struct {
	Excellent     float64 `json:"excellent"`
	Good          float64 `json:"good"`
	Average       float64 `json:"average"`
	LowerIsBetter bool    `json:"lower_is_better"`
}

// meets reports whether value reaches limit in the row's direction.
// Boundaries are inclusive.
func (t Thresholds) meets(value, limit float64) bool {
	if t.LowerIsBetter {
		return value <= limit
	}
	return value >= limit
}

var standards = map[model.Discipline]Thresholds{
	model.Swim: {Excellent: 1.5, Good: 2.0, Average: 2.5, LowerIsBetter: true},
	model.Bike: {Excellent: 35, Good: 30, Average: 25, LowerIsBetter: false},
	model.Run:  {Excellent: 4.0, Good: 5.0, Average: 6.0, LowerIsBetter: true},
}

// Standards returns the thresholds for d.
func Standards(d model.Discipline) (Thresholds, error) {
	t, ok := standards[d]
	if !ok {
		return Thresholds{}, fmt.Errorf("%w: %q", ErrUnknownDiscipline, string(d))
	}
	return t, nil
}

// Classify returns the tier for a pace value. Limits are checked best to
// worst and the first one met wins, so a value on a boundary gets the
// better tier.
func Classify(d model.Discipline, value float64) (model.Tier, error) {
	t, err := Standards(d)
	if err != nil {
		return model.Poor, err
	}
	switch {
	case t.meets(value, t.Excellent):
		return model.Excellent, nil
	case t.meets(value, t.Good):
		return model.Good, nil
	case t.meets(value, t.Average):
		return model.Average, nil
	default:
		return model.Poor, nil
	}
}
