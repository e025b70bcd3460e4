// Package plan turns a discipline ranking into training guidance: advice per
// discipline, a fixed time allocation and a weekly skeleton.
package plan

import (
	"fmt"
	"strings"

	"github.com/okian/tripace/internal/domain/model"
)

// Training time split, in percent. Fixed policy, independent of how far
// apart the tiers are.
const (
	WeakestAllocation       = 70
	SecondWeakestAllocation = 20
	StrongestAllocation     = 10

	highlightCount = 2
)

// Entry is the guidance for one discipline.
type Entry struct {
	Discipline      model.Discipline `json:"discipline"`
	Tier            model.Tier       `json:"tier"`
	Recommendations []string         `json:"recommendations"`
	Highlights      []string         `json:"highlights"`
	Allocation      int              `json:"allocation_percent"`
}

// Day is one slot of the weekly skeleton.
type Day struct {
	Day        int              `json:"day"` // 1-based, Monday first
	Weekday    string           `json:"weekday"`
	Activity   string           `json:"activity"`
	Discipline model.Discipline `json:"discipline,omitempty"`
	Focus      bool             `json:"focus"`
}

// Plan is the full training recommendation for one calculation.
type Plan struct {
	Weakest       Entry `json:"weakest"`
	SecondWeakest Entry `json:"second_weakest"`
	Strongest     Entry `json:"strongest"`
	// ShowSecondary is false when even the weakest discipline is excellent,
	// in which case second-weakest advice adds nothing.
	ShowSecondary bool  `json:"show_secondary"`
	Week          []Day `json:"week"`
}

// Entries returns the three entries weakest first.
func (p Plan) Entries() []Entry {
	return []Entry{p.Weakest, p.SecondWeakest, p.Strongest}
}

// TotalAllocation sums the allocation percentages.
func (p Plan) TotalAllocation() int {
	return p.Weakest.Allocation + p.SecondWeakest.Allocation + p.Strongest.Allocation
}

// Generate builds the plan for a ranking.
func Generate(r model.Ranking) Plan {
	return Plan{
		Weakest:       newEntry(r.Weakest, WeakestAllocation),
		SecondWeakest: newEntry(r.SecondWeakest, SecondWeakestAllocation),
		Strongest:     newEntry(r.Strongest, StrongestAllocation),
		ShowSecondary: r.Weakest.Tier != model.Excellent,
		Week:          Week(r.Weakest.Discipline),
	}
}

func newEntry(e model.Evaluation, allocation int) Entry {
	recs := Recommendations(e.Discipline, e.Tier)
	n := min(highlightCount, len(recs))
	return Entry{
		Discipline:      e.Discipline,
		Tier:            e.Tier,
		Recommendations: recs,
		Highlights:      append([]string(nil), recs[:n]...),
		Allocation:      allocation,
	}
}

var weekdays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Week returns the seven-day skeleton. Days 2 and 4 always train the weakest
// discipline, as a specific session and an intensity session; the other days
// follow a fixed rotation where only the discipline names change.
func Week(weakest model.Discipline) []Day {
	name := strings.ToLower(weakest.Label())
	others := otherDisciplines(weakest)

	activities := [len(weekdays)]Day{
		{Activity: "Rest or easy " + name, Discipline: weakest},
		{Activity: weakest.Label() + " specific training", Discipline: weakest, Focus: true},
		{Activity: fmt.Sprintf("%s and %s sessions", others[0].Label(), strings.ToLower(others[1].Label()))},
		{Activity: weakest.Label() + " intensity training", Discipline: weakest, Focus: true},
		{Activity: "Cross-training"},
		{Activity: "Long-distance " + name, Discipline: weakest},
		{Activity: "Recovery"},
	}

	week := make([]Day, len(activities))
	for i, d := range activities {
		d.Day = i + 1
		d.Weekday = weekdays[i]
		week[i] = d
	}
	return week
}

// otherDisciplines returns the two disciplines that are not d, in race order.
func otherDisciplines(d model.Discipline) []model.Discipline {
	out := make([]model.Discipline, 0, 2)
	for _, o := range model.Disciplines() {
		if o != d {
			out = append(out, o)
		}
	}
	return out
}
