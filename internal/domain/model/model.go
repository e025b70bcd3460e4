// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Discipline identifies one leg of a triathlon.
type Discipline string

// Race disciplines in race order.
const (
	Swim Discipline = "swim"
	Bike Discipline = "bike"
	Run  Discipline = "run"
)

// Disciplines lists every discipline in race order.
func Disciplines() []Discipline {
	return []Discipline{Swim, Bike, Run}
}

// Label returns the human readable discipline name.
func (d Discipline) Label() string {
	switch d {
	case Swim:
		return "Swim"
	case Bike:
		return "Bike"
	case Run:
		return "Run"
	default:
		return string(d)
	}
}

// Valid reports whether d is one of the three race disciplines.
func (d Discipline) Valid() bool {
	return d == Swim || d == Bike || d == Run
}

// Tier is a qualitative performance bucket. Tiers are totally ordered:
// Poor < Average < Good < Excellent.
type Tier int

// Performance tiers, worst first.
const (
	Poor Tier = iota
	Average
	Good
	Excellent
)

var tierNames = [...]string{"poor", "average", "good", "excellent"}

var tierLabels = [...]string{"Needs improvement", "Average", "Good", "Excellent"}

// Tiers lists every tier from worst to best.
func Tiers() []Tier {
	return []Tier{Poor, Average, Good, Excellent}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t >= Poor && t <= Excellent
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Label returns the display text for the tier.
func (t Tier) Label() string {
	if !t.Valid() {
		return "Unknown"
	}
	return tierLabels[t]
}

// MarshalText encodes the tier as its lowercase name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText decodes a lowercase tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range tierNames {
		if name == s {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", s)
}

// Evaluation is the per-discipline snapshot produced once per calculation.
type Evaluation struct {
	Discipline Discipline `json:"discipline"`
	Pace       float64    `json:"pace"`    // min/100m, km/h or min/km
	Time       float64    `json:"minutes"` // elapsed minutes
	Tier       Tier       `json:"tier"`
}

// Ranking orders the three disciplines from weakest to strongest.
type Ranking struct {
	Weakest       Evaluation `json:"weakest"`
	SecondWeakest Evaluation `json:"second_weakest"`
	Strongest     Evaluation `json:"strongest"`
}

// Ordered returns the ranking as a slice, weakest first.
func (r Ranking) Ordered() []Evaluation {
	return []Evaluation{r.Weakest, r.SecondWeakest, r.Strongest}
}
