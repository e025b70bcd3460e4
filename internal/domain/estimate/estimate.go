// Package estimate converts validated paces and race distances into elapsed
// times, and renders those times as clock strings.
package estimate

import (
	"fmt"
	"math"

	"github.com/okian/tripace/internal/domain/model"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/internal/domain/race"
)

const (
	metresPerKm      = 1000
	swimSegmentM     = 100
	minutesPerHour   = 60
	secondsPerMinute = 60
)

// Times holds elapsed minutes per discipline and in total.
type Times struct {
	Swim  float64 `json:"swim"`
	Bike  float64 `json:"bike"`
	Run   float64 `json:"run"`
	Total float64 `json:"total"`
}

// Of returns the elapsed minutes for d.
func (t Times) Of(d model.Discipline) float64 {
	switch d {
	case model.Swim:
		return t.Swim
	case model.Bike:
		return t.Bike
	case model.Run:
		return t.Run
	default:
		return 0
	}
}

// Estimate computes per-discipline and total minutes for a race.
//
// Callers are expected to have validated p already; non-positive or
// non-finite values here are an invariant violation and yield a
// ComputationError.
func Estimate(d race.Distances, p pace.Paces) (Times, error) {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"swim pace", p.SwimMinPer100m},
		{"bike rate", p.BikeKmh},
		{"run pace", p.RunMinPerKm},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value <= 0 {
			return Times{}, &ComputationError{Reason: fmt.Sprintf("%s must be positive, got %v", c.name, c.value)}
		}
	}

	swim := (d.SwimKm * metresPerKm / swimSegmentM) * p.SwimMinPer100m
	bike := (d.BikeKm / p.BikeKmh) * minutesPerHour
	run := d.RunKm * p.RunMinPerKm

	return Times{
		Swim:  swim,
		Bike:  bike,
		Run:   run,
		Total: swim + bike + run,
	}, nil
}
