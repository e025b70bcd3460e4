package pace

import (
	"fmt"
	"math"
	"strconv"

	"github.com/okian/tripace/internal/domain/model"
)

// Display renders a discipline's pace the way athletes read it:
// "1:45/100m" for swim, "4:50/km" for run and "32.5 km/h" for bike.
func Display(d model.Discipline, value float64) string {
	switch d {
	case model.Swim:
		return clock(value) + "/100m"
	case model.Run:
		return clock(value) + "/km"
	case model.Bike:
		return strconv.FormatFloat(value, 'f', -1, 64) + " km/h"
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}

// Displays renders all three paces keyed by discipline.
func (p Paces) Displays() map[model.Discipline]string {
	return map[model.Discipline]string{
		model.Swim: Display(model.Swim, p.SwimMinPer100m),
		model.Bike: Display(model.Bike, p.BikeKmh),
		model.Run:  Display(model.Run, p.RunMinPerKm),
	}
}

// Value returns the pace for d.
func (p Paces) Value(d model.Discipline) float64 {
	switch d {
	case model.Swim:
		return p.SwimMinPer100m
	case model.Bike:
		return p.BikeKmh
	case model.Run:
		return p.RunMinPerKm
	default:
		return 0
	}
}

// clock formats decimal minutes as M:SS, rounding to the nearest second.
func clock(minutes float64) string {
	if !finite(minutes) || minutes < 0 {
		minutes = 0
	}
	whole := math.Floor(minutes)
	secs := math.Round((minutes - whole) * secondsPerMinute)
	if secs >= secondsPerMinute {
		whole++
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", int(whole), int(secs))
}
