// Package pace turns raw user input into validated per-discipline paces.
//
// Two input shapes are accepted: SplitInput carries swim and run paces as
// minute/second pairs, DecimalInput carries them as decimal minutes. Both
// produce the same Paces value.
package pace

import (
	"fmt"
	"math"
)

// Input bounds per field.
const (
	SwimMaxMinutes = 10
	RunMaxMinutes  = 15
	BikeMinKmh     = 5
	BikeMaxKmh     = 60

	secondsPerMinute = 60
)

// Paces are normalized, validated paces for the three disciplines.
type Paces struct {
	SwimMinPer100m float64 `json:"swim_min_per_100m"`
	BikeKmh        float64 `json:"bike_kmh"`
	RunMinPerKm    float64 `json:"run_min_per_km"`
}

// SplitInput is the five-field form: swim and run paces as minutes plus seconds.
type SplitInput struct {
	SwimMinutes float64 `json:"swim_minutes"`
	SwimSeconds float64 `json:"swim_seconds"`
	BikeKmh     float64 `json:"bike_kmh"`
	RunMinutes  float64 `json:"run_minutes"`
	RunSeconds  float64 `json:"run_seconds"`
}

// DecimalInput is the three-field form: swim and run paces as decimal minutes.
type DecimalInput struct {
	SwimPace float64 `json:"swim_pace"`
	BikeKmh  float64 `json:"bike_kmh"`
	RunPace  float64 `json:"run_pace"`
}

// DefaultSplitInput returns the values a fresh form starts with.
func DefaultSplitInput() SplitInput {
	return SplitInput{SwimMinutes: 2, SwimSeconds: 0, BikeKmh: 30, RunMinutes: 5, RunSeconds: 0}
}

// Normalize converts a minutes/seconds pair into decimal minutes.
func Normalize(minutes, seconds float64) (float64, error) {
	if errs := checkClock("", minutes, seconds, math.Inf(1)); len(errs) > 0 {
		return 0, errs[0]
	}
	return minutes + seconds/secondsPerMinute, nil
}

// ValidateRate checks a direct rate such as km/h against [minValue, maxValue].
func ValidateRate(value, minValue, maxValue float64) (float64, error) {
	if err := checkRate("rate", value, minValue, maxValue); err != nil {
		return 0, err
	}
	return value, nil
}

// Normalize validates every field and returns the decimal paces.
func (in SplitInput) Normalize() (Paces, error) {
	var errs ValidationErrors

	swim, swimErrs := normalizeLeg("swim", in.SwimMinutes, in.SwimSeconds, SwimMaxMinutes)
	errs = append(errs, swimErrs...)

	if err := checkRate("bike_kmh", in.BikeKmh, BikeMinKmh, BikeMaxKmh); err != nil {
		errs = append(errs, err)
	}

	run, runErrs := normalizeLeg("run", in.RunMinutes, in.RunSeconds, RunMaxMinutes)
	errs = append(errs, runErrs...)

	if err := errs.orNil(); err != nil {
		return Paces{}, err
	}
	return Paces{SwimMinPer100m: swim, BikeKmh: in.BikeKmh, RunMinPerKm: run}, nil
}

// Normalize validates every field and returns the paces unchanged.
func (in DecimalInput) Normalize() (Paces, error) {
	var errs ValidationErrors
	if err := checkDecimal("swim_pace", in.SwimPace, SwimMaxMinutes+1); err != nil {
		errs = append(errs, err)
	}
	if err := checkRate("bike_kmh", in.BikeKmh, BikeMinKmh, BikeMaxKmh); err != nil {
		errs = append(errs, err)
	}
	if err := checkDecimal("run_pace", in.RunPace, RunMaxMinutes+1); err != nil {
		errs = append(errs, err)
	}
	if err := errs.orNil(); err != nil {
		return Paces{}, err
	}
	return Paces{SwimMinPer100m: in.SwimPace, BikeKmh: in.BikeKmh, RunMinPerKm: in.RunPace}, nil
}

func normalizeLeg(leg string, minutes, seconds, maxMinutes float64) (float64, ValidationErrors) {
	if errs := checkClock(leg+"_", minutes, seconds, maxMinutes); len(errs) > 0 {
		return 0, errs
	}
	v := minutes + seconds/secondsPerMinute
	if v <= 0 {
		return 0, ValidationErrors{{Field: leg + "_pace", Reason: "must be greater than zero"}}
	}
	return v, nil
}

// checkClock validates a minutes/seconds pair; field names are prefixed.
func checkClock(prefix string, minutes, seconds, maxMinutes float64) ValidationErrors {
	var errs ValidationErrors
	switch {
	case !finite(minutes):
		errs = append(errs, &ValidationError{Field: prefix + "minutes", Reason: "must be a finite number"})
	case minutes < 0:
		errs = append(errs, &ValidationError{Field: prefix + "minutes", Reason: "must not be negative"})
	case minutes > maxMinutes:
		errs = append(errs, &ValidationError{Field: prefix + "minutes", Reason: fmt.Sprintf("must be at most %g", maxMinutes)})
	}
	switch {
	case !finite(seconds):
		errs = append(errs, &ValidationError{Field: prefix + "seconds", Reason: "must be a finite number"})
	case seconds < 0 || seconds >= secondsPerMinute:
		errs = append(errs, &ValidationError{Field: prefix + "seconds", Reason: "must be in [0, 60)"})
	}
	return errs
}

func checkRate(field string, value, minValue, maxValue float64) *ValidationError {
	switch {
	case !finite(value):
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	case value <= 0:
		return &ValidationError{Field: field, Reason: "must be greater than zero"}
	case value < minValue || value > maxValue:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be in [%g, %g]", minValue, maxValue)}
	}
	return nil
}

func checkDecimal(field string, value, limit float64) *ValidationError {
	switch {
	case !finite(value):
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	case value <= 0:
		return &ValidationError{Field: field, Reason: "must be greater than zero"}
	case value >= limit:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be below %g", limit)}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
