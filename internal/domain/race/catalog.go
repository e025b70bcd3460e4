// Package race holds the fixed table of triathlon race categories and their
// leg distances.
package race

import (
	"fmt"
	"strings"
)

// Category is a named race-distance configuration.
type Category string

// Supported race categories.
const (
	Sprint   Category = "sprint"
	Olympic  Category = "olympic"
	HalfIron Category = "half-iron"
	Iron     Category = "iron"
)

// Distances are the leg lengths of a race, in kilometres.
type Distances struct {
	SwimKm float64 `json:"swim_km"`
	BikeKm float64 `json:"bike_km"`
	RunKm  float64 `json:"run_km"`
}

// Entry describes one catalog row.
type Entry struct {
	Category  Category  `json:"category"`
	Name      string    `json:"name"`
	Distances Distances `json:"distances"`
}

// catalog is read-only after package init.
var catalog = []Entry{
	{Category: Sprint, Name: "Sprint", Distances: Distances{SwimKm: 0.75, BikeKm: 20, RunKm: 5}},
	{Category: Olympic, Name: "Olympic", Distances: Distances{SwimKm: 1.5, BikeKm: 40, RunKm: 10}},
	{Category: HalfIron, Name: "Half Ironman", Distances: Distances{SwimKm: 1.9, BikeKm: 90, RunKm: 21.1}},
	{Category: Iron, Name: "Ironman", Distances: Distances{SwimKm: 3.8, BikeKm: 180, RunKm: 42.2}},
}

// Lookup returns the catalog entry for c.
func Lookup(c Category) (Entry, error) {
	for _, e := range catalog {
		if e.Category == c {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
}

// Parse converts a user supplied key into a Category, ignoring case and
// surrounding whitespace.
func Parse(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(c); err != nil {
		return "", err
	}
	return c, nil
}

// Entries returns a copy of the catalog in ascending distance order.
func Entries() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}
