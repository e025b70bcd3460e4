package estimate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/tripace/internal/domain/estimate"
	"github.com/okian/tripace/internal/domain/model"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/internal/domain/race"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimate(t *testing.T) {
	Convey("Given an olympic race", t, func() {
		entry, err := race.Lookup(race.Olympic)
		So(err, ShouldBeNil)

		Convey("When the athlete swims 2:00/100m, rides 30 km/h and runs 5:00/km", func() {
			times, err := estimate.Estimate(entry.Distances, pace.Paces{SwimMinPer100m: 2, BikeKmh: 30, RunMinPerKm: 5})

			Convey("Then each leg and the total should match the formulas", func() {
				So(err, ShouldBeNil)
				So(times.Swim, ShouldAlmostEqual, 30, 1e-9)
				So(times.Bike, ShouldAlmostEqual, 80, 1e-9)
				So(times.Run, ShouldAlmostEqual, 50, 1e-9)
				So(times.Total, ShouldAlmostEqual, 160, 1e-9)
			})

			Convey("And the total should format as 02:40:00", func() {
				So(estimate.FormatTime(times.Total, true), ShouldEqual, "02:40:00")
			})

			Convey("And Of should select a leg", func() {
				So(times.Of(model.Run), ShouldEqual, times.Run)
				So(times.Of(model.Discipline("row")), ShouldEqual, 0)
			})
		})
	})

	Convey("Given every category and a spread of valid paces", t, func() {
		paces := []pace.Paces{
			{SwimMinPer100m: 1.25, BikeKmh: 38, RunMinPerKm: 3.75},
			{SwimMinPer100m: 2.3333, BikeKmh: 27.4, RunMinPerKm: 5.9},
			{SwimMinPer100m: 10.98, BikeKmh: 5, RunMinPerKm: 15.98},
		}

		Convey("Then the total should equal the sum of the legs exactly", func() {
			for _, e := range race.Entries() {
				for _, p := range paces {
					times, err := estimate.Estimate(e.Distances, p)
					So(err, ShouldBeNil)
					So(times.Total, ShouldEqual, times.Swim+times.Bike+times.Run)
					So(times.Swim, ShouldBeGreaterThan, 0)
					So(times.Bike, ShouldBeGreaterThan, 0)
					So(times.Run, ShouldBeGreaterThan, 0)
				}
			}
		})
	})

	Convey("Given paces that skipped validation", t, func() {
		d := race.Distances{SwimKm: 1.5, BikeKm: 40, RunKm: 10}

		Convey("When any pace is non-positive or not finite", func() {
			bad := []pace.Paces{
				{SwimMinPer100m: 0, BikeKmh: 30, RunMinPerKm: 5},
				{SwimMinPer100m: 2, BikeKmh: -1, RunMinPerKm: 5},
				{SwimMinPer100m: 2, BikeKmh: 30, RunMinPerKm: math.NaN()},
			}

			Convey("Then it should fail with a ComputationError", func() {
				for _, p := range bad {
					times, err := estimate.Estimate(d, p)
					So(errors.Is(err, estimate.ErrComputation), ShouldBeTrue)
					var ce *estimate.ComputationError
					So(errors.As(err, &ce), ShouldBeTrue)
					So(times, ShouldResemble, estimate.Times{})
				}
			})
		})
	})
}
