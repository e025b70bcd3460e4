package race_test

import (
	"errors"
	"testing"

	"github.com/okian/tripace/internal/domain/race"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Given the race catalog", t, func() {
		Convey("When looking up the olympic distance", func() {
			e, err := race.Lookup(race.Olympic)

			Convey("Then it should return the standard distances", func() {
				So(err, ShouldBeNil)
				So(e.Name, ShouldEqual, "Olympic")
				So(e.Distances, ShouldResemble, race.Distances{SwimKm: 1.5, BikeKm: 40, RunKm: 10})
			})
		})

		Convey("When looking up every category", func() {
			want := map[race.Category]race.Distances{
				race.Sprint:   {SwimKm: 0.75, BikeKm: 20, RunKm: 5},
				race.Olympic:  {SwimKm: 1.5, BikeKm: 40, RunKm: 10},
				race.HalfIron: {SwimKm: 1.9, BikeKm: 90, RunKm: 21.1},
				race.Iron:     {SwimKm: 3.8, BikeKm: 180, RunKm: 42.2},
			}

			Convey("Then all four should resolve", func() {
				for c, d := range want {
					e, err := race.Lookup(c)
					So(err, ShouldBeNil)
					So(e.Distances, ShouldResemble, d)
				}
			})
		})

		Convey("When looking up an unknown category", func() {
			_, err := race.Lookup("ultra")

			Convey("Then it should fail with ErrUnknownCategory", func() {
				So(errors.Is(err, race.ErrUnknownCategory), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "ultra")
			})
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given user supplied category keys", t, func() {
		Convey("When the key has odd case and whitespace", func() {
			c, err := race.Parse("  Half-Iron ")

			Convey("Then it should normalize to the category", func() {
				So(err, ShouldBeNil)
				So(c, ShouldEqual, race.HalfIron)
			})
		})

		Convey("When the key is empty", func() {
			_, err := race.Parse("")

			Convey("Then it should fail", func() {
				So(errors.Is(err, race.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})
}

func TestEntries(t *testing.T) {
	Convey("Given the catalog listing", t, func() {
		entries := race.Entries()

		Convey("Then it should have four categories shortest first", func() {
			So(entries, ShouldHaveLength, 4)
			So(entries[0].Category, ShouldEqual, race.Sprint)
			So(entries[3].Category, ShouldEqual, race.Iron)
		})

		Convey("And mutating the copy should not touch the catalog", func() {
			entries[0].Distances.SwimKm = 99
			e, err := race.Lookup(race.Sprint)
			So(err, ShouldBeNil)
			So(e.Distances.SwimKm, ShouldEqual, 0.75)
		})
	})
}
