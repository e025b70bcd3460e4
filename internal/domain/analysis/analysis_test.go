package analysis_test

import (
	"testing"

	"github.com/okian/tripace/internal/domain/analysis"
	"github.com/okian/tripace/internal/domain/estimate"
	"github.com/okian/tripace/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func eval(d model.Discipline, tier model.Tier, minutes float64) model.Evaluation {
	return model.Evaluation{Discipline: d, Tier: tier, Time: minutes}
}

func TestAnalyze(t *testing.T) {
	Convey("Given evaluations in different tiers", t, func() {
		evals := [3]model.Evaluation{
			eval(model.Swim, model.Good, 30),
			eval(model.Bike, model.Poor, 80),
			eval(model.Run, model.Excellent, 50),
		}

		Convey("When analyzing", func() {
			r := analysis.Analyze(evals)

			Convey("Then tier should decide the order", func() {
				So(r.Weakest.Discipline, ShouldEqual, model.Bike)
				So(r.SecondWeakest.Discipline, ShouldEqual, model.Swim)
				So(r.Strongest.Discipline, ShouldEqual, model.Run)
			})

			Convey("And the input should be left untouched", func() {
				So(evals[0].Discipline, ShouldEqual, model.Swim)
			})
		})
	})

	Convey("Given a sprint athlete excellent in every discipline", t, func() {
		evals := [3]model.Evaluation{
			eval(model.Swim, model.Excellent, 10.5),
			eval(model.Bike, model.Excellent, 30),
			eval(model.Run, model.Excellent, 18),
		}

		Convey("When analyzing", func() {
			r := analysis.Analyze(evals)

			Convey("Then the longest leg should be the single weakest", func() {
				So(r.Weakest.Discipline, ShouldEqual, model.Bike)
				So(r.SecondWeakest.Discipline, ShouldEqual, model.Run)
				So(r.Strongest.Discipline, ShouldEqual, model.Swim)
			})
		})
	})

	Convey("Given evaluations tied on tier and time", t, func() {
		evals := [3]model.Evaluation{
			eval(model.Swim, model.Average, 40),
			eval(model.Bike, model.Average, 40),
			eval(model.Run, model.Average, 40),
		}

		Convey("Then input order should break the tie", func() {
			r := analysis.Analyze(evals)
			So(r.Weakest.Discipline, ShouldEqual, model.Swim)
			So(r.SecondWeakest.Discipline, ShouldEqual, model.Bike)
			So(r.Strongest.Discipline, ShouldEqual, model.Run)
		})
	})

	Convey("Given every combination of tiers and a few times", t, func() {
		times := []float64{20, 45, 45, 90}

		Convey("Then the ranking should be an ordered permutation of the input", func() {
			for _, a := range model.Tiers() {
				for _, b := range model.Tiers() {
					for _, c := range model.Tiers() {
						for i, ta := range times {
							tb := times[(i+1)%len(times)]
							tc := times[(i+2)%len(times)]
							evals := [3]model.Evaluation{
								eval(model.Swim, a, ta),
								eval(model.Bike, b, tb),
								eval(model.Run, c, tc),
							}
							ordered := analysis.Analyze(evals).Ordered()

							seen := map[model.Discipline]bool{}
							for _, e := range ordered {
								seen[e.Discipline] = true
							}
							So(seen, ShouldHaveLength, 3)

							for k := 0; k < 2; k++ {
								lo, hi := ordered[k], ordered[k+1]
								So(lo.Tier, ShouldBeLessThanOrEqualTo, hi.Tier)
								if lo.Tier == hi.Tier {
									So(lo.Time, ShouldBeGreaterThanOrEqualTo, hi.Time)
								}
							}
						}
					}
				}
			}
		})
	})
}

func TestBreakdown(t *testing.T) {
	Convey("Given the olympic scenario times", t, func() {
		shares := analysis.Breakdown(estimate.Times{Swim: 30, Bike: 80, Run: 50, Total: 160})

		Convey("Then shares should be listed in race order", func() {
			So(shares, ShouldHaveLength, 3)
			So(shares[0].Discipline, ShouldEqual, model.Swim)
			So(shares[1].Discipline, ShouldEqual, model.Bike)
			So(shares[2].Discipline, ShouldEqual, model.Run)
		})

		Convey("Then percentages should sum to 100", func() {
			So(shares[0].Percent+shares[1].Percent+shares[2].Percent, ShouldAlmostEqual, 100, 1e-9)
			So(shares[1].Percent, ShouldEqual, 50)
		})

		Convey("Then balance scores should be the complement of the share", func() {
			So(shares[1].Balance, ShouldEqual, 50)
			So(shares[0].Balance, ShouldAlmostEqual, 81.25, 1e-9)
			So(shares[0].Minutes, ShouldEqual, 30)
		})
	})

	Convey("Given a leg dominating the race", t, func() {
		shares := analysis.Breakdown(estimate.Times{Swim: 1, Bike: 98, Run: 1, Total: 100})

		Convey("Then its balance score should floor at 10", func() {
			So(shares[1].Balance, ShouldEqual, 10)
		})
	})

	Convey("Given zero times", t, func() {
		shares := analysis.Breakdown(estimate.Times{})

		Convey("Then it should not divide by zero", func() {
			for _, s := range shares {
				So(s.Percent, ShouldEqual, 0)
				So(s.Balance, ShouldEqual, 100)
			}
		})
	})
}
