package scoring_test

import (
	"testing"

	"github.com/okian/tandem/internal/domain/schedule"
	scoring "github.com/okian/tandem/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScorerSubjects(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.New()

		Convey("When a request matches by substring", func() {
			result := scorer.Subjects([]string{"Mathematics"}, []string{"math"})

			Convey("Then the full subject weight is awarded", func() {
				So(result.Score, ShouldEqual, 30)
				So(result.Matched, ShouldResemble, []string{"math"})
			})
		})

		Convey("When containment runs the other way", func() {
			result := scorer.Subjects([]string{"Math"}, []string{"Mathematics"})
			So(result.Score, ShouldEqual, 30)
			So(result.Matched, ShouldResemble, []string{"Mathematics"})
		})

		Convey("When only part of the request is covered", func() {
			result := scorer.Subjects([]string{"Physique"}, []string{"Physique", "Chimie", "Anglais"})
			So(result.Score, ShouldEqual, 10)
			So(result.Matched, ShouldResemble, []string{"Physique"})
		})

		Convey("When the request repeats a subject with different casing", func() {
			result := scorer.Subjects([]string{"Physique"}, []string{"Physique", "physique"})

			Convey("Then the duplicate counts once in the denominator", func() {
				So(result.Score, ShouldEqual, 30)
				So(result.Matched, ShouldResemble, []string{"Physique"})
			})
		})

		Convey("When a requested subject matches several offered subjects", func() {
			result := scorer.Subjects([]string{"Math", "Mathematics"}, []string{"math"})

			Convey("Then it still counts at most once", func() {
				So(result.Score, ShouldEqual, 30)
				So(result.Matched, ShouldResemble, []string{"math"})
			})
		})

		Convey("When the requested-subject set is empty", func() {
			result := scorer.Subjects([]string{"Mathematics"}, nil)

			Convey("Then the score is zero with no matches and no error", func() {
				So(result.Score, ShouldEqual, 0)
				So(len(result.Matched), ShouldEqual, 0)
			})
		})

		Convey("When nothing matches", func() {
			result := scorer.Subjects([]string{"Histoire"}, []string{"Chimie"})
			So(result.Score, ShouldEqual, 0)
			So(len(result.Matched), ShouldEqual, 0)
		})
	})
}

func TestScorerLevel(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.New()

		Convey("When some offered level equals the seeker's level", func() {
			result := scorer.Level([]string{"Collège", "Lycée"}, "Lycée")
			So(result.Score, ShouldEqual, 20)
			So(result.Match, ShouldBeTrue)
		})

		Convey("When the match differs only in case", func() {
			result := scorer.Level([]string{"lycée"}, "LYCÉE")
			So(result.Score, ShouldEqual, 20)
			So(result.Match, ShouldBeTrue)
		})

		Convey("When no offered level matches exactly", func() {
			result := scorer.Level([]string{"Primaire"}, "Lycée")
			So(result.Score, ShouldEqual, 0)
			So(result.Match, ShouldBeFalse)
		})

		Convey("When an adjacent level is offered", func() {
			Convey("Then no partial credit is given", func() {
				result := scorer.Level([]string{"Collège"}, "Lycée")
				So(result.Score, ShouldEqual, 0)
			})
		})
	})
}

func TestScorerAvailability(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.New()
		mustSlots := func(ws ...schedule.Window) []schedule.Slot {
			slots, err := schedule.ParseWindows(ws)
			So(err, ShouldBeNil)
			return slots
		}

		Convey("When one hour overlaps on Monday", func() {
			provider := mustSlots(schedule.Window{Day: "monday", Start: "14:00", End: "16:00"})
			seeker := mustSlots(schedule.Window{Day: "monday", Start: "15:00", End: "17:00"})

			result := scorer.Availability(provider, seeker)

			Convey("Then the hour earns ten points", func() {
				So(result.Score, ShouldEqual, 10)
				So(result.TotalMinutes, ShouldEqual, 60)
			})

			Convey("And the common slot is clamped to the intersection", func() {
				So(len(result.CommonSlots), ShouldEqual, 1)
				So(result.CommonSlots[0].Day, ShouldEqual, "Monday")
				So(result.CommonSlots[0].Start, ShouldEqual, "15:00")
				So(result.CommonSlots[0].End, ShouldEqual, "16:00")
				So(result.CommonSlots[0].DurationMinutes, ShouldEqual, 60)
			})
		})

		Convey("When total overlap exceeds four hours", func() {
			provider := mustSlots(schedule.Window{Day: "saturday", Start: "08:00", End: "20:00"})
			seeker := mustSlots(schedule.Window{Day: "saturday", Start: "09:00", End: "15:00"})

			result := scorer.Availability(provider, seeker)

			Convey("Then the score is capped at the availability weight", func() {
				So(result.Score, ShouldEqual, 40)
				So(result.TotalMinutes, ShouldEqual, 360)
			})
		})

		Convey("When a provider slot spans two adjacent seeker slots", func() {
			provider := mustSlots(schedule.Window{Day: "monday", Start: "10:00", End: "12:00"})
			seeker := mustSlots(
				schedule.Window{Day: "monday", Start: "10:00", End: "11:00"},
				schedule.Window{Day: "monday", Start: "11:00", End: "12:00"},
			)

			result := scorer.Availability(provider, seeker)

			Convey("Then each pairing contributes its own common slot", func() {
				So(len(result.CommonSlots), ShouldEqual, 2)
				So(result.TotalMinutes, ShouldEqual, 120)
				So(result.Score, ShouldEqual, 20)
			})
		})

		Convey("When schedules never intersect", func() {
			provider := mustSlots(schedule.Window{Day: "monday", Start: "08:00", End: "10:00"})
			seeker := mustSlots(schedule.Window{Day: "tuesday", Start: "08:00", End: "10:00"})

			result := scorer.Availability(provider, seeker)
			So(result.Score, ShouldEqual, 0)
			So(result.TotalMinutes, ShouldEqual, 0)
			So(len(result.CommonSlots), ShouldEqual, 0)
		})

		Convey("When either schedule is empty", func() {
			result := scorer.Availability(nil, mustSlots(schedule.Window{Day: "monday", Start: "08:00", End: "10:00"}))
			So(result.Score, ShouldEqual, 0)
			So(len(result.CommonSlots), ShouldEqual, 0)
		})

		Convey("When a partial hour overlaps", func() {
			provider := mustSlots(schedule.Window{Day: "friday", Start: "14:00", End: "14:30"})
			seeker := mustSlots(schedule.Window{Day: "friday", Start: "14:00", End: "16:00"})

			result := scorer.Availability(provider, seeker)

			Convey("Then the score is proportional to the minutes", func() {
				So(result.Score, ShouldEqual, 5)
				So(result.TotalMinutes, ShouldEqual, 30)
			})
		})
	})
}

func TestScorerBonus(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.New()

		Convey("When the rate exactly meets the budget", func() {
			result := scorer.Bonus(0, 4, 20, 20)

			Convey("Then the price term is zero and the price matches", func() {
				So(result.Score, ShouldEqual, 0)
				So(result.PriceMatch, ShouldBeTrue)
			})
		})

		Convey("When the rate exceeds the budget", func() {
			result := scorer.Bonus(9, 4, 30, 20)

			Convey("Then the flat penalty applies", func() {
				// experience 3, rating 0, price -2
				So(result.Score, ShouldEqual, 1)
				So(result.PriceMatch, ShouldBeFalse)
			})
		})

		Convey("When the provider is free", func() {
			result := scorer.Bonus(0, 4, 0, 20)

			Convey("Then the price term approaches its maximum", func() {
				So(result.Score, ShouldEqual, 3)
			})
		})

		Convey("When the budget is zero", func() {
			Convey("And the rate is positive, the provider is too expensive", func() {
				result := scorer.Bonus(6, 4, 10, 0)
				// experience 2, rating 0, price -2
				So(result.Score, ShouldEqual, 0)
				So(result.PriceMatch, ShouldBeFalse)
			})

			Convey("And the rate is also zero, the price fit is perfect", func() {
				result := scorer.Bonus(0, 4, 0, 0)
				So(result.Score, ShouldEqual, 3)
				So(result.PriceMatch, ShouldBeTrue)
			})
		})

		Convey("When experience exceeds nine years", func() {
			result := scorer.Bonus(30, 4, 20, 20)

			Convey("Then the experience term is capped", func() {
				So(result.Score, ShouldEqual, 3)
			})
		})

		Convey("When the rating falls below the baseline", func() {
			result := scorer.Bonus(9, 3.5, 20, 20)

			Convey("Then the rating term penalizes the bonus", func() {
				// experience 3, rating -4, price 0, clamped at 0
				So(result.Score, ShouldEqual, 0)
			})
		})

		Convey("When every factor is ideal", func() {
			result := scorer.Bonus(30, 5, 0, 20)

			Convey("Then the sum is clamped to the bonus weight", func() {
				// experience 3, rating 4 (capped from 8), price 3 => 10
				So(result.Score, ShouldEqual, 10)
			})
		})

		Convey("For any input the score stays within its bound", func() {
			inputs := [][4]float64{
				{0, 0, 0, 0},
				{100, 5, 0, 100},
				{0, 0, 1000, 1},
				{3, 4.2, 15, 30},
			}
			for _, in := range inputs {
				result := scorer.Bonus(in[0], in[1], in[2], in[3])
				So(result.Score, ShouldBeGreaterThanOrEqualTo, 0)
				So(result.Score, ShouldBeLessThanOrEqualTo, 10)
			}
		})
	})
}

func TestWithWeights(t *testing.T) {
	Convey("Given a scorer with custom weights", t, func() {
		scorer := scoring.New(scoring.WithWeights(scoring.Weights{
			Subject:             50,
			Level:               10,
			Availability:        30,
			AvailabilityPerHour: 15,
			Bonus:               10,
		}))

		Convey("Then the subject weight scales the ratio", func() {
			result := scorer.Subjects([]string{"Math"}, []string{"Math"})
			So(result.Score, ShouldEqual, 50)
		})

		Convey("And the level weight replaces the default", func() {
			result := scorer.Level([]string{"Lycée"}, "Lycée")
			So(result.Score, ShouldEqual, 10)
		})

		Convey("And the availability cap follows the new weight", func() {
			slots, err := schedule.ParseWindows([]schedule.Window{
				{Day: "monday", Start: "08:00", End: "20:00"},
			})
			So(err, ShouldBeNil)
			result := scorer.Availability(slots, slots)
			So(result.Score, ShouldEqual, 30)
		})
	})
}
