package schedule_test

import (
	"errors"
	"testing"

	schedule "github.com/okian/tandem/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func TestToMinutes(t *testing.T) {
	Convey("Given wall-clock strings", t, func() {
		Convey("When parsing well-formed times", func() {
			tests := map[string]int{
				"00:00": 0,
				"09:30": 570,
				"14:00": 840,
				"23:59": 1439,
				"8:05":  485,
			}
			for input, want := range tests {
				got, err := schedule.ToMinutes(input)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("When parsing malformed times", func() {
			for _, input := range []string{"", "14", "14:00:00", "24:00", "12:60", "ab:cd", "1400", "-1:30", "14:0x"} {
				_, err := schedule.ToMinutes(input)
				So(err, ShouldNotBeNil)

				var parseErr *schedule.ParseError
				So(errors.As(err, &parseErr), ShouldBeTrue)
			}
		})
	})
}

func TestParseWeekday(t *testing.T) {
	Convey("Given weekday labels", t, func() {
		Convey("When the label is known", func() {
			day, err := schedule.ParseWeekday("Monday")
			So(err, ShouldBeNil)
			So(day, ShouldEqual, schedule.Monday)

			day, err = schedule.ParseWeekday("sunday")
			So(err, ShouldBeNil)
			So(day, ShouldEqual, schedule.Sunday)
		})

		Convey("When the label is unknown", func() {
			_, err := schedule.ParseWeekday("someday")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNewSlot(t *testing.T) {
	Convey("Given slot construction inputs", t, func() {
		Convey("When the interval is well-formed", func() {
			slot, err := schedule.NewSlot("monday", "14:00", "16:00")
			So(err, ShouldBeNil)
			So(slot.Day, ShouldEqual, schedule.Monday)
			So(slot.StartMinute, ShouldEqual, 840)
			So(slot.EndMinute, ShouldEqual, 960)
			So(slot.Duration(), ShouldEqual, 120)
		})

		Convey("When start does not precede end", func() {
			_, err := schedule.NewSlot("monday", "16:00", "14:00")
			So(err, ShouldNotBeNil)

			_, err = schedule.NewSlot("monday", "14:00", "14:00")
			So(err, ShouldNotBeNil)
		})

		Convey("When a clock string is malformed", func() {
			_, err := schedule.NewSlot("monday", "25:00", "26:00")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOverlapMinutes(t *testing.T) {
	Convey("Given pairs of slots", t, func() {
		mustSlot := func(day, start, end string) schedule.Slot {
			slot, err := schedule.NewSlot(day, start, end)
			So(err, ShouldBeNil)
			return slot
		}

		Convey("When slots overlap on the same day", func() {
			a := mustSlot("monday", "14:00", "16:00")
			b := mustSlot("monday", "15:00", "17:00")

			Convey("Then the overlap is the intersection duration", func() {
				So(schedule.OverlapMinutes(a, b), ShouldEqual, 60)
				So(schedule.Overlaps(a, b), ShouldBeTrue)
			})

			Convey("And the overlap is symmetric", func() {
				So(schedule.OverlapMinutes(a, b), ShouldEqual, schedule.OverlapMinutes(b, a))
			})
		})

		Convey("When slots are on different days", func() {
			a := mustSlot("monday", "14:00", "16:00")
			b := mustSlot("tuesday", "14:00", "16:00")
			So(schedule.OverlapMinutes(a, b), ShouldEqual, 0)
			So(schedule.Overlaps(a, b), ShouldBeFalse)
		})

		Convey("When slots are disjoint on the same day", func() {
			a := mustSlot("monday", "08:00", "10:00")
			b := mustSlot("monday", "10:00", "12:00")

			Convey("Then touching endpoints do not overlap", func() {
				So(schedule.OverlapMinutes(a, b), ShouldEqual, 0)
				So(schedule.Overlaps(a, b), ShouldBeFalse)
			})
		})

		Convey("When one slot contains the other", func() {
			outer := mustSlot("friday", "08:00", "20:00")
			inner := mustSlot("friday", "12:00", "13:30")
			So(schedule.OverlapMinutes(outer, inner), ShouldEqual, 90)
			So(schedule.OverlapMinutes(inner, outer), ShouldEqual, 90)
		})
	})
}

func TestParseWindows(t *testing.T) {
	Convey("Given raw availability windows", t, func() {
		Convey("When every window is well-formed", func() {
			slots, err := schedule.ParseWindows([]schedule.Window{
				{Day: "monday", Start: "09:00", End: "11:00"},
				{Day: "wednesday", Start: "14:00", End: "15:30"},
			})
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 2)
			So(slots[0].Day, ShouldEqual, schedule.Monday)
			So(slots[1].Duration(), ShouldEqual, 90)
		})

		Convey("When a window is malformed", func() {
			_, err := schedule.ParseWindows([]schedule.Window{
				{Day: "monday", Start: "09:00", End: "11:00"},
				{Day: "monday", Start: "24:30", End: "25:00"},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("When the window list is empty", func() {
			slots, err := schedule.ParseWindows(nil)
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 0)
		})
	})
}

func TestFormatMinutes(t *testing.T) {
	Convey("Given minute offsets", t, func() {
		So(schedule.FormatMinutes(0), ShouldEqual, "00:00")
		So(schedule.FormatMinutes(570), ShouldEqual, "09:30")
		So(schedule.FormatMinutes(960), ShouldEqual, "16:00")
		So(schedule.FormatMinutes(1439), ShouldEqual, "23:59")
	})
}
