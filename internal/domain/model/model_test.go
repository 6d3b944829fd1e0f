package model_test

import (
	"errors"
	"testing"

	model "github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func validSeeker() model.Seeker {
	return model.Seeker{
		ID:                "seeker-1",
		DisplayName:       "Emma",
		RequestedSubjects: []string{"Mathématiques"},
		Level:             "Lycée",
		Budget:            25,
		Availability: []schedule.Window{
			{Day: "monday", Start: "14:00", End: "16:00"},
		},
		Urgency: model.UrgencyHigh,
	}
}

func validProvider() model.Provider {
	return model.Provider{
		ID:              "provider-1",
		DisplayName:     "Lucas",
		Subjects:        []string{"Mathématiques", "Physique"},
		Levels:          []string{"Lycée", "Collège"},
		ExperienceYears: 5,
		Rating:          4.5,
		HourlyRate:      20,
		Availability: []schedule.Window{
			{Day: "monday", Start: "15:00", End: "18:00"},
		},
	}
}

func TestSeekerValidate(t *testing.T) {
	Convey("Given a seeker record", t, func() {
		Convey("When every field is well-formed", func() {
			So(validSeeker().Validate(), ShouldBeNil)
		})

		Convey("When degenerate but valid fields are present", func() {
			Convey("An empty requested-subjects set is accepted", func() {
				s := validSeeker()
				s.RequestedSubjects = nil
				So(s.Validate(), ShouldBeNil)
			})

			Convey("A zero budget is accepted", func() {
				s := validSeeker()
				s.Budget = 0
				So(s.Validate(), ShouldBeNil)
			})

			Convey("An empty schedule is accepted", func() {
				s := validSeeker()
				s.Availability = nil
				So(s.Validate(), ShouldBeNil)
			})
		})

		Convey("When a field violates its constraint", func() {
			cases := map[string]func(*model.Seeker){
				"missing id":       func(s *model.Seeker) { s.ID = " " },
				"missing name":     func(s *model.Seeker) { s.DisplayName = "" },
				"negative budget":  func(s *model.Seeker) { s.Budget = -1 },
				"unknown urgency":  func(s *model.Seeker) { s.Urgency = "urgent" },
				"bad clock string": func(s *model.Seeker) { s.Availability[0].Start = "25:00" },
			}
			for name, mutate := range cases {
				s := validSeeker()
				mutate(&s)
				err := s.Validate()
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
				_ = name
			}
		})
	})
}

func TestProviderValidate(t *testing.T) {
	Convey("Given a provider record", t, func() {
		Convey("When every field is well-formed", func() {
			So(validProvider().Validate(), ShouldBeNil)
		})

		Convey("When the rating sits on a bound", func() {
			p := validProvider()
			p.Rating = 0
			So(p.Validate(), ShouldBeNil)
			p.Rating = 5
			So(p.Validate(), ShouldBeNil)
		})

		Convey("When a field violates its constraint", func() {
			cases := map[string]func(*model.Provider){
				"missing id":          func(p *model.Provider) { p.ID = "" },
				"missing name":        func(p *model.Provider) { p.DisplayName = "  " },
				"negative experience": func(p *model.Provider) { p.ExperienceYears = -2 },
				"rating above bound":  func(p *model.Provider) { p.Rating = 5.1 },
				"rating below bound":  func(p *model.Provider) { p.Rating = -0.1 },
				"negative rate":       func(p *model.Provider) { p.HourlyRate = -5 },
				"bad clock string":    func(p *model.Provider) { p.Availability[0].End = "12:99" },
			}
			for name, mutate := range cases {
				p := validProvider()
				mutate(&p)
				err := p.Validate()
				So(err, ShouldNotBeNil)
				So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
				_ = name
			}
		})
	})
}

func TestUrgencyValid(t *testing.T) {
	Convey("Given urgency values", t, func() {
		So(model.UrgencyHigh.Valid(), ShouldBeTrue)
		So(model.UrgencyMedium.Valid(), ShouldBeTrue)
		So(model.UrgencyLow.Valid(), ShouldBeTrue)
		So(model.Urgency("").Valid(), ShouldBeFalse)
		So(model.Urgency("critical").Valid(), ShouldBeFalse)
	})
}
