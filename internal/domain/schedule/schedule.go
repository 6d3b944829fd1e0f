// Package schedule provides pure time-interval arithmetic over weekly
// availability slots: clock-time parsing, same-day overlap detection, and
// overlap duration.
//
// Conventions:
// - Clock times are "HH:MM" wall-clock strings, 00:00 through 23:59.
// - Intervals are half-open minute ranges within a single weekday.
// - Malformed input is reported as *ParseError; valid-but-disjoint input is not an error.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Minute range constants.
const (
	minutesPerHour = 60
	maxHour        = 23
	maxMinute      = 59
)

// Weekday is an enumerated day label.
type Weekday string

// Enumerated weekdays.
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// weekdays maps lowercase day labels to their canonical form.
var weekdays = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// ParseWeekday canonicalizes a day label, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	if d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", &ParseError{Input: s, Reason: "unknown weekday"}
}

// Window is a raw availability entry as handed over by loaders: a day label
// plus a pair of "HH:MM" clock strings. It carries no validity guarantee;
// parse it into a Slot before computing with it.
type Window struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Slot is a validated availability interval: minutes since midnight on a
// single weekday, with StartMinute < EndMinute.
type Slot struct {
	Day         Weekday
	StartMinute int
	EndMinute   int
}

// Duration returns the slot length in minutes.
func (s Slot) Duration() int {
	return s.EndMinute - s.StartMinute
}

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
// Hours must be 00-23 and minutes 00-59; anything else is a *ParseError.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Input: clock, Reason: "expected HH:MM"}
	}
	hour, err := parseClockField(parts[0])
	if err != nil {
		return 0, &ParseError{Input: clock, Reason: "non-numeric hour"}
	}
	minute, err := parseClockField(parts[1])
	if err != nil {
		return 0, &ParseError{Input: clock, Reason: "non-numeric minute"}
	}
	if hour > maxHour {
		return 0, &ParseError{Input: clock, Reason: "hour out of range"}
	}
	if minute > maxMinute {
		return 0, &ParseError{Input: clock, Reason: "minute out of range"}
	}
	return hour*minutesPerHour + minute, nil
}

// parseClockField parses a 1-2 digit field. strconv.Atoi alone would also
// accept signs and whitespace-free variants like "+1", which HH:MM does not.
func parseClockField(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("field %q must be 1-2 digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("field %q is not numeric", s)
		}
	}
	return strconv.Atoi(s)
}

// NewSlot builds a validated Slot from a day label and two clock strings.
func NewSlot(day, start, end string) (Slot, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return Slot{}, err
	}
	startMin, err := ToMinutes(start)
	if err != nil {
		return Slot{}, err
	}
	endMin, err := ToMinutes(end)
	if err != nil {
		return Slot{}, err
	}
	if startMin >= endMin {
		return Slot{}, &ParseError{
			Input:  start + "-" + end,
			Reason: "start must be before end",
		}
	}
	return Slot{Day: d, StartMinute: startMin, EndMinute: endMin}, nil
}

// ParseWindow converts a raw Window into a validated Slot.
func ParseWindow(w Window) (Slot, error) {
	return NewSlot(w.Day, w.Start, w.End)
}

// ParseWindows converts a whole schedule, failing on the first bad window.
// Input order is preserved; overlapping or duplicate windows are kept as-is.
func ParseWindows(ws []Window) ([]Slot, error) {
	slots := make([]Slot, 0, len(ws))
	for _, w := range ws {
		s, err := ParseWindow(w)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// Overlaps reports whether two slots intersect. Slots on different days never
// overlap; same-day slots overlap iff their half-open intervals intersect.
func Overlaps(a, b Slot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// OverlapMinutes returns the intersection length of two slots in minutes.
// It is commutative and returns 0 for disjoint or cross-day pairs.
func OverlapMinutes(a, b Slot) int {
	if !Overlaps(a, b) {
		return 0
	}
	start := a.StartMinute
	if b.StartMinute > start {
		start = b.StartMinute
	}
	end := a.EndMinute
	if b.EndMinute < end {
		end = b.EndMinute
	}
	return end - start
}

// FormatMinutes renders minutes since midnight back to "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/minutesPerHour, m%minutesPerHour)
}
