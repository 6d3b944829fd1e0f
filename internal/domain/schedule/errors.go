package schedule

import "fmt"

// ParseError reports a malformed clock time, day label, or interval. It marks
// bad input data rather than a legitimate non-match, so callers should abort
// the affected computation instead of scoring zero.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}
