package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts an "HH:MM" time of day into fractional hours.
func Parse(s string) (float64, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return float64(h) + float64(m)/60, nil
}

// Span returns max(0, end-start) in hours. Unparsable bounds yield 0.
func Span(start, end string) float64 {
	s, err := Parse(start)
	if err != nil {
		return 0
	}
	e, err := Parse(end)
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	return e - s
}

// Before reports whether a is strictly earlier than b. Both must parse.
func Before(a, b string) (bool, error) {
	x, err := Parse(a)
	if err != nil {
		return false, err
	}
	y, err := Parse(b)
	if err != nil {
		return false, err
	}
	return x < y, nil
}
