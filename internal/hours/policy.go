package hours

import (
	"fmt"
	"strings"
)

// Policy decides how a monthly requirement is spread over the active days of
// a month.
type Policy string

const (
	// WeekdaysX4 divides the requirement by four occurrences of every active
	// weekday.
	WeekdaysX4 Policy = "weekdays_x4"
	// Fixed20 divides the requirement by a flat 20 working days.
	Fixed20 Policy = "fixed_20"

	DefaultPolicy = WeekdaysX4
)

const fixedWorkingDays = 20

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPolicy, nil
	case WeekdaysX4, Fixed20:
		return p, nil
	}
	return "", fmt.Errorf("unknown hours policy %q", s)
}

func (p Policy) divisor(activeWeekdays int) float64 {
	if p == Fixed20 {
		return fixedWorkingDays
	}
	return float64(max(1, activeWeekdays*4))
}
