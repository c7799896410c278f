package weekday

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Day is a lowercase English weekday name.
type Day string

const (
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

// All lists the days in time.Weekday order.
var All = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var aliases = map[string]Day{
	"domingo":   Sunday,
	"lunes":     Monday,
	"martes":    Tuesday,
	"miércoles": Wednesday,
	"miercoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sábado":    Saturday,
	"sabado":    Saturday,
}

var spanish = map[Day]string{
	Sunday:    "Domingo",
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
}

// Parse accepts English or Spanish names in any case.
func Parse(s string) (Day, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	d := Day(key)
	if d.Valid() {
		return d, nil
	}
	if d, ok := aliases[key]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

func (d Day) Valid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Spanish returns the display name used in reports.
func (d Day) Spanish() string {
	return spanish[d]
}

func FromTime(w time.Weekday) Day {
	return All[int(w)]
}

// On resolves the weekday of a calendar date. Out-of-range days roll over
// the way time.Date normalizes them.
func On(year, month, day int) Day {
	return FromTime(time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Weekday())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Set is a lookup view over a list of days.
type Set map[Day]struct{}

func NewSet(days []Day) Set {
	s := make(Set, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s Set) Has(d Day) bool {
	_, ok := s[d]
	return ok
}
