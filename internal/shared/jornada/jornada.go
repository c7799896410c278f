package jornada

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the work-time category of a contract or a schedule assignment.
type Type string

const (
	FullTime Type = "full_time"
	PartTime Type = "part_time"
	Extra    Type = "extra"
)

var aliases = map[string]Type{
	"tiempo_completo": FullTime,
	"medio_tiempo":    PartTime,
	"fulltime":        FullTime,
	"parttime":        PartTime,
}

var labels = map[Type]string{
	FullTime: "Tiempo completo",
	PartTime: "Medio tiempo",
	Extra:    "Extra",
}

// Parse accepts canonical names, their Spanish aliases and dashed or spaced
// spellings.
func Parse(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	t := Type(key)
	if t.Valid() {
		return t, nil
	}
	if t, ok := aliases[key]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown jornada %q", s)
}

func (t Type) Valid() bool {
	switch t {
	case FullTime, PartTime, Extra:
		return true
	}
	return false
}

// Label returns the Spanish label printed on reports. Unknown values are
// reported as full time.
func (t Type) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return labels[FullTime]
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = ""
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
