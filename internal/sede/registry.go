package sede

import (
	"strings"
	"unicode"

	sedeerrors "go-shiftplan/internal/sede/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Registry is the configured, ordered list of sedes.
type Registry struct {
	names []string
	index map[string]string
}

// Fold reduces a sede name to its matching key: case folded, diacritics
// removed, surrounding space trimmed. "AMAGA" and "amagá" share a key.
// Transformers are stateful, so a fresh chain is built per call.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// Same reports whether a and b name the same sede.
func Same(a, b string) bool {
	return Fold(a) == Fold(b)
}

func NewRegistry(names []string) *Registry {
	r := &Registry{index: make(map[string]string, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := Fold(n)
		if _, dup := r.index[key]; dup {
			continue
		}
		r.index[key] = n
		r.names = append(r.names, n)
	}
	return r
}

func (r *Registry) All() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Resolve returns the canonical spelling of name, ignoring case and accents.
func (r *Registry) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", sedeerrors.ErrSedeRequired
	}
	if canonical, ok := r.index[Fold(name)]; ok {
		return canonical, nil
	}
	return "", sedeerrors.ErrUnknownSede
}
