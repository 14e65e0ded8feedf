package field

import (
	"maps"
	"slices"
	"strings"

	"github.com/bnkr/simpliform/form"
	"github.com/bnkr/simpliform/internal/suggest"
)

var kinds = map[string]func() form.Field{
	"generic":  func() form.Field { return NewGeneric() },
	"text":     func() form.Field { return NewGeneric() },
	"boolean":  func() form.Field { return NewBoolean() },
	"integer":  func() form.Field { return NewInteger() },
	"float":    func() form.Field { return NewFloat() },
	"duration": func() form.Field { return NewDuration() },
	"time":     func() form.Field { return NewTime() },
}

// Kinds returns the names accepted by New, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(kinds))
}

// New creates a field of the named kind. The name is case-insensitive; an
// unknown name is a *form.ConfigurationError with suggestions.
func New(kind string) (form.Field, error) {
	mk, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, &form.ConfigurationError{
			What:        "field kind",
			Value:       kind,
			Reason:      "unknown kind: " + kind,
			Suggestions: suggest.Closest(kind, Kinds(), 3),
		}
	}

	return mk(), nil
}
