package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bnkr/simpliform/field"
	"github.com/bnkr/simpliform/internal/suggest"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report YAML names rather than Go names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks the structure of a definition: required values, unique
// field names and known field kinds. All problems are reported together.
func Validate(def *Definition) error {
	if def == nil {
		return errors.New("definition is nil")
	}

	var errs []error

	err := validate.Struct(def)

	var failed validator.ValidationErrors
	if errors.As(err, &failed) {
		for _, fe := range failed {
			errs = append(errs, fmt.Errorf("%s: failed rule %s", path(fe.Namespace()), fe.Tag()))
		}
	} else if err != nil {
		errs = append(errs, err)
	}

	seen := map[string]struct{}{}
	kinds := field.Kinds()

	for i, fd := range def.Fields {
		if _, ok := seen[fd.Name]; ok && fd.Name != "" {
			errs = append(errs, fmt.Errorf("fields[%d].name: duplicate field %q", i, fd.Name))
		}

		seen[fd.Name] = struct{}{}

		if fd.Kind != "" && !slices.Contains(kinds, strings.ToLower(fd.Kind)) {
			msg := fmt.Sprintf("fields[%d].kind: unknown kind %q", i, fd.Kind)
			if hints := suggest.Closest(fd.Kind, kinds, 3); len(hints) > 0 {
				msg += " (did you mean " + strings.Join(hints, ", ") + "?)"
			}

			errs = append(errs, errors.New(msg))
		}
	}

	return errors.Join(errs...)
}

// path drops the root type from a validator namespace.
func path(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
