package form

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/bnkr/simpliform/internal/suggest"
)

// Field is a reusable bundle of processing steps, e.g. a boolean coercion
// or a required-ness check. AddField enrolls its steps for one field name.
type Field interface {
	Processing() []Processing
}

// AddField declares a field and enrolls the processing steps of fld,
// triggered by the field name. Declared fields are evaluated even when
// the input does not contain them.
//
// Options are applied first by naming convention: the option "required"
// calls fld.SetRequired(value), "min_length" calls SetMinLength.
func (f *Form) AddField(name string, fld Field, options map[string]any) error {
	if fld == nil {
		return &ConfigurationError{What: "field", Reason: fmt.Sprintf("field %q is nil", name)}
	}

	if err := f.checkMutable("field"); err != nil {
		return err
	}

	if err := Configure(fld, options); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}

	trigger := FieldName(name)
	for _, p := range fld.Processing() {
		f.base.processing = append(f.base.processing, entry{trigger: trigger, processing: p})
	}

	if !slices.Contains(f.fields, name) {
		f.fields = append(f.fields, name)
	}

	f.cycle = nil

	return nil
}

// Configure calls the setter of target matching each option name. Options
// are applied in name order. Values are assigned as they are or converted
// between numeric kinds; anything else is a *ConfigurationError, as is an
// option without a setter or a setter returning a non-nil error.
func Configure(target any, options map[string]any) error {
	if len(options) == 0 {
		return nil
	}

	rv := reflect.ValueOf(target)
	keys := make([]string, 0, len(options))

	for key := range options {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		method := rv.MethodByName(setterName(key))
		if !method.IsValid() || method.Type().NumIn() != 1 {
			return &ConfigurationError{
				What:        "option",
				Value:       key,
				Reason:      "no such option: " + key,
				Suggestions: suggest.Closest(key, OptionNames(target), 3),
			}
		}

		value := options[key]

		arg, ok := optionValue(value, method.Type().In(0))
		if !ok {
			return &ConfigurationError{
				What:   "option " + key,
				Value:  value,
				Reason: fmt.Sprintf("cannot use %T as %s", value, method.Type().In(0)),
			}
		}

		for _, out := range method.Call([]reflect.Value{arg}) {
			if err, ok := out.Interface().(error); ok && err != nil {
				return &ConfigurationError{What: "option " + key, Value: value, Reason: "rejected", Cause: err}
			}
		}
	}

	return nil
}

// OptionNames lists the options target accepts, derived from its
// single-argument Set* methods.
func OptionNames(target any) []string {
	t := reflect.TypeOf(target)
	if t == nil {
		return nil
	}

	var names []string

	for i := range t.NumMethod() {
		m := t.Method(i)
		// In includes the receiver.
		if !strings.HasPrefix(m.Name, "Set") || len(m.Name) == 3 || m.Type.NumIn() != 2 {
			continue
		}

		rest := []rune(m.Name[3:])
		rest[0] = unicode.ToLower(rest[0])
		names = append(names, string(rest))
	}

	return names
}

// setterName maps "required" to "SetRequired" and "min_length" to
// "SetMinLength".
func setterName(option string) string {
	var b strings.Builder

	b.WriteString("Set")

	upper := true
	for _, r := range option {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}

		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

func optionValue(value any, to reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch to.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func:
			return reflect.Zero(to), true
		default:
			return reflect.Value{}, false
		}
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(to) {
		return rv, true
	}

	if isNumeric(rv.Kind()) && isNumeric(to.Kind()) {
		return convertExact(rv, to)
	}

	return reflect.Value{}, false
}

// convertExact converts a number only when no precision, range or sign is
// lost: 3.0 fits an int setter, 2.9 and -1 (for a uint) do not.
func convertExact(rv reflect.Value, to reflect.Type) (reflect.Value, bool) {
	conv := rv.Convert(to)
	if isNegative(rv) != isNegative(conv) || !conv.Convert(rv.Type()).Equal(rv) {
		return reflect.Value{}, false
	}

	return conv, true
}

func isNegative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
