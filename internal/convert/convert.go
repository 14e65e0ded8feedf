package convert

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ConversionError reports a value that has no representation in the
// requested kind.
type ConversionError struct {
	Value any
	To    Kind
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("not a valid %s: %v", noun(e.To), e.Value)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

func noun(k Kind) string {
	switch k {
	case KindInt, KindUint:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	default:
		return "value"
	}
}

// textual representation of boolean values
var textualBool = map[string]bool{
	"yes":   true,
	"on":    true,
	"true":  true,
	"1":     true,
	"no":    false,
	"off":   false,
	"false": false,
	"0":     false,
}

// ToBool accepts booleans, the integers 0 and 1, and the words yes, no, on,
// off, true and false in any case.
func ToBool(v any) (bool, error) {
	rv := reflect.ValueOf(v)

	switch Of(v) {
	case KindBool:
		return rv.Bool(), nil
	case KindInt:
		if n := rv.Int(); n == 0 || n == 1 {
			return n == 1, nil
		}
	case KindUint:
		if n := rv.Uint(); n == 0 || n == 1 {
			return n == 1, nil
		}
	case KindString:
		if b, ok := textualBool[strings.ToLower(strings.TrimSpace(rv.String()))]; ok {
			return b, nil
		}
	}

	return false, &ConversionError{Value: v, To: KindBool}
}

// ToInt accepts integers, floats without a fractional part and decimal text.
func ToInt(v any) (int64, error) {
	rv := reflect.ValueOf(v)

	switch Of(v) {
	case KindInt:
		return rv.Int(), nil
	case KindUint:
		if n := rv.Uint(); n <= math.MaxInt64 {
			return int64(n), nil
		}
	case KindFloat:
		f := rv.Float()
		if f == math.Trunc(f) && Within(f, -1<<53, 1<<53) {
			return int64(f), nil
		}
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		if err != nil {
			return 0, &ConversionError{Value: v, To: KindInt, Cause: err}
		}

		return n, nil
	}

	return 0, &ConversionError{Value: v, To: KindInt}
}

// ToFloat accepts any number and decimal text.
func ToFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)

	switch Of(v) {
	case KindInt:
		return float64(rv.Int()), nil
	case KindUint:
		return float64(rv.Uint()), nil
	case KindFloat:
		return rv.Float(), nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, &ConversionError{Value: v, To: KindFloat, Cause: err}
		}

		return f, nil
	}

	return 0, &ConversionError{Value: v, To: KindFloat}
}

// ToDuration accepts durations, integer nanoseconds, float seconds and text
// such as "2h45m".
func ToDuration(v any) (time.Duration, error) {
	rv := reflect.ValueOf(v)

	switch Of(v) {
	case KindDuration:
		return time.Duration(rv.Int()), nil
	case KindInt:
		return time.Duration(rv.Int()), nil
	case KindUint:
		if n := rv.Uint(); n <= math.MaxInt64 {
			return time.Duration(n), nil
		}
	case KindFloat:
		return time.Duration(rv.Float() * float64(time.Second)), nil
	case KindString:
		d, err := time.ParseDuration(strings.TrimSpace(rv.String()))
		if err != nil {
			return 0, &ConversionError{Value: v, To: KindDuration, Cause: err}
		}

		return d, nil
	}

	return 0, &ConversionError{Value: v, To: KindDuration}
}

// ToTime accepts times, integer Unix seconds and text in the given layout.
// An empty layout means time.RFC3339Nano.
func ToTime(v any, layout string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339Nano
	}

	rv := reflect.ValueOf(v)

	switch Of(v) {
	case KindTime:
		return v.(time.Time), nil
	case KindInt:
		return time.Unix(rv.Int(), 0).UTC(), nil
	case KindUint:
		if n := rv.Uint(); n <= math.MaxInt64 {
			return time.Unix(int64(n), 0).UTC(), nil
		}
	case KindString:
		t, err := time.Parse(layout, strings.TrimSpace(rv.String()))
		if err != nil {
			return time.Time{}, &ConversionError{Value: v, To: KindTime, Cause: err}
		}

		return t, nil
	}

	return time.Time{}, &ConversionError{Value: v, To: KindTime}
}

// IsEmpty reports whether v counts as missing: nil, false, zero numbers,
// the strings "" and "0", and empty collections.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.String:
		return rv.Len() == 0 || rv.String() == "0"
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Truthy is the negation of IsEmpty.
func Truthy(v any) bool {
	return !IsEmpty(v)
}
