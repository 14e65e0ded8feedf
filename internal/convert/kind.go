package convert

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value means the kind is not recognised

	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindTime
	KindDuration

	// KindTotal is the number of kinds defined, including the zero value.
	KindTotal = int(iota)
)

func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindUint, KindFloat:
		return true
	}
}

func (k Kind) IsInteger() bool {
	return k == KindInt || k == KindUint
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// Of returns the kind of v. Named types are classified by their underlying
// kind, except time.Duration and time.Time.
func Of(v any) Kind {
	if v == nil {
		return 0
	}

	rtype := reflect.TypeOf(v)
	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
