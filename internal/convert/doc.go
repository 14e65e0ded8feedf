// Package convert classifies runtime values and converts them between the
// representations the field catalog accepts.
//
// Input values arrive from decoded documents or from callers, so a number
// may be any Go numeric type or its text, a boolean may be "yes" or 1, a
// duration may be "2h45m" or integer nanoseconds, and a time may be
// RFC3339Nano text or integer Unix seconds.
package convert
