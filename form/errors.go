package form

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports malformed registration input: a value of the
// wrong shape passed as a trigger, processing, validation or preparation,
// or an unknown field option.
type ConfigurationError struct {
	// What names the kind of value being registered, e.g. "trigger".
	What string
	// Value is the offending value, if any.
	Value any
	// Reason overrides the default "bad type" description.
	Reason string
	// Suggestions are close matches for an unknown name.
	Suggestions []string
	// Cause is an underlying error, e.g. an expression compile failure.
	Cause error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = fmt.Sprintf("bad type: %T", e.Value)
	}

	if e.What != "" {
		msg = e.What + ": " + msg
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return "configuration error: " + msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// badType builds the ConfigurationError for a value of the wrong shape.
func badType(what string, value any) *ConfigurationError {
	return &ConfigurationError{What: what, Value: value}
}

// CircularDependencyError reports a field that transitively depends on
// itself. Chain lists the fields from the outermost evaluation to the
// repeated one, so the repeated field appears at least twice.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return "circular dependency: " + strings.Join(e.Chain, " -> ")
}

// DependentFieldError reports that a field's processing read another field
// which is invalid or skipped. It is recorded as a message on the reading
// field.
type DependentFieldError struct {
	Chain []string
	State FieldState
}

// Field returns the name of the field that could not be used.
func (e *DependentFieldError) Field() string {
	if len(e.Chain) == 0 {
		return ""
	}

	return e.Chain[len(e.Chain)-1]
}

func (e *DependentFieldError) Error() string {
	stack := strings.Join(e.Chain, " -> ")
	if e.State == Skipped {
		return "cannot use skipped field: " + stack
	}

	return "dependent field is invalid: " + stack
}

// ValidationError is the "fail now" signal produced by Context.Fail. Its
// Message is the payload recorded against the field.
type ValidationError struct {
	Message any
}

func (e *ValidationError) Error() string {
	switch m := e.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

func (e *ValidationError) Unwrap() error {
	if err, ok := e.Message.(error); ok {
		return err
	}

	return nil
}

// IsFatal reports whether err is structural and must abort the evaluation
// cycle instead of being recorded as a message.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var circular *CircularDependencyError
	if errors.As(err, &circular) {
		return true
	}

	var config *ConfigurationError

	return errors.As(err, &config)
}
