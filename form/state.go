package form

//go:generate go tool stringer -type=FieldState -output=fieldstate_string.go

// FieldState is the evaluation status of a field within one cycle.
type FieldState int

const (
	NotStarted FieldState = iota
	InProgress
	Done
	Invalid
	Skipped
)

// IsTerminal reports whether the state can no longer change in this cycle.
func (s FieldState) IsTerminal() bool {
	switch s {
	default:
		return false
	case Done, Invalid, Skipped:
		return true
	}
}
