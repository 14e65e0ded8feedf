package form

// Event identifies the field being evaluated. Triggers match against it to
// decide whether their processing applies.
type Event struct {
	field string
}

// NewEvent creates an event for the named field.
func NewEvent(field string) Event {
	return Event{field: field}
}

// Field returns the name of the field being evaluated.
func (e Event) Field() string {
	return e.field
}

// Trigger selects the fields a processing step or a disable rule applies to.
// Matches must be a pure predicate.
type Trigger interface {
	Matches(e Event) bool
}

// TriggerFunc adapts a predicate to the Trigger interface.
type TriggerFunc func(e Event) bool

func (f TriggerFunc) Matches(e Event) bool {
	return f(e)
}

type fieldNameTrigger string

func (t fieldNameTrigger) Matches(e Event) bool {
	return string(t) == e.field
}

// FieldName matches exactly the named field.
func FieldName(name string) Trigger {
	return fieldNameTrigger(name)
}

type anyTrigger struct{}

func (anyTrigger) Matches(Event) bool {
	return true
}

// Any matches every field.
func Any() Trigger {
	return anyTrigger{}
}

// ToTrigger normalizes a registration argument into a Trigger. It accepts a
// Trigger, a field name, a func(Event) bool or a func(string) bool matching
// on the field name.
func ToTrigger(v any) (Trigger, error) {
	switch t := v.(type) {
	case Trigger:
		return t, nil
	case string:
		return FieldName(t), nil
	case func(Event) bool:
		return TriggerFunc(t), nil
	case func(string) bool:
		return TriggerFunc(func(e Event) bool { return t(e.field) }), nil
	default:
		return nil, badType("trigger", v)
	}
}
