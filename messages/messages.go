package messages

import (
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// MaxFlatLength caps the rendered length of error payloads in ToFlatList.
const MaxFlatLength = 256

// Messages maps field names to the messages reported for them.
type Messages struct {
	fields map[string]*FieldMessages
	// order keeps fields in the order their first message arrived.
	order []string
}

// FieldMessages holds the messages for just one field.
type FieldMessages struct {
	field    string
	messages []any
}

// New creates an empty Messages.
func New() *Messages {
	return &Messages{
		fields: make(map[string]*FieldMessages),
	}
}

// Add records a message against a field.
func (m *Messages) Add(field string, message any) {
	fm, ok := m.fields[field]
	if !ok {
		fm = &FieldMessages{field: field}
		m.fields[field] = fm
		m.order = append(m.order, field)
	}

	fm.Add(message)
}

// Get returns the messages for a field. The result is never nil; a field
// with no messages yields an empty, valid FieldMessages.
func (m *Messages) Get(field string) *FieldMessages {
	if fm, ok := m.fields[field]; ok {
		return fm
	}

	return &FieldMessages{field: field}
}

// Fields returns the names of fields with at least one message, in the
// order they were first reported.
func (m *Messages) Fields() []string {
	return append([]string(nil), m.order...)
}

// Len returns the total number of messages across all fields.
func (m *Messages) Len() int {
	n := 0
	for _, fm := range m.fields {
		n += fm.Len()
	}

	return n
}

// IsEmpty returns true if no messages were reported.
func (m *Messages) IsEmpty() bool {
	return len(m.order) == 0
}

// IsValid returns true if no field has any message.
func (m *Messages) IsValid() bool {
	return m.IsEmpty()
}

// ToFlatList renders every message as a string, keyed by field name.
// Strings are kept as they are, errors are rendered with Error() and
// truncated to MaxFlatLength bytes on a rune boundary, anything else goes
// through spew.
func (m *Messages) ToFlatList() map[string][]string {
	list := make(map[string][]string, len(m.order))
	for _, field := range m.order {
		for _, message := range m.fields[field].messages {
			list[field] = append(list[field], render(message))
		}
	}

	return list
}

func render(message any) string {
	switch v := message.(type) {
	case string:
		return v
	case error:
		return truncate(v.Error())
	default:
		return spew.Sprint(v)
	}
}

// truncate cuts s to at most MaxFlatLength bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= MaxFlatLength {
		return s
	}

	cut := MaxFlatLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// Field returns the field name these messages belong to.
func (f *FieldMessages) Field() string {
	return f.field
}

// Messages returns a copy of the reported payloads in report order.
func (f *FieldMessages) Messages() []any {
	return append([]any(nil), f.messages...)
}

// Add appends a message.
func (f *FieldMessages) Add(message any) {
	f.messages = append(f.messages, message)
}

// Len returns the number of messages.
func (f *FieldMessages) Len() int {
	return len(f.messages)
}

// IsValid returns true if the field has no messages.
func (f *FieldMessages) IsValid() bool {
	return len(f.messages) == 0
}
