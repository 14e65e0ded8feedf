package messages

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_Empty(t *testing.T) {
	m := New()

	assert.True(t, m.IsValid())
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.ToFlatList())
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Fields())
}

func TestMessages_TextStored(t *testing.T) {
	m := New()
	m.Add("field", "plain ole text")

	assert.False(t, m.IsValid())
	assert.False(t, m.IsEmpty())
	assert.Equal(t, map[string][]string{"field": {"plain ole text"}}, m.ToFlatList())
}

func TestMessages_MultipleStoredInOrder(t *testing.T) {
	m := New()
	m.Add("field", "plain ole text")
	m.Add("other", "elsewhere")
	m.Add("field", "more ole text")
	m.Add("field", "plain ole text")

	assert.Equal(t, map[string][]string{
		"field": {"plain ole text", "more ole text", "plain ole text"},
		"other": {"elsewhere"},
	}, m.ToFlatList())
	assert.Equal(t, []string{"field", "other"}, m.Fields())
	assert.Equal(t, 4, m.Len())
}

func TestMessages_ErrorStored(t *testing.T) {
	m := New()
	err := errors.New("plain ole text")
	m.Add("field", err)

	assert.False(t, m.IsValid())
	assert.Equal(t, map[string][]string{"field": {"plain ole text"}}, m.ToFlatList())

	got := m.Get("field").Messages()
	require.Len(t, got, 1)
	assert.Same(t, err, got[0])
}

func TestMessages_LongErrorTruncated(t *testing.T) {
	m := New()
	m.Add("field", errors.New(strings.Repeat("x", MaxFlatLength+50)))

	fl := m.ToFlatList()
	require.Len(t, fl["field"], 1)
	assert.Len(t, fl["field"][0], MaxFlatLength)
}

func TestMessages_TruncationKeepsRunesWhole(t *testing.T) {
	m := New()
	m.Add("field", errors.New(strings.Repeat("x", MaxFlatLength-1)+"é and more"))

	fl := m.ToFlatList()
	require.Len(t, fl["field"], 1)
	assert.True(t, utf8.ValidString(fl["field"][0]))
	assert.Equal(t, strings.Repeat("x", MaxFlatLength-1), fl["field"][0])
}

func TestMessages_StructuredPayloadRendered(t *testing.T) {
	type detail struct {
		Code string
		Min  int
	}

	m := New()
	m.Add("field", detail{Code: "too_small", Min: 3})

	fl := m.ToFlatList()
	require.Len(t, fl["field"], 1)
	assert.Contains(t, fl["field"][0], "too_small")
	assert.Contains(t, fl["field"][0], "3")
}

func TestMessages_GetUnknownFieldIsValid(t *testing.T) {
	m := New()
	m.Add("field", "bad")

	fm := m.Get("missing")
	require.NotNil(t, fm)
	assert.True(t, fm.IsValid())
	assert.Equal(t, "missing", fm.Field())
	assert.Empty(t, fm.Messages())

	assert.False(t, m.Get("field").IsValid())
}

func TestFieldMessages_MessagesIsCopy(t *testing.T) {
	m := New()
	m.Add("field", "one")

	got := m.Get("field").Messages()
	got[0] = "changed"

	assert.Equal(t, []any{"one"}, m.Get("field").Messages())
}
