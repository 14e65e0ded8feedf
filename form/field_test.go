package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubField struct {
	required bool
	limit    float64
	label    string
	retries  uint
	extra    []Processing
}

func (s *stubField) SetRequired(v bool)     { s.required = v }
func (s *stubField) SetMaxLength(v float64) { s.limit = v }
func (s *stubField) SetRetries(v uint)      { s.retries = v }

func (s *stubField) SetLabel(v string) error {
	if v == "" {
		return errors.New("label must not be empty")
	}

	s.label = v

	return nil
}

func (s *stubField) Processing() []Processing {
	steps := []Processing{ProcessingFunc(func(c *Context) (any, error) {
		if s.required && c.Value() == nil {
			return nil, c.Fail("data missing or empty")
		}

		return c.Value(), nil
	})}

	return append(steps, s.extra...)
}

func TestAddField_EnrollsProcessingForName(t *testing.T) {
	fld := &stubField{extra: []Processing{ProcessingFunc(func(c *Context) (any, error) {
		return "seen", nil
	})}}

	f := New()
	require.NoError(t, f.AddField("whatever", fld, nil))
	f.SetInput(map[string]any{"whatever": "x", "other": "y"})

	out, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"whatever": "seen", "other": "y"}, out)
}

func TestAddField_FailureIsValidationMessage(t *testing.T) {
	fld := &stubField{extra: []Processing{ProcessingFunc(func(c *Context) (any, error) {
		return nil, c.Fail("some error")
	})}}

	f := New()
	require.NoError(t, f.AddField("whatever", fld, nil))
	f.SetInput(map[string]any{"whatever": "100"})

	msgs, err := f.Messages()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"whatever": {"some error"}}, msgs.ToFlatList())

	got := msgs.Get("whatever").Messages()
	require.Len(t, got, 1)

	var verr *ValidationError
	require.ErrorAs(t, got[0].(error), &verr)
	assert.Equal(t, "some error", verr.Message)
}

func TestAddField_DeclaredFieldEvaluatedWithoutInput(t *testing.T) {
	f := New()
	require.NoError(t, f.AddField("whatever", &stubField{}, map[string]any{"required": true}))

	valid, err := f.IsValid()
	require.NoError(t, err)
	assert.False(t, valid)

	out, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"whatever": nil}, out)

	f.SetInput(map[string]any{"whatever": "a"})
	valid, err = f.IsValid()
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestConfigure_AppliesOptionsByName(t *testing.T) {
	fld := &stubField{}

	err := Configure(fld, map[string]any{
		"required":   true,
		"max_length": 10, // int converted to float64
		"Label":      "Name",
	})
	require.NoError(t, err)

	assert.True(t, fld.required)
	assert.InDelta(t, 10.0, fld.limit, 1e-9)
	assert.Equal(t, "Name", fld.label)
}

func TestConfigure_UnknownOptionSuggests(t *testing.T) {
	err := Configure(&stubField{}, map[string]any{"requird": true})

	var config *ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Equal(t, []string{"required"}, config.Suggestions)
	assert.Contains(t, err.Error(), "no such option: requird")
	assert.Contains(t, err.Error(), "did you mean required?")
}

func TestConfigure_WrongValueType(t *testing.T) {
	err := Configure(&stubField{}, map[string]any{"required": "yes"})

	var config *ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Contains(t, err.Error(), "cannot use string as bool")
}

func TestConfigure_NumericConversionMustBeExact(t *testing.T) {
	fld := &stubField{}
	require.NoError(t, Configure(fld, map[string]any{"retries": 3.0}))
	assert.Equal(t, uint(3), fld.retries)

	tests := []struct {
		value any
		msg   string
	}{
		{2.5, "cannot use float64 as uint"},
		{-1, "cannot use int as uint"},
		{-1.0, "cannot use float64 as uint"},
	}

	for _, tt := range tests {
		err := Configure(&stubField{}, map[string]any{"retries": tt.value})

		var config *ConfigurationError
		require.ErrorAs(t, err, &config, "%#v", tt.value)
		assert.Contains(t, err.Error(), tt.msg)
	}
}

func TestConfigure_SetterError(t *testing.T) {
	err := Configure(&stubField{}, map[string]any{"label": ""})

	var config *ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Contains(t, err.Error(), "label must not be empty")
}

func TestAddField_OptionErrorNamesField(t *testing.T) {
	f := New()
	err := f.AddField("name", &stubField{}, map[string]any{"colour": "red"})

	var config *ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Contains(t, err.Error(), `field "name"`)

	err = f.AddField("name", nil, nil)
	require.ErrorAs(t, err, &config)
}

func TestOptionNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"required", "maxLength", "label", "retries"}, OptionNames(&stubField{}))
	assert.Nil(t, OptionNames(nil))
}

func TestSetterName(t *testing.T) {
	assert.Equal(t, "SetRequired", setterName("required"))
	assert.Equal(t, "SetMinLength", setterName("min_length"))
	assert.Equal(t, "SetMinLength", setterName("min-length"))
	assert.Equal(t, "SetMinLength", setterName("minLength"))
}
