package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnkr/simpliform/form"
)

func TestTrigger(t *testing.T) {
	tr, err := Trigger(`field startsWith "tmp_"`)
	require.NoError(t, err)

	assert.True(t, tr.Matches(form.NewEvent("tmp_a")))
	assert.False(t, tr.Matches(form.NewEvent("name")))
}

func TestTrigger_CompileErrors(t *testing.T) {
	for _, code := range []string{`field ==`, `field`, `other == "x"`} {
		_, err := Trigger(code)

		var config *form.ConfigurationError
		require.ErrorAs(t, err, &config, code)
		assert.Equal(t, code, config.Value)
		assert.Error(t, config.Cause)
	}
}

func TestTrigger_Disables(t *testing.T) {
	tr, err := Trigger(`field in ["a", "b"]`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.Disable(tr))
	f.SetInput(map[string]any{"a": 1, "b": 2, "c": 3})

	out, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": nil, "b": nil, "c": 3}, out)
	assert.Equal(t, form.Skipped, f.State("a"))
}

func TestValidation_Bool(t *testing.T) {
	v, err := Validation(`len(value) >= 3`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddValidation("name", v))
	f.SetInput(map[string]any{"name": "ab", "other": "ab"})

	msgs, err := f.Messages()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"name": {form.FalseMessage}}, msgs.ToFlatList())

	f.SetInput(map[string]any{"name": "abc"})
	valid, err := f.IsValid()
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestValidation_MessagesAndGet(t *testing.T) {
	v, err := Validation(`get("password") == value ? [] : ["passwords do not match"]`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddValidation("confirm", v))

	f.SetInput(map[string]any{"password": "secret", "confirm": "secret"})
	valid, err := f.IsValid()
	require.NoError(t, err)
	assert.True(t, valid)

	f.SetInput(map[string]any{"password": "secret", "confirm": "typo"})
	msgs, err := f.Messages()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"confirm": {"passwords do not match"}}, msgs.ToFlatList())
}

func TestValidation_GetInvalidFieldFailsOnce(t *testing.T) {
	v, err := Validation(`get("password") == value`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddValidation("confirm", v))
	require.NoError(t, f.AddValidation("password", func(value any) bool { return false }))
	f.SetInput(map[string]any{"password": "secret", "confirm": "secret"})

	msgs, err := f.Messages()
	require.NoError(t, err)

	got := msgs.ToFlatList()["confirm"]
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "dependent field is invalid")
	assert.Equal(t, form.Invalid, f.State("confirm"))
}

func TestValidation_SelfReferenceIsCircular(t *testing.T) {
	v, err := Validation(`get(field) != nil`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddValidation("loop", v))
	f.SetInput(map[string]any{"loop": 1})

	_, err = f.IsValid()

	var circular *form.CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"loop", "loop"}, circular.Chain)
}

func TestProcessing(t *testing.T) {
	p, err := Processing(`upper(value) + "!"`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddProcessing("name", p))
	f.SetInput(map[string]any{"name": "bob", "raw": "x"})

	out, err := f.Output()
	require.NoError(t, err)
	assert.Equal(t, "BOB!", out["name"])
	assert.Equal(t, "x", out["raw"])
}

func TestProcessing_RuntimeErrorIsMessage(t *testing.T) {
	p, err := Processing(`value / 2`)
	require.NoError(t, err)

	f := form.New()
	require.NoError(t, f.AddProcessing("n", p))
	f.SetInput(map[string]any{"n": "text"})

	valid, err := f.IsValid()
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestString(t *testing.T) {
	tr, err := Trigger(`field == "a"`)
	require.NoError(t, err)
	assert.Equal(t, `field == "a"`, tr.(interface{ String() string }).String())
}
