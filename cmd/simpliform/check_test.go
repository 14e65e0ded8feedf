package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (report, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	var rep report
	if stdout.Len() > 0 {
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &rep))
	}

	return rep, stderr.String(), err
}

func TestCheck_Valid(t *testing.T) {
	rep, _, err := execute(t, "check", "-d", "testdata/definition.yaml", "-i", "testdata/valid.yaml")
	require.NoError(t, err)

	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Messages)
	assert.Equal(t, map[string]any{
		"age":         30,
		"timeout":     "1m30s",
		"name":        "bob",
		"password":    "secret",
		"confirm":     "secret",
		"debug_trace": nil,
	}, rep.Output)
}

func TestCheck_Invalid(t *testing.T) {
	rep, _, err := execute(t, "check", "--definition", "testdata/definition.yaml", "--input", "testdata/invalid.yaml")
	require.ErrorIs(t, err, errInvalid)

	assert.False(t, rep.Valid)
	assert.Equal(t, map[string][]string{
		"age":     {"must be at least 18"},
		"confirm": {"passwords do not match"},
	}, rep.Messages)
	assert.Nil(t, rep.Output["age"])
	assert.Nil(t, rep.Output["timeout"])
}

func TestCheck_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "check", "-d", "testdata/definition.yaml", "-i", "testdata/valid.yaml",
		"--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"cycle"`)
}

func TestCheck_Errors(t *testing.T) {
	_, _, err := execute(t, "check", "-i", "testdata/valid.yaml")
	assert.ErrorContains(t, err, "definition")

	_, _, err = execute(t, "check", "-d", "testdata/missing.yaml", "-i", "testdata/valid.yaml")
	assert.ErrorContains(t, err, "failed to read definition file")

	_, _, err = execute(t, "check", "-d", "testdata/definition.yaml", "-i", "testdata/valid.yaml", "--log-level", "loud")
	assert.ErrorContains(t, err, "bad log level")
}
