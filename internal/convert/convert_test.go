package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
		ok   bool
	}{
		{true, true, true},
		{false, false, true},
		{1, true, true},
		{uint8(0), false, true},
		{"Yes", true, true},
		{" off ", false, true},
		{"true", true, true},
		{"0", false, true},
		{2, false, false},
		{"maybe", false, false},
		{nil, false, false},
		{1.0, false, false},
	}

	for _, tt := range tests {
		got, err := ToBool(tt.in)
		if !tt.ok {
			var conv *ConversionError
			assert.ErrorAs(t, err, &conv, "%#v", tt.in)

			continue
		}

		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{int8(-4), -4, true},
		{uint32(9), 9, true},
		{3.0, 3, true},
		{" 100 ", 100, true},
		{3.5, 0, false},
		{"3.5", 0, false},
		{"abc", 0, false},
		{uint64(1 << 63), 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, err := ToInt(tt.in)
		if !tt.ok {
			assert.Error(t, err, "%#v", tt.in)
			continue
		}

		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}

func TestToFloat(t *testing.T) {
	got, err := ToFloat("2.5")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)

	got, err = ToFloat(uint(4))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)

	_, err = ToFloat("two")
	require.Error(t, err)
	assert.Equal(t, "not a valid number: two", err.Error())
}

func TestToDuration(t *testing.T) {
	got, err := ToDuration("2h45m")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+45*time.Minute, got)

	got, err = ToDuration(int64(1500))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Nanosecond, got)

	got, err = ToDuration(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, got)

	_, err = ToDuration("soon")
	assert.Error(t, err)
}

func TestToTime(t *testing.T) {
	got, err := ToTime("2024-03-01T10:00:00Z", "")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))

	got, err = ToTime(0, "")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Unix(0, 0)))

	got, err = ToTime("01/03/2024", "02/01/2006")
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())

	_, err = ToTime("yesterday", "")
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	var nilPtr *int

	for _, v := range []any{nil, false, 0, 0.0, "", "0", []string{}, map[string]any{}, nilPtr} {
		assert.True(t, IsEmpty(v), "%#v", v)
	}

	for _, v := range []any{true, 1, "a", "00", []int{0}, struct{}{}} {
		assert.True(t, Truthy(v), "%#v", v)
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(1, 1, 3))
	assert.True(t, Within(2.5, 1.0, 3.0))
	assert.False(t, Within(4, 1, 3))
	assert.False(t, Within(math.NaN(), 0, 1))
	assert.True(t, Within("b", "a", "c"))
}
