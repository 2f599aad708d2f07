package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4kb", "4K"},
		{"4000kb", "4M"},
		{"4mb", "4M"},
		{"4m", "4M"},
		{"4M", "4M"},
		{"4 M", "4M"},
		{"4 Mb", "4M"},
		{"5g", "5000M"},
		{"1t", "1000000M"},
		{"1.5gb", "1500M"},
		{"1.1M", "2M"},
		{"4.1MB", "5M"},
		{"50.7mb", "51M"},
		{"50.1mb", "51M"},
		{"5001kb", "6M"},
		{"4.3kb", "5K"},
		{"0.56M", "560K"},
		{"1000kb", "1M"},
		{"5000", "5000M"},
		{"9000", "9000M"},
		{"50b", "1K"},
		{"999b", "1K"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMemory(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
			assert.False(t, got.Default)
		})
	}
}

func TestParseMemoryZeroIsClusterDefault(t *testing.T) {
	for _, input := range []string{"0", "0k", "0mb", "0.0", "0.0G"} {
		got, err := ParseMemory(input)
		require.NoError(t, err, input)
		assert.True(t, got.Default, input)
		assert.Equal(t, "0", got.String(), input)
	}
}

func TestParseMemoryInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown unit", "5z"},
		{"empty", ""},
		{"whitespace only", "   "},
		{"no number", "gb"},
		{"word", "ten"},
		{"double dot", "4.3.2k"},
		{"negative", "-5g"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMemory(tc.input)
			require.Error(t, err)
			var memErr *MemoryParseError
			require.ErrorAs(t, err, &memErr)
			assert.Equal(t, tc.input, memErr.Input)
			assert.Contains(t, err.Error(), "not a valid memory size")
		})
	}
}

func TestParseMemoryHugeValues(t *testing.T) {
	// the largest representable byte count still rounds up instead of
	// wrapping to zero
	got, err := ParseMemory("18446744073709551615b")
	require.NoError(t, err)
	assert.Equal(t, "18446744073710M", got.String())

	_, err = ParseMemory("18446744073709551615t")
	require.Error(t, err)
	var memErr *MemoryParseError
	require.ErrorAs(t, err, &memErr)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParseMemoryErrorNamesOffendingInput(t *testing.T) {
	_, err := ParseMemory("5zb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"5zb"`)
	assert.Contains(t, err.Error(), `"zb"`)
}
