package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
	}{
		{"12.34", 1234},
		{"0", 0},
		{"0.01", 1},
		{"0.005", 1},   // rounds half away from zero
		{"-0.005", -1}, // negative half as well
		{"100", 10000},
		{"1500.00", 150000},
		{"-30.50", -3050},
		{" 2.50 ", 250},
	}

	for _, tt := range tests {
		m, err := Parse(tt.in)
		require.NoError(t, err, "parsing %q", tt.in)
		assert.Equal(t, tt.cents, m.Cents(), "parsing %q", tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12,34", "NaN", "Inf", "-Inf"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cents int64
		out   string
	}{
		{1234, "12.34"},
		{0, "0.00"},
		{1, "0.01"},
		{-5, "-0.05"},
		{-3050, "-30.50"},
		{150000, "1500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, Money(tt.cents).String())
	}
}

func TestRoundTrip(t *testing.T) {
	m, err := Parse("12.34")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), m.Cents())
	assert.Equal(t, "12.34", m.String())
}

func TestIsNegative(t *testing.T) {
	assert.True(t, Money(-1).IsNegative())
	assert.False(t, Zero.IsNegative())
	assert.False(t, Cent.IsNegative())
}
