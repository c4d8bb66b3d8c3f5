package utils_test

import (
	"testing"

	"github.com/finsight-app/finsight_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"hundreds", 500, "₹500"},
		{"thousands", 5000, "₹5,000"},
		{"lakhs", 800000, "₹8,00,000"},
		{"ten lakhs", 1000000, "₹10,00,000"},
		{"fifty lakhs", 5000000, "₹50,00,000"},
		{"crores", 10000000, "₹1,00,00,000"},
		{"uneven grouping", 1234567, "₹12,34,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatINR(decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestFormatINR_RoundsFractionsAway(t *testing.T) {
	assert.Equal(t, "₹1,235", utils.FormatINR(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "₹1,234", utils.FormatINR(decimal.NewFromFloat(1234.4)))
}

func TestFormatINR_Negative(t *testing.T) {
	assert.Equal(t, "-₹8,00,000", utils.FormatINR(decimal.NewFromInt(-800000)))
}

func TestParseINR(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"800000", 800000},
		{"₹8,00,000", 800000},
		{" ₹50,00,000 ", 5000000},
		{"0", 0},
	}

	for _, tt := range tests {
		d, err := utils.ParseINR(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, d.Equal(decimal.NewFromInt(tt.want)), "input %q parsed to %s", tt.input, d)
	}
}

func TestParseINR_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "₹"} {
		_, err := utils.ParseINR(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 1000, 99999, 100000, 12345678} {
		formatted := utils.FormatINR(decimal.NewFromInt(amount))
		parsed, err := utils.ParseINR(formatted)
		require.NoError(t, err)
		assert.Equal(t, formatted, utils.FormatINR(parsed))
	}
}
