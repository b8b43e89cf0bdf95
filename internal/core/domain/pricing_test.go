package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wheatworks/millbook/internal/core/domain"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name      string
		weight    string
		wantTotal string
	}{
		{name: "ten kilograms", weight: "10", wantTotal: "20.00"},
		{name: "five kilograms", weight: "5", wantTotal: "10.00"},
		{name: "zero weight", weight: "0", wantTotal: "0"},
		{name: "fractional weight", weight: "2.5", wantTotal: "5.00"},
		{name: "sub-kilogram weight", weight: "0.250", wantTotal: "0.50"},
		{name: "large weight", weight: "12345.678", wantTotal: "24691.356"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight := decimal.RequireFromString(tt.weight)
			rate, total := domain.ComputePrice(weight)

			assert.True(t, rate.Equal(decimal.RequireFromString("2.00")),
				"rate must always be 2.00, got %s", rate)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total for %s kg should be %s, got %s", tt.weight, tt.wantTotal, total)
		})
	}
}

func TestComputePrice_TotalIsWeightTimesRate(t *testing.T) {
	// The total must be derivable from the weight alone; spot-check a spread
	// of weights against an independent multiplication.
	for _, raw := range []string{"0", "1", "3.333", "50", "999.99"} {
		weight := decimal.RequireFromString(raw)
		_, total := domain.ComputePrice(weight)
		assert.True(t, total.Equal(weight.Mul(decimal.RequireFromString("2.00"))))
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain integer", input: "10", want: "10"},
		{name: "decimal value", input: "2.75", want: "2.75"},
		{name: "surrounding whitespace", input: "  7.5  ", want: "7.5"},
		{name: "empty input defaults to zero", input: "", want: "0"},
		{name: "non-numeric defaults to zero", input: "ten kilos", want: "0"},
		{name: "negative defaults to zero", input: "-4", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseWeight(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseWeight(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}
