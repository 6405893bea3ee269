package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{12500, "Rp12.500"},
		{100000, "Rp100.000"},
		{1234567, "Rp1.234.567"},
		{-6000, "-Rp6.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestFormatIDRRoundsFractions(t *testing.T) {
	assert.Equal(t, "Rp12.500", FormatIDR(decimal.NewFromFloat(12499.6)))
}
