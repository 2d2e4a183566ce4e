package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1325936, "1.3M"},
		{2500000, "2.5M"},
		{1000000, "1.0M"},
		{605047, "605K"},
		{55055, "55K"},
		{1000, "1K"},
		{412, "412"},
		{0, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatCurrency(tt.value), "%f", tt.value)
	}
}
