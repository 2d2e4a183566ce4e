package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDistrict(t *testing.T) {
	tests := []struct {
		in       string
		expected DistrictKey
	}{
		{"Watthana", "watthana"},
		{"  WATTHANA  ", "watthana"},
		{"Thon   Buri", "thon buri"},
		{"\tKhlong  Sam  Wa\n", "khlong sam wa"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeDistrict(tt.in), "%q", tt.in)
	}
}
