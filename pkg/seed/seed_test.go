package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitConfigurations(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"2BHK, 3BHK", []string{"2BHK", "3BHK"}},
		{"2bhk/3bhk", []string{"2BHK", "3BHK"}},
		{"4BHK", []string{"4BHK"}},
		{" 2BHK ;  3BHK ", []string{"2BHK", "3BHK"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitConfigurations(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "project_name", normalizeHeader(" Project Name "))
	assert.Equal(t, "price_per_sqft", normalizeHeader("price_per_sqft"))
	assert.Equal(t, "min_size_sqft", normalizeHeader("Min Size Sqft"))
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 1200, parseInt("1,200"))
	assert.Equal(t, 0, parseInt("n/a"))
	assert.Equal(t, 4500.5, parseFloat("4,500.5"))
	assert.Equal(t, 0.0, parseFloat(""))
}
