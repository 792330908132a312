package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		capacity int
		want     string
	}{
		{"full", 100, 100, "Full"},
		{"over capacity reads full", 105, 100, "Full"},
		{"almost full at 85 percent", 85, 100, "Almost full (15 left)"},
		{"almost full above 85 percent", 95, 100, "Almost full (5 left)"},
		{"limited at 60 percent", 60, 100, "Limited (40 spots)"},
		{"limited below 85 percent", 80, 100, "Limited (20 spots)"},
		{"available", 40, 100, "Available (60 spots)"},
		{"empty", 0, 100, "Available (100 spots)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLabel(tt.current, tt.capacity))
		})
	}
}

func TestVariant(t *testing.T) {
	assert.Equal(t, VariantHigh, Variant(100))
	assert.Equal(t, VariantHigh, Variant(75))
	assert.Equal(t, VariantMedium, Variant(74))
	assert.Equal(t, VariantMedium, Variant(50))
	assert.Equal(t, VariantLow, Variant(49))
	assert.Equal(t, VariantLow, Variant(0))
}

func TestMatchLabel(t *testing.T) {
	assert.Equal(t, "95% Match", MatchLabel(95))
}
