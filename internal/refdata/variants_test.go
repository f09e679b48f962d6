package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariant_Names(t *testing.T) {
	tests := []struct {
		v         Variant
		wantName  string
		wantAr    string
		wantEmoji string
		wantColor string
	}{
		{Optimistic, "Optimistic", "متفائل", "🟢", "#2ECC71"},
		{Moderate, "Moderate", "معتدل", "🔵", "#3498DB"},
		{Pessimistic, "Pessimistic", "متشائم", "🟠", "#E67E22"},
		{Catastrophic, "Catastrophic", "كارثي", "🔴", "#E74C3C"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.True(t, tt.v.Valid())
			assert.Equal(t, tt.wantName, tt.v.String())
			assert.Equal(t, tt.wantAr, tt.v.Arabic())
			assert.Equal(t, tt.wantEmoji, tt.v.Emoji())
			assert.Equal(t, tt.wantColor, tt.v.Color())
		})
	}
}

func TestVariant_OutOfRange(t *testing.T) {
	v := Variant(7)
	assert.False(t, v.Valid())
	assert.Equal(t, "Variant(7)", v.String())
	assert.Empty(t, v.Arabic())
	assert.Empty(t, v.Emoji())
}

func TestParseVariant(t *testing.T) {
	v, ok := ParseVariant("Pessimistic")
	assert.True(t, ok)
	assert.Equal(t, Pessimistic, v)

	_, ok = ParseVariant("pessimistic")
	assert.False(t, ok)
}

func TestAllVariants_Order(t *testing.T) {
	all := AllVariants()
	for i, v := range all {
		assert.Equal(t, Variant(i), v)
	}
}

func TestDefaultVariants(t *testing.T) {
	vs := DefaultVariants()

	assert.Equal(t, [NumVariants]float64{0.40, 0.25, 0.10, 0.03}, vs.Uptime)
	assert.Equal(t, [NumVariants]float64{0.70, 0.40, 0.15, 0.05}, vs.Coverage)
	assert.Equal(t, [NumVariants]float64{3.0, 1.5, 0.5, 0.1}, vs.Growth)
	assert.Equal(t, [NumVariants]float64{0.50, 0.20, 0.08, 0.02}, vs.TokenPrice)
	assert.Equal(t, [NumVariants]float64{10, 5, 2, 0.5}, vs.DCReplaced)
	assert.Equal(t, [NumVariants]float64{0.10, 0.20, 0.35, 0.50}, vs.Overhead)

	// Severity decreases from Optimistic to Catastrophic on every axis.
	for i := 1; i < NumVariants; i++ {
		assert.Less(t, vs.Uptime[i], vs.Uptime[i-1])
		assert.Less(t, vs.Coverage[i], vs.Coverage[i-1])
		assert.Less(t, vs.TokenPrice[i], vs.TokenPrice[i-1])
		assert.Greater(t, vs.Overhead[i], vs.Overhead[i-1])
	}
}
