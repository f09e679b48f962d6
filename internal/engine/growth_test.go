package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func TestNetworkGrowth(t *testing.T) {
	tests := []struct {
		name       string
		growth     float64
		wantYearly []int64
		wantCapped bool
	}{
		{
			name:       "moderate 150%",
			growth:     1.5,
			wantYearly: []int64{250_000, 625_000, 1_562_500, 3_906_250, 9_765_625},
		},
		{
			name:       "catastrophic 10%",
			growth:     0.1,
			wantYearly: []int64{110_000, 121_000, 133_100, 146_410, 161_051},
		},
		{
			name:       "optimistic 300%",
			growth:     3.0,
			wantYearly: []int64{400_000, 1_600_000, 6_400_000, 25_600_000, 102_400_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetworkGrowth(refdata.BaseDevices, tt.growth, refdata.SimulationYears, refdata.TargetDevices)
			assert.Equal(t, tt.wantYearly, got.YearlyDevices)
			assert.Equal(t, tt.wantYearly[len(tt.wantYearly)-1], got.FinalDevices)
			assert.Equal(t, tt.wantCapped, got.ReachedTarget)
			assert.Equal(t, int64(refdata.BaseDevices), got.BaseDevices)
		})
	}
}

func TestNetworkGrowth_CapsAtTarget(t *testing.T) {
	got := NetworkGrowth(100, 9, 4, 50_000)

	assert.Equal(t, []int64{1000, 10_000, 50_000, 50_000}, got.YearlyDevices)
	assert.True(t, got.ReachedTarget)
}

func TestNetworkGrowth_ZeroYears(t *testing.T) {
	got := NetworkGrowth(100, 1, 0, 1000)

	assert.Empty(t, got.YearlyDevices)
	assert.Equal(t, int64(100), got.FinalDevices)
}
