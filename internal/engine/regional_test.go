package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func TestRegionalMarket_India(t *testing.T) {
	profiles := refdata.Default().RegionalProfiles
	require.NotEmpty(t, profiles)
	india := profiles[0]
	require.Equal(t, "india", india.Key)

	got := RegionalMarket(india)

	assert.Equal(t, int64(40_000_000), got.NHPDevices)
	assert.InDelta(t, 400_000_000, got.MonthlyPayouts, 1e-6)
	assert.InDelta(t, 4_800_000_000, got.AnnualPayouts, 1e-3)
	assert.InDelta(t, 400_000_000*0.15/0.85, got.PlatformMonthly, 1e-3)
	assert.InDelta(t, 0.042, got.ElecCostUser, 1e-12)
	assert.InDelta(t, 9.958, got.NetIncome, 1e-12)
	assert.InDelta(t, 5.0, got.PctOfIncome, 1e-12)
	assert.Equal(t, 95, got.OpportunityScore)
	assert.Equal(t, india.TopBrands, got.TopBrands)
	assert.Contains(t, got.Payment, "UPI")
	assert.Equal(t, india.StrategicNotes, got.StrategicNotes)
	assert.Equal(t, india.StrategicNotesAr, got.StrategicNotesAr)
	assert.Contains(t, got.Risks, "Data localization")
}

func TestRegionalMarket_ZeroIncome(t *testing.T) {
	got := RegionalMarket(refdata.RegionalProfile{Smartphones: 1000, AdoptionEst: 0.1, NHPIncome: 5})

	assert.Equal(t, int64(100), got.NHPDevices)
	assert.Zero(t, got.PctOfIncome)
	assert.InDelta(t, 5.0, got.NetIncome, 1e-12)
}

func TestRegionalMarket_AllProfiles(t *testing.T) {
	for _, p := range refdata.Default().RegionalProfiles {
		got := RegionalMarket(p)
		assert.LessOrEqual(t, got.NHPDevices, p.Smartphones, p.Key)
		assert.Positive(t, got.PlatformMonthly, p.Key)
	}
}
