package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func TestDeveloperCosts(t *testing.T) {
	c := refdata.Default()

	tests := []struct {
		name      string
		useCase   int
		wantCloud float64
		wantNHP   float64
		wantTasks []string
		wantScore float64
	}{
		{name: "chatbot", useCase: 0, wantCloud: 45_000, wantNHP: 12_000, wantTasks: []string{"text_gen"}, wantScore: 45},
		{name: "image platform", useCase: 1, wantCloud: 90_000, wantNHP: 15_000, wantTasks: []string{"image_gen"}, wantScore: 95},
		{name: "research lab mixes two tasks", useCase: 3, wantCloud: 2_975, wantNHP: 410, wantTasks: []string{"fine_tuning", "training"}, wantScore: 95},
		{name: "healthcare", useCase: 7, wantCloud: 100, wantNHP: 20, wantTasks: []string{"image_analysis"}, wantScore: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeveloperCosts(c.DeveloperUseCases[tt.useCase], c.DeveloperTask)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantCloud, got.CloudMonthly, 1e-6)
			assert.InDelta(t, tt.wantNHP, got.NHPMonthly, 1e-6)
			assert.InDelta(t, tt.wantCloud-tt.wantNHP, got.MonthlySavings, 1e-6)
			assert.InDelta(t, (tt.wantCloud-tt.wantNHP)*12, got.AnnualSavings, 1e-5)
			assert.InDelta(t, (tt.wantCloud-tt.wantNHP)/tt.wantCloud*100, got.SavingsPct, 1e-9)
			assert.Equal(t, tt.wantTasks, got.Tasks)
			assert.InDelta(t, tt.wantScore, got.FitScore, 1e-12)
		})
	}
}

func TestDeveloperCosts_UnknownTask(t *testing.T) {
	uc := refdata.DeveloperUseCase{Name: "Video Shop", Volumes: []refdata.TaskVolume{{TaskKey: "video_gen", Units: 1}}}

	_, err := DeveloperCosts(uc, refdata.Default().DeveloperTask)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video_gen")
}

func TestDeveloperCosts_NoVolume(t *testing.T) {
	got, err := DeveloperCosts(refdata.DeveloperUseCase{Name: "Idle", Fit: "Good"}, refdata.Default().DeveloperTask)
	require.NoError(t, err)
	assert.Zero(t, got.SavingsPct)
	assert.Empty(t, got.Tasks)
	assert.InDelta(t, 70.0, got.FitScore, 1e-12)
}

func TestDeveloperPricing(t *testing.T) {
	task, ok := refdata.Default().DeveloperTask("fine_tuning")
	require.True(t, ok)

	got := DeveloperPricing(task)
	assert.Equal(t, "fine_tuning", got.TaskKey)
	assert.InDelta(t, 3.95, got.CloudAvgPrice, 1e-12)
	assert.InDelta(t, 3.0, got.LatencyFactor, 1e-12)
}

func TestTokenLifecycle(t *testing.T) {
	models := refdata.Default().TokenModels

	t.Run("inflationary mints without burning", func(t *testing.T) {
		years := TokenLifecycle(models[0], refdata.DeveloperMonthlyDemand, refdata.SimulationYears)
		require.Len(t, years, 5)

		first := years[0]
		assert.Equal(t, 1, first.Year)
		assert.InDelta(t, 50_000_000, first.Minted, 1e-3)
		assert.Zero(t, first.Burned)
		assert.InDelta(t, 1_050_000_000, first.Supply, 1e-3)
		assert.InDelta(t, 600_000_000/105_000_000.0, first.TokenPrice, 1e-9)
		assert.InDelta(t, 90_000_000, first.PlatformRevenue, 1e-3)
		assert.InDelta(t, 510_000_000, first.UserPayouts, 1e-3)

		for i := 1; i < len(years); i++ {
			assert.Greater(t, years[i].Supply, years[i-1].Supply)
			assert.Less(t, years[i].TokenPrice, years[i-1].TokenPrice)
		}
	})

	t.Run("burn shrinks supply", func(t *testing.T) {
		years := TokenLifecycle(models[1], refdata.DeveloperMonthlyDemand, 1)
		require.Len(t, years, 1)
		assert.InDelta(t, 20_000_000, years[0].Minted, 1e-3)
		assert.InDelta(t, 300_000_000, years[0].Burned, 1e-3)
		assert.InDelta(t, 720_000_000, years[0].Supply, 1e-3)
	})

	t.Run("market cap is demand over velocity", func(t *testing.T) {
		for _, m := range models {
			for _, y := range TokenLifecycle(m, refdata.DeveloperMonthlyDemand, 3) {
				assert.InDelta(t, 6_000_000_000, y.MarketCap, 1e-2, m.Name)
			}
		}
	})

	t.Run("no supply", func(t *testing.T) {
		years := TokenLifecycle(refdata.TokenModel{Name: "Empty"}, 1000, 2)
		require.Len(t, years, 2)
		assert.Zero(t, years[0].Supply)
		assert.Zero(t, years[0].TokenPrice)
		assert.Zero(t, years[1].Burned)
	})
}

func TestPlatformDemand(t *testing.T) {
	got := PlatformDemand(refdata.Default().DeveloperSegments)
	require.Len(t, got, 6)

	assert.Equal(t, "Startup", got[0].Segment)
	assert.InDelta(t, 2_500_000, got[0].TotalMonthly, 1e-6)
	assert.InDelta(t, 30_000_000, got[0].TotalAnnual, 1e-6)

	var total float64
	for _, s := range got {
		total += s.TotalMonthly
	}
	assert.InDelta(t, 13_800_000, total, 1e-6)
}

func TestPlatformDemand_DefaultSpend(t *testing.T) {
	got := PlatformDemand([]refdata.DeveloperSegment{{Type: "Hobbyist", Count: 10}})
	require.Len(t, got, 1)
	assert.InDelta(t, refdata.DefaultSegmentSpend, got[0].AvgSpend, 1e-12)
	assert.InDelta(t, 1000.0, got[0].TotalMonthly, 1e-12)
}
