package scenario

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/record"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

func TestSettlementPhase(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseSettlement)
	require.NoError(t, err)

	income, ok := res.Category(CategorySettlementIncome)
	require.True(t, ok)
	assert.Len(t, income.Records, 8*10*4)

	scores, ok := res.Category(CategorySettlementScore)
	require.True(t, ok)
	assert.Len(t, scores.Records, 8)
	assert.Equal(t, 328, res.Total())
	assert.Equal(t, "NHP Settlement System Comparison", res.Title)
	assert.NotEmpty(t, res.TitleAr)

	// Order: system, then region, then variant.
	first := income.Records[0].Result.(SettlementRegionIncome)
	second := income.Records[1].Result.(SettlementRegionIncome)
	fifth := income.Records[4].Result.(SettlementRegionIncome)
	assert.Equal(t, "USA", first.Region)
	assert.Equal(t, refdata.FocusRegionKey, first.RegionKey)
	assert.Equal(t, refdata.Optimistic, income.Records[0].Variant)
	assert.Equal(t, "USA", second.Region)
	assert.Equal(t, 0.20, second.TokenPrice)
	assert.InDelta(t, 42.0, second.GrossMonthly, 1e-9)
	assert.Equal(t, "EU (Average)", fifth.Region)
	assert.Equal(t, first.System, fifth.System)
}

func TestSettlementPhase_IncomeFormula(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseSettlement)
	require.NoError(t, err)

	income, _ := res.Category(CategorySettlementIncome)
	sys := refdata.Default().SettlementSystems[0]
	usa, _ := refdata.Default().Region("usa")

	rec := income.Records[1].Result.(SettlementRegionIncome)
	elec := engine.DeviceDailyKWh() * usa.ElectricityCostKWh * refdata.DaysPerMonth
	fee := 42.0*sys.TxFeePct/100 + sys.TxFeeFixed

	assert.InDelta(t, elec, rec.Electricity, 1e-12)
	assert.InDelta(t, fee, rec.TxFee, 1e-12)
	assert.InDelta(t, 42.0-fee-elec, rec.NetMonthly, 1e-9)
}

func TestSettlementPhase_ScoreRowsHaveNoVariant(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseSettlement)
	require.NoError(t, err)

	scores, _ := res.Category(CategorySettlementScore)
	row := scores.Records[0].Row()

	v, ok := row.String(record.KeyVariant)
	require.True(t, ok)
	assert.Empty(t, v)

	cat, _ := row.String(record.KeyCategory)
	assert.Equal(t, CategorySettlementScore, cat)
}

func TestRegionalPhase(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseRegional)
	require.NoError(t, err)

	c, ok := res.Category(CategoryRegional)
	require.True(t, ok)
	require.Len(t, c.Records, 6)

	for i, rec := range c.Records {
		got := rec.Result.(engine.RegionalMarketResult)
		assert.Equal(t, refdata.Default().RegionalProfiles[i].Name, got.Region)
		assert.Equal(t, refdata.NoVariant, rec.Variant)
	}
}

func TestRunPhase(t *testing.T) {
	r := newTestRunner(t)

	tests := []struct {
		phase     string
		want      int
		wantTitle string
		wantErr   bool
	}{
		{PhaseSettlement, 328, "NHP Settlement System Comparison", false},
		{PhaseRegional, 6, "NHP Regional Market Deep Dives", false},
		{PhaseDeveloper, 42, "NHP Developer Ecosystem", false},
		{PhaseCritique, 38, "NHP Critique Response", false},
		{PhaseVisionary, 72, "NHP Visionary Scenarios", false},
		{"unknown", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			res, err := r.RunPhase(context.Background(), tt.phase)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "visionary")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Total())
			assert.Equal(t, tt.wantTitle, res.Title)
			assert.NotEmpty(t, res.RunID)
		})
	}
}

func TestRunPhase_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner(t).RunPhase(ctx, PhaseDeveloper)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPhases(t *testing.T) {
	assert.Equal(t, []string{"settlement", "regional", "developer", "critique", "visionary"}, Phases())
}

func TestDeveloperPhase(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseDeveloper)
	require.NoError(t, err)

	want := []struct {
		key string
		n   int
	}{
		{CategoryDeveloperPricing, 8},
		{CategoryDeveloperCosts, 8},
		{CategoryTokenLifecycle, 20},
		{CategoryDeveloperDemand, 6},
	}
	require.Len(t, res.Categories, len(want))
	for i, w := range want {
		assert.Equal(t, w.key, res.Categories[i].Key)
		assert.Len(t, res.Categories[i].Records, w.n)
	}

	costs, _ := res.Category(CategoryDeveloperCosts)
	chatbot := costs.Records[0].Result.(engine.DeveloperCostResult)
	assert.InDelta(t, 45000.0, chatbot.CloudMonthly, 1e-6)
	assert.InDelta(t, 12000.0, chatbot.NHPMonthly, 1e-6)

	// Year rows run 1..SimulationYears for each model in turn.
	lifecycle, _ := res.Category(CategoryTokenLifecycle)
	first := lifecycle.Records[0].Result.(engine.TokenYearResult)
	last := lifecycle.Records[refdata.SimulationYears-1].Result.(engine.TokenYearResult)
	assert.Equal(t, 1, first.Year)
	assert.Equal(t, refdata.SimulationYears, last.Year)
	assert.Equal(t, first.Model, last.Model)
}

func TestDeveloperPhase_UnknownTask(t *testing.T) {
	catalog := refdata.Default()
	catalog.DeveloperUseCases = append(catalog.DeveloperUseCases, refdata.DeveloperUseCase{
		Name:  "Broken",
		Volumes: []refdata.TaskVolume{{TaskKey: "teleport", Units: 1}},
	})
	r := NewRunner(catalog, refdata.DefaultVariants(), newTestRunner(t).pricing, zerolog.Nop())

	_, err := r.RunPhase(context.Background(), PhaseDeveloper)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestCritiquePhase(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseCritique)
	require.NoError(t, err)

	counts := map[string]int{
		CategoryCritiquePricing: 5, CategoryCritiqueThermal: 5, CategoryCritiqueIndia: 5,
		CategoryCritiquePayments: 5, CategoryCritiqueNPU: 6, CategoryCritiqueRivals: 5,
		CategoryCritiqueStress: 7,
	}
	require.Len(t, res.Categories, len(counts))
	for _, c := range res.Categories {
		assert.Len(t, c.Records, counts[c.Key], c.Key)
		for _, rec := range c.Records {
			assert.Equal(t, refdata.NoVariant, rec.Variant)
		}
	}

	rows, _ := res.Category(CategoryCritiquePayments)
	flow := rows.Records[0].Result.(engine.PaymentFlowResult)
	assert.Equal(t, refdata.Default().DeveloperSpends[0], flow.DeveloperSpend)
}

func TestVisionaryPhase(t *testing.T) {
	res, err := newTestRunner(t).RunPhase(context.Background(), PhaseVisionary)
	require.NoError(t, err)

	hourly, ok := res.Category(CategoryMoonHourly)
	require.True(t, ok)
	require.Len(t, hourly.Records, 24)
	for i, rec := range hourly.Records {
		assert.Equal(t, i, rec.Result.(engine.HourlyCoverageResult).UTCHour)
	}

	summary, _ := res.Category(CategoryMoonCoverage)
	require.Len(t, summary.Records, 1)
	cov := summary.Records[0].Result.(engine.CoverageSummary)
	assert.InDelta(t, 230.0, cov.MinDevicesM, 1e-9)
	assert.InDelta(t, 1550.0, cov.MaxDevicesM, 1e-9)

	projection, _ := res.Category(CategoryProjection)
	assert.Len(t, projection.Records, 3*5)

	row := projection.Records[0].Row()
	path, ok := row.String("path")
	require.True(t, ok)
	assert.Equal(t, "Conservative", path)
}
