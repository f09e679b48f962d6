package engine

import (
	"fmt"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// DeveloperPricingResult is one task's NHP price against the cloud average.
type DeveloperPricingResult struct {
	TaskKey       string  `json:"task_key"`
	Task          string  `json:"task"`
	Unit          string  `json:"unit"`
	NHPPrice      float64 `json:"nhp_price"`
	CloudAvgPrice float64 `json:"cloud_avg_price"`
	SavingsPct    float64 `json:"savings_pct"`
	QualityPct    float64 `json:"quality_pct"`
	LatencyFactor float64 `json:"latency_factor"`
}

// DeveloperPricing passes a task's quoted prices through as a result row.
func DeveloperPricing(t refdata.DeveloperTask) DeveloperPricingResult {
	return DeveloperPricingResult{
		TaskKey:       t.Key,
		Task:          t.Task,
		Unit:          t.Unit,
		NHPPrice:      t.NHPPrice,
		CloudAvgPrice: t.CloudAvgPrice,
		SavingsPct:    t.SavingsPct,
		QualityPct:    t.QualityPct,
		LatencyFactor: t.LatencyFactor,
	}
}

// DeveloperCostResult is a use case's monthly bill on the cloud and on NHP.
type DeveloperCostResult struct {
	UseCase          string   `json:"use_case"`
	UseCaseAr        string   `json:"use_case_ar"`
	DeveloperType    string   `json:"developer_type"`
	Tasks            []string `json:"tasks"`
	CloudMonthly     float64  `json:"cloud_monthly"`
	NHPMonthly       float64  `json:"nhp_monthly"`
	MonthlySavings   float64  `json:"monthly_savings"`
	AnnualSavings    float64  `json:"annual_savings"`
	SavingsPct       float64  `json:"savings_pct"`
	Fit              string   `json:"fit"`
	FitScore         float64  `json:"fit_score"`
	LatencyTolerance string   `json:"latency_tolerance"`
}

// TaskLookup resolves a developer task by key.
type TaskLookup func(key string) (refdata.DeveloperTask, bool)

// DeveloperCosts prices a use case's monthly volumes at cloud and NHP rates.
// An unknown task key is an error.
func DeveloperCosts(uc refdata.DeveloperUseCase, lookup TaskLookup) (DeveloperCostResult, error) {
	var cloud, nhp float64
	tasks := make([]string, 0, len(uc.Volumes))
	for _, v := range uc.Volumes {
		t, ok := lookup(v.TaskKey)
		if !ok {
			return DeveloperCostResult{}, fmt.Errorf("use case %q: unknown developer task %q", uc.Name, v.TaskKey)
		}
		cloud += v.Units * t.CloudAvgPrice
		nhp += v.Units * t.NHPPrice
		tasks = append(tasks, t.Key)
	}

	savings := cloud - nhp
	var pct float64
	if cloud > 0 {
		pct = savings / cloud * 100
	}

	return DeveloperCostResult{
		UseCase:          uc.Name,
		UseCaseAr:        uc.NameAr,
		DeveloperType:    uc.DeveloperType,
		Tasks:            tasks,
		CloudMonthly:     cloud,
		NHPMonthly:       nhp,
		MonthlySavings:   savings,
		AnnualSavings:    savings * refdata.MonthsPerYear,
		SavingsPct:       pct,
		Fit:              uc.Fit,
		FitScore:         refdata.FitScores[uc.Fit],
		LatencyTolerance: uc.LatencyTolerance,
	}, nil
}

// TokenYearResult is one year of a token supply projection.
type TokenYearResult struct {
	Model           string  `json:"model"`
	ModelAr         string  `json:"model_ar"`
	Year            int     `json:"year"`
	Supply          float64 `json:"supply"`
	Minted          float64 `json:"minted"`
	Burned          float64 `json:"burned"`
	TokenPrice      float64 `json:"token_price"`
	MarketCap       float64 `json:"market_cap"`
	PlatformRevenue float64 `json:"platform_revenue"`
	UserPayouts     float64 `json:"user_payouts"`
	AnnualDemand    float64 `json:"annual_demand"`
}

// fallbackTokenPrice is the opening price when a model starts with no supply.
const fallbackTokenPrice = 0.01

// TokenLifecycle projects supply, price and market cap for a token model
// under constant monthly developer demand. Each year mints against the
// opening supply, burns a share of the tokens consumed at the previous
// price, then reprices demand against the new supply at TokenVelocity.
func TokenLifecycle(m refdata.TokenModel, monthlyDemand float64, years int) []TokenYearResult {
	supply := m.InitialSupply
	annual := monthlyDemand * refdata.MonthsPerYear

	price := fallbackTokenPrice
	if supply > 0 {
		price = annual / supply
	}

	out := make([]TokenYearResult, 0, years)
	for year := 1; year <= years; year++ {
		minted := supply * m.AnnualMintRate
		var consumed float64
		if price > 0 {
			consumed = annual / price
		}
		burned := consumed * m.BurnRate
		supply = supply + minted - burned

		price = 0
		if supply > 0 {
			price = annual / (supply * refdata.TokenVelocity)
		}

		out = append(out, TokenYearResult{
			Model:           m.Name,
			ModelAr:         m.NameAr,
			Year:            year,
			Supply:          supply,
			Minted:          minted,
			Burned:          burned,
			TokenPrice:      price,
			MarketCap:       supply * price,
			PlatformRevenue: annual * m.PlatformCut,
			UserPayouts:     annual * m.UserPayout,
			AnnualDemand:    annual,
		})
	}
	return out
}

// DeveloperDemandResult is the spend of one developer segment.
type DeveloperDemandResult struct {
	Segment      string  `json:"segment"`
	Developers   int64   `json:"developers"`
	AvgSpend     float64 `json:"avg_spend"`
	TotalMonthly float64 `json:"total_monthly"`
	TotalAnnual  float64 `json:"total_annual"`
}

// PlatformDemand totals developer spend per segment. Segments without a
// quoted spend use refdata.DefaultSegmentSpend.
func PlatformDemand(segments []refdata.DeveloperSegment) []DeveloperDemandResult {
	out := make([]DeveloperDemandResult, 0, len(segments))
	for _, s := range segments {
		spend := s.AvgMonthlySpend
		if spend <= 0 {
			spend = refdata.DefaultSegmentSpend
		}
		monthly := float64(s.Count) * spend
		out = append(out, DeveloperDemandResult{
			Segment:      s.Type,
			Developers:   s.Count,
			AvgSpend:     spend,
			TotalMonthly: monthly,
			TotalAnnual:  monthly * refdata.MonthsPerYear,
		})
	}
	return out
}
