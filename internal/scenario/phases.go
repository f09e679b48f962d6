package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Phase names accepted by RunPhase.
const (
	PhaseSettlement = "settlement"
	PhaseRegional   = "regional"
	PhaseDeveloper  = "developer"
	PhaseCritique   = "critique"
	PhaseVisionary  = "visionary"
)

// Settlement and regional phase category keys.
const (
	CategorySettlementIncome = "settlement_income"
	CategorySettlementScore  = "settlement_score"
	CategoryRegional         = "regional"
)

// phaseFunc produces the categories of one phase in report order.
type phaseFunc func(r *Runner) ([]CategoryResults, error)

type phaseDef struct {
	Name    string
	Title   string
	TitleAr string
	run     phaseFunc
}

// phaseDefs is ordered; Phases follows this order.
var phaseDefs = []phaseDef{
	{Name: PhaseSettlement, Title: "NHP Settlement System Comparison", TitleAr: "مقارنة أنظمة التسوية لـ NHP", run: settlementPhase},
	{Name: PhaseRegional, Title: "NHP Regional Market Deep Dives", TitleAr: "تحليل الأسواق الإقليمية لـ NHP", run: regionalPhase},
	{Name: PhaseDeveloper, Title: "NHP Developer Ecosystem", TitleAr: "نظام NHP للمطورين", run: developerPhase},
	{Name: PhaseCritique, Title: "NHP Critique Response", TitleAr: "الرد على الانتقادات", run: critiquePhase},
	{Name: PhaseVisionary, Title: "NHP Visionary Scenarios", TitleAr: "سيناريوهات رؤيوية لـ NHP", run: visionaryPhase},
}

// Phases lists the phase names accepted by RunPhase.
func Phases() []string {
	names := make([]string, len(phaseDefs))
	for i, def := range phaseDefs {
		names[i] = def.Name
	}
	return names
}

func lookupPhaseDef(name string) (phaseDef, bool) {
	for _, def := range phaseDefs {
		if def.Name == name {
			return def, true
		}
	}
	return phaseDef{}, false
}

// RunPhase runs a named phase. The results carry the phase title so a
// report can be headed with it.
func (r *Runner) RunPhase(ctx context.Context, name string) (*Results, error) {
	def, ok := lookupPhaseDef(name)
	if !ok {
		return nil, fmt.Errorf("unknown phase %q (want one of %v)", name, Phases())
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s phase: %w", name, err)
	}

	categories, err := def.run(r)
	if err != nil {
		return nil, fmt.Errorf("%s phase: %w", name, err)
	}

	res := &Results{RunID: uuid.New().String(), Title: def.Title, TitleAr: def.TitleAr}
	for _, c := range categories {
		res.add(c)
	}

	r.logger.Info().
		Str("run_id", res.RunID).
		Str("phase", name).
		Int("categories", len(res.Categories)).
		Int("total_scenarios", res.Total()).
		Msg("phase complete")

	return res, nil
}

// fixed tags variant-independent results as records of one category.
func fixed[T any](category string, results []T) []Record {
	out := make([]Record, 0, len(results))
	for _, res := range results {
		out = append(out, Record{Category: category, Variant: refdata.NoVariant, Result: res})
	}
	return out
}

// SettlementRegionIncome is a settlement system's net user income in one
// region at one token price.
type SettlementRegionIncome struct {
	engine.SettlementIncomeResult
	Region     string  `json:"region"`
	RegionKey  string  `json:"region_key"`
	RegionAr   string  `json:"region_ar"`
	TokenPrice float64 `json:"token_price"`
}

// settlementPhase compares payout systems: net income for every system,
// region and token price variant, then one score per system.
func settlementPhase(r *Runner) ([]CategoryResults, error) {
	monthlyElectricity := func(region refdata.Region) float64 {
		return engine.DeviceDailyKWh() * region.ElectricityCostKWh * refdata.DaysPerMonth
	}

	var income []Record
	for _, sys := range r.catalog.SettlementSystems {
		for _, region := range r.catalog.Regions {
			elec := monthlyElectricity(region)
			for _, v := range refdata.AllVariants() {
				price := r.variants.TokenPrice[v]
				gross := refdata.NightlyHours * price * refdata.DaysPerMonth
				income = append(income, Record{
					Category: CategorySettlementIncome,
					Variant:  v,
					Result: SettlementRegionIncome{
						SettlementIncomeResult: engine.SettlementIncome(sys, gross, elec),
						Region:                 region.Name,
						RegionKey:              region.Key,
						RegionAr:               region.NameAr,
						TokenPrice:             price,
					},
				})
			}
		}
	}

	scores := make([]engine.SettlementScoreResult, 0, len(r.catalog.SettlementSystems))
	for _, sys := range r.catalog.SettlementSystems {
		scores = append(scores, engine.SettlementScore(sys))
	}

	return []CategoryResults{
		{
			Key: CategorySettlementIncome, Title: "Settlement Income Comparison", TitleAr: "مقارنة دخل التسوية",
			Records: income,
		},
		{
			Key: CategorySettlementScore, Title: "Settlement System Scores", TitleAr: "تقييم أنظمة التسوية",
			Records: fixed(CategorySettlementScore, scores),
		},
	}, nil
}

// regionalPhase projects each regional market bloc at its estimated
// adoption.
func regionalPhase(r *Runner) ([]CategoryResults, error) {
	markets := make([]engine.RegionalMarketResult, 0, len(r.catalog.RegionalProfiles))
	for _, p := range r.catalog.RegionalProfiles {
		markets = append(markets, engine.RegionalMarket(p))
	}
	return []CategoryResults{{
		Key: CategoryRegional, Title: "Regional Market Deep Dive", TitleAr: "تحليل الأسواق الإقليمية",
		Records: fixed(CategoryRegional, markets),
	}}, nil
}
