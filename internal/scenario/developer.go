package scenario

import (
	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Developer phase category keys.
const (
	CategoryDeveloperPricing = "developer_pricing"
	CategoryDeveloperCosts   = "developer_costs"
	CategoryTokenLifecycle   = "token_lifecycle"
	CategoryDeveloperDemand  = "developer_demand"
)

// developerPhase prices developer workloads, bills the reference use cases,
// projects each token model and sizes demand by developer segment.
func developerPhase(r *Runner) ([]CategoryResults, error) {
	c := r.catalog

	pricing := make([]engine.DeveloperPricingResult, 0, len(c.DeveloperTasks))
	for _, t := range c.DeveloperTasks {
		pricing = append(pricing, engine.DeveloperPricing(t))
	}

	costs := make([]engine.DeveloperCostResult, 0, len(c.DeveloperUseCases))
	for _, uc := range c.DeveloperUseCases {
		res, err := engine.DeveloperCosts(uc, c.DeveloperTask)
		if err != nil {
			return nil, err
		}
		costs = append(costs, res)
	}

	var lifecycle []engine.TokenYearResult
	for _, m := range c.TokenModels {
		lifecycle = append(lifecycle, engine.TokenLifecycle(m, refdata.DeveloperMonthlyDemand, refdata.SimulationYears)...)
	}

	return []CategoryResults{
		{
			Key: CategoryDeveloperPricing, Title: "Developer Task Pricing", TitleAr: "تسعير مهام المطورين",
			Records: fixed(CategoryDeveloperPricing, pricing),
		},
		{
			Key: CategoryDeveloperCosts, Title: "Developer Use Case Costs", TitleAr: "تكاليف حالات الاستخدام",
			Records: fixed(CategoryDeveloperCosts, costs),
		},
		{
			Key: CategoryTokenLifecycle, Title: "Token Lifecycle", TitleAr: "دورة حياة التوكن",
			Records: fixed(CategoryTokenLifecycle, lifecycle),
		},
		{
			Key: CategoryDeveloperDemand, Title: "Platform Demand by Segment", TitleAr: "الطلب على المنصة حسب الفئة",
			Records: fixed(CategoryDeveloperDemand, engine.PlatformDemand(c.DeveloperSegments)),
		},
	}, nil
}
