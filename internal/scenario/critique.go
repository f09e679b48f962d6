package scenario

import "github.com/rshade/nhp-simulation/internal/engine"

// Critique phase category keys.
const (
	CategoryCritiquePricing  = "critique_pricing"
	CategoryCritiqueThermal  = "critique_thermal"
	CategoryCritiqueIndia    = "critique_india"
	CategoryCritiquePayments = "critique_payments"
	CategoryCritiqueNPU      = "critique_npu"
	CategoryCritiqueRivals   = "critique_rivals"
	CategoryCritiqueStress   = "critique_stress"
)

// critiquePhase answers the common objections: realistic prices, thermal
// limits, an India-first launch, the payment chain, NPU offload, live
// rivals and a worst-case stress test.
func critiquePhase(r *Runner) ([]CategoryResults, error) {
	c := r.catalog

	prices := make([]engine.PriceCheckResult, 0, len(c.PriceScenarios))
	for _, p := range c.PriceScenarios {
		prices = append(prices, engine.PriceCheck(p, c.India))
	}

	thermal := make([]engine.ThermalResult, 0, len(c.ThermalProfiles))
	for _, p := range c.ThermalProfiles {
		thermal = append(thermal, engine.Thermal(p))
	}

	india := make([]engine.IndiaAdoptionResult, 0, len(c.IndiaAdoption))
	for _, level := range c.IndiaAdoption {
		india = append(india, engine.IndiaAdoption(level, c.India))
	}

	flows := make([]engine.PaymentFlowResult, 0, len(c.DeveloperSpends))
	for _, spend := range c.DeveloperSpends {
		flows = append(flows, engine.PaymentFlow(spend))
	}

	npu := make([]engine.NPUEfficiencyResult, 0, len(c.NPUChips))
	for _, chip := range c.NPUChips {
		npu = append(npu, engine.NPUEfficiency(chip))
	}

	rivals := make([]engine.RivalResult, 0, len(c.DistributedRivals))
	for _, rival := range c.DistributedRivals {
		rivals = append(rivals, engine.Rival(rival))
	}

	stress := make([]engine.StressResult, 0, len(c.StressFactors))
	for _, f := range c.StressFactors {
		stress = append(stress, engine.Stress(f))
	}

	return []CategoryResults{
		{
			Key: CategoryCritiquePricing, Title: "Realistic Pricing", TitleAr: "تسعير واقعي",
			Records: fixed(CategoryCritiquePricing, prices),
		},
		{
			Key: CategoryCritiqueThermal, Title: "Thermal Constraints", TitleAr: "القيود الحرارية",
			Records: fixed(CategoryCritiqueThermal, thermal),
		},
		{
			Key: CategoryCritiqueIndia, Title: "India-First Market", TitleAr: "السوق الهندي أولاً",
			Records: fixed(CategoryCritiqueIndia, india),
		},
		{
			Key: CategoryCritiquePayments, Title: "Payment Flow Economics", TitleAr: "اقتصاديات تدفق المدفوعات",
			Records: fixed(CategoryCritiquePayments, flows),
		},
		{
			Key: CategoryCritiqueNPU, Title: "NPU vs GPU Efficiency", TitleAr: "كفاءة NPU مقابل GPU",
			Records: fixed(CategoryCritiqueNPU, npu),
		},
		{
			Key: CategoryCritiqueRivals, Title: "Distributed Compute Rivals", TitleAr: "منافسو الحوسبة الموزعة",
			Records: fixed(CategoryCritiqueRivals, rivals),
		},
		{
			Key: CategoryCritiqueStress, Title: "Worst-Case Stress Test", TitleAr: "اختبار أسوأ الحالات",
			Records: fixed(CategoryCritiqueStress, stress),
		},
	}, nil
}
