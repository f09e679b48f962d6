package engine

// RiskResult quantifies one risk factor against a base value.
type RiskResult struct {
	RiskName       string  `json:"risk_name"`
	RiskNameAr     string  `json:"risk_name_ar"`
	RiskCategory   string  `json:"risk_category"`
	BaseValue      float64 `json:"base_value"`
	ImpactPct      float64 `json:"impact_pct"`
	ProbabilityPct float64 `json:"probability_pct"`
	PotentialLoss  float64 `json:"potential_loss"`
	ExpectedLoss   float64 `json:"expected_loss"`
	Severity       string  `json:"severity"`
}

// Severity labels, from worst to mildest.
const (
	SeverityCritical = "🔴 Critical"
	SeverityHigh     = "🟠 High"
	SeverityMedium   = "🟡 Medium"
	SeverityLow      = "🟢 Low"
)

// Severity thresholds as fractions of the base value. Comparisons are
// strict: an expected loss equal to a threshold falls into the milder band.
const (
	criticalThreshold = 0.30
	highThreshold     = 0.15
	mediumThreshold   = 0.05
)

// RiskSeverity classifies an expected loss relative to base.
func RiskSeverity(expectedLoss, base float64) string {
	switch {
	case expectedLoss > base*criticalThreshold:
		return SeverityCritical
	case expectedLoss > base*highThreshold:
		return SeverityHigh
	case expectedLoss > base*mediumThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Risk computes potential loss (base × impact) and expected loss (potential
// × probability) for a named risk. impact and probability are fractions.
func Risk(name, nameAr string, base, impact, probability float64, category string) RiskResult {
	potential := base * impact
	expected := potential * probability

	return RiskResult{
		RiskName:       name,
		RiskNameAr:     nameAr,
		RiskCategory:   category,
		BaseValue:      base,
		ImpactPct:      impact * 100,
		ProbabilityPct: probability * 100,
		PotentialLoss:  potential,
		ExpectedLoss:   expected,
		Severity:       RiskSeverity(expected, base),
	}
}
