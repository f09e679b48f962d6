package engine

import "github.com/rshade/nhp-simulation/internal/refdata"

// RegionalMarketResult is the deep-dive projection for one market bloc.
type RegionalMarketResult struct {
	Region           string  `json:"region"`
	RegionAr         string  `json:"region_ar"`
	Flag             string  `json:"flag"`
	Population       int64   `json:"population"`
	Smartphones      int64   `json:"smartphones"`
	AvgIncome        float64 `json:"avg_income"`
	ElectricityKWh   float64 `json:"electricity_kwh"`
	WiFiPenetration  float64 `json:"wifi_penetration"`
	Regulation       string  `json:"regulation"`
	NHPIncome        float64 `json:"nhp_income"`
	AdoptionEst      float64 `json:"adoption_est"`
	NHPDevices       int64   `json:"nhp_devices"`
	MonthlyPayouts   float64 `json:"monthly_payouts"`
	AnnualPayouts    float64 `json:"annual_payouts"`
	PlatformMonthly  float64 `json:"platform_monthly"`
	ElecCostUser     float64 `json:"elec_cost_user"`
	NetIncome        float64 `json:"net_income"`
	PctOfIncome      float64 `json:"pct_of_income"`
	OpportunityScore int     `json:"opportunity_score"`
	TopBrands        string  `json:"top_brands"`
	Payment          string  `json:"payment"`
	StrategicNotes   string  `json:"strategic_notes"`
	StrategicNotesAr string  `json:"strategic_notes_ar"`
	Risks            string  `json:"risks"`
}

// regionalNightlyKWh is the per-phone nightly draw assumed by the regional
// deep dives: 3.5 W over a 5-hour window.
const regionalNightlyKWh = 0.0175

// RegionalMarket projects devices, payouts and platform revenue for a market
// bloc at its estimated adoption. Payouts are the users' 85% share, so the
// platform's 15% is grossed up from them.
func RegionalMarket(p refdata.RegionalProfile) RegionalMarketResult {
	devices := int64(float64(p.Smartphones) * p.AdoptionEst)
	payouts := float64(devices) * p.NHPIncome
	platform := payouts * refdata.PlatformCut / (1 - refdata.PlatformCut)
	elec := regionalNightlyKWh * p.ElectricityKWh * refdata.DaysPerMonth

	var pct float64
	if p.AvgIncome > 0 {
		pct = p.NHPIncome / p.AvgIncome * 100
	}

	return RegionalMarketResult{
		Region:           p.Name,
		RegionAr:         p.NameAr,
		Flag:             p.Flag,
		Population:       p.Population,
		Smartphones:      p.Smartphones,
		AvgIncome:        p.AvgIncome,
		ElectricityKWh:   p.ElectricityKWh,
		WiFiPenetration:  p.WiFiPenetration,
		Regulation:       p.Regulation,
		NHPIncome:        p.NHPIncome,
		AdoptionEst:      p.AdoptionEst,
		NHPDevices:       devices,
		MonthlyPayouts:   payouts,
		AnnualPayouts:    payouts * refdata.MonthsPerYear,
		PlatformMonthly:  platform,
		ElecCostUser:     elec,
		NetIncome:        p.NHPIncome - elec,
		PctOfIncome:      pct,
		OpportunityScore: p.OpportunityScore,
		TopBrands:        p.TopBrands,
		Payment:          p.Payment,
		StrategicNotes:   p.StrategicNotes,
		StrategicNotesAr: p.StrategicNotesAr,
		Risks:            p.Risks,
	}
}
