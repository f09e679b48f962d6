package engine

import (
	"math"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// PriceCheckResult is what a user and the platform earn at one price point
// in the Indian market.
type PriceCheckResult struct {
	Label            string  `json:"label"`
	LabelAr          string  `json:"label_ar"`
	GPUHourPrice     float64 `json:"gpu_hour_price"`
	Rationale        string  `json:"rationale"`
	DailyNet         float64 `json:"daily_net"`
	MonthlyUSD       float64 `json:"monthly_usd"`
	MonthlyINR       float64 `json:"monthly_inr"`
	AnnualUSD        float64 `json:"annual_usd"`
	PctIndiaIncome   float64 `json:"pct_india_income"`
	PlatformMonthly  float64 `json:"platform_monthly_100m"`
	UserPayoutsFleet float64 `json:"user_payouts_100m"`
	ViableForUsers   bool    `json:"viable"`
}

// PriceCheck evaluates a price scenario for an NPU-class phone on Indian
// electricity, then scales it to refdata.CritiqueFleetDevices.
func PriceCheck(p refdata.PriceScenario, india refdata.IndiaMarket) PriceCheckResult {
	dailyKWh := refdata.CritiqueExtraWatt * refdata.NightlyHours / 1000.0
	dailyGross := refdata.NightlyHours * p.GPUHourPrice
	dailyNet := dailyGross - dailyKWh*india.ElectricityKWh
	monthly := dailyNet * refdata.DaysPerMonth

	var pct float64
	if india.AvgIncome > 0 {
		pct = monthly / india.AvgIncome * 100
	}

	fleet := float64(refdata.CritiqueFleetDevices)
	return PriceCheckResult{
		Label:            p.Label,
		LabelAr:          p.LabelAr,
		GPUHourPrice:     p.GPUHourPrice,
		Rationale:        p.Rationale,
		DailyNet:         dailyNet,
		MonthlyUSD:       monthly,
		MonthlyINR:       monthly * refdata.USDToINR,
		AnnualUSD:        monthly * refdata.MonthsPerYear,
		PctIndiaIncome:   pct,
		PlatformMonthly:  fleet * dailyGross * refdata.DaysPerMonth * refdata.PlatformCut,
		UserPayoutsFleet: fleet * monthly,
		ViableForUsers:   monthly > refdata.ViableMonthlyIncome,
	}
}

// ThermalResult is how long a phone can sustain NHP load before throttling.
type ThermalResult struct {
	Phone          string  `json:"phone"`
	PeakTOPS       float64 `json:"peak_tops"`
	SustainedTOPS  float64 `json:"sustained_tops"`
	EfficiencyPct  float64 `json:"efficiency_pct"`
	TDPWatt        float64 `json:"tdp_watt"`
	AmbientC       float64 `json:"ambient_c"`
	ThrottleTempC  float64 `json:"throttle_temp_c"`
	FinalTempC     float64 `json:"final_temp_c"`
	Safe           bool    `json:"safe"`
	LoadPct        float64 `json:"nhp_load_pct"`
	EffectiveHours float64 `json:"effective_hours"`
	HeatWh         float64 `json:"heat_wh"`
	Cooling        string  `json:"cooling"`
}

// Thermal estimates a phone's temperature at full load and the load the
// scheduler must cap it to in order to stay under the throttle point.
func Thermal(p refdata.ThermalProfile) ThermalResult {
	rise := p.TDPWatt * refdata.DegreesPerWatt
	final := p.AmbientC + rise

	load := 100.0
	if rise > 0 {
		load = math.Min(100, (p.ThrottleTempC-p.AmbientC)/rise*100)
	}

	var eff float64
	if p.PeakTOPS > 0 {
		eff = p.MaxSustainedTOPS / p.PeakTOPS * 100
	}

	return ThermalResult{
		Phone:          p.Phone,
		PeakTOPS:       p.PeakTOPS,
		SustainedTOPS:  p.MaxSustainedTOPS,
		EfficiencyPct:  eff,
		TDPWatt:        p.TDPWatt,
		AmbientC:       p.AmbientC,
		ThrottleTempC:  p.ThrottleTempC,
		FinalTempC:     final,
		Safe:           final < p.ThrottleTempC+refdata.ThermalMarginC,
		LoadPct:        load,
		EffectiveHours: refdata.NightlyHours * load / 100,
		HeatWh:         p.TDPWatt * refdata.NightlyHours,
		Cooling:        p.Cooling,
	}
}

// IndiaAdoptionResult is the payout flow at one Indian adoption level.
type IndiaAdoptionResult struct {
	Label            string  `json:"label"`
	AdoptionPct      float64 `json:"adoption_pct"`
	Devices          int64   `json:"devices"`
	MonthlyPerUser   float64 `json:"monthly_per_user"`
	MonthlyINR       float64 `json:"monthly_inr"`
	MonthlyPayouts   float64 `json:"total_monthly_payouts"`
	PlatformMonthly  float64 `json:"platform_monthly"`
	AnnualGDPImpact  float64 `json:"annual_gdp_impact"`
	PctIncomeBoost   float64 `json:"pct_income_boost"`
	FamiliesImpacted int64   `json:"families_impacted"`
}

// IndiaAdoption sizes payouts when the given share of Indian smartphones
// join. Payouts are the users' share, so the platform cut is grossed up.
func IndiaAdoption(level refdata.AdoptionLevel, india refdata.IndiaMarket) IndiaAdoptionResult {
	devices := int64(float64(india.Smartphones) * level.Pct / 100)
	payouts := float64(devices) * india.MonthlyPerUser

	var boost float64
	if india.AvgIncome > 0 {
		boost = india.MonthlyPerUser / india.AvgIncome * 100
	}

	return IndiaAdoptionResult{
		Label:            level.Label,
		AdoptionPct:      level.Pct,
		Devices:          devices,
		MonthlyPerUser:   india.MonthlyPerUser,
		MonthlyINR:       india.MonthlyPerUser * refdata.USDToINR,
		MonthlyPayouts:   payouts,
		PlatformMonthly:  payouts * refdata.PlatformCut / (1 - refdata.PlatformCut),
		AnnualGDPImpact:  payouts * refdata.MonthsPerYear,
		PctIncomeBoost:   boost,
		FamiliesImpacted: int64(float64(devices) * india.NearPovertyRate),
	}
}

// PaymentFlowResult traces one developer's monthly spend to users.
type PaymentFlowResult struct {
	DeveloperSpend    float64 `json:"dev_monthly_spend"`
	PlatformGross     float64 `json:"platform_gross"`
	InfraCost         float64 `json:"infra_cost"`
	NetPlatformProfit float64 `json:"net_platform_profit"`
	UserPool          float64 `json:"user_pool"`
	PaymentFees       float64 `json:"payment_fees"`
	NetToUsers        float64 `json:"net_to_users"`
	UsersServed       int64   `json:"users_served"`
	PlatformMarginPct float64 `json:"platform_margin_pct"`
}

// PaymentFlow splits developer spend into the platform cut and the user
// pool, then takes processing fees from the pool and routing costs from
// the platform.
func PaymentFlow(spend float64) PaymentFlowResult {
	platform := spend * refdata.PlatformCut
	pool := spend * (1 - refdata.PlatformCut)
	fee := pool * refdata.PaymentProcessingFee
	net := pool - fee
	infra := spend * refdata.InfraCostShare
	profit := platform - infra

	var margin float64
	if platform > 0 {
		margin = profit / platform * 100
	}

	return PaymentFlowResult{
		DeveloperSpend:    spend,
		PlatformGross:     platform,
		InfraCost:         infra,
		NetPlatformProfit: profit,
		UserPool:          pool,
		PaymentFees:       fee,
		NetToUsers:        net,
		UsersServed:       int64(net / refdata.PerUserMonthlyPayout),
		PlatformMarginPct: margin,
	}
}

// NPUEfficiencyResult compares a chip's GPU and NPU per watt.
type NPUEfficiencyResult struct {
	Chip             string  `json:"chip"`
	GPUTOPS          float64 `json:"gpu_tops"`
	NPUTOPS          float64 `json:"npu_tops"`
	GPUTOPSPerWatt   float64 `json:"gpu_tops_per_watt"`
	NPUTOPSPerWatt   float64 `json:"npu_tops_per_watt"`
	EfficiencyGain   float64 `json:"efficiency_gain_pct"`
	GPUHeatWh        float64 `json:"gpu_heat_wh"`
	NPUHeatWh        float64 `json:"npu_heat_wh"`
	HeatReductionPct float64 `json:"heat_reduction_pct"`
	NPUTasks         string  `json:"npu_tasks"`
}

// NPUEfficiency compares the chip's GPU and NPU over one nightly window.
// Chips with no GPU draw or rating report zero gain and reduction.
func NPUEfficiency(c refdata.NPUChip) NPUEfficiencyResult {
	var gpuPerW, npuPerW float64
	if c.GPUWatt > 0 {
		gpuPerW = c.GPUTOPS / c.GPUWatt
	}
	if c.NPUWatt > 0 {
		npuPerW = c.NPUTOPS / c.NPUWatt
	}
	gpuHeat := c.GPUWatt * refdata.NightlyHours
	npuHeat := c.NPUWatt * refdata.NightlyHours

	var gain, reduction float64
	if gpuPerW > 0 {
		gain = (npuPerW/gpuPerW - 1) * 100
	}
	if gpuHeat > 0 {
		reduction = (1 - npuHeat/gpuHeat) * 100
	}

	return NPUEfficiencyResult{
		Chip:             c.Chip,
		GPUTOPS:          c.GPUTOPS,
		NPUTOPS:          c.NPUTOPS,
		GPUTOPSPerWatt:   gpuPerW,
		NPUTOPSPerWatt:   npuPerW,
		EfficiencyGain:   gain,
		GPUHeatWh:        gpuHeat,
		NPUHeatWh:        npuHeat,
		HeatReductionPct: reduction,
		NPUTasks:         c.NPUTasks,
	}
}

// RivalResult is a distributed-compute project as reported.
type RivalResult struct {
	Name         string `json:"name"`
	Devices      string `json:"devices"`
	UserIncome   string `json:"user_income"`
	DeviceType   string `json:"device_type"`
	Founded      int    `json:"founded"`
	RevenueEst   string `json:"revenue_est"`
	NHPAdvantage string `json:"nhp_advantage"`
}

// Rival passes a rival's published figures through as a result row.
func Rival(r refdata.DistributedRival) RivalResult {
	return RivalResult(r)
}

// StressResult is one assumption of the worst-case stress test.
type StressResult struct {
	Factor string `json:"factor"`
	Normal string `json:"normal"`
	Worst  string `json:"worst"`
}

// Stress passes a stress assumption through as a result row.
func Stress(f refdata.StressFactor) StressResult {
	return StressResult(f)
}
