package engine

import (
	"math"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// SettlementIncomeResult is a user's monthly income after payout fees.
type SettlementIncomeResult struct {
	System          string  `json:"system"`
	SystemAr        string  `json:"system_ar"`
	SystemCategory  string  `json:"system_category"`
	GrossMonthly    float64 `json:"gross_monthly"`
	TxFee           float64 `json:"tx_fee"`
	FeePct          float64 `json:"fee_pct"`
	Electricity     float64 `json:"electricity"`
	NetMonthly      float64 `json:"net_monthly"`
	NetAnnual       float64 `json:"net_annual"`
	SettlementHours float64 `json:"settlement_hours"`
	Difficulty      string  `json:"difficulty"`
	MfgAcceptance   string  `json:"mfg_acceptance"`
}

// SettlementIncome applies a settlement system's fees to one monthly payout
// of grossMonthly and subtracts electricity.
func SettlementIncome(sys refdata.SettlementSystem, grossMonthly, monthlyElectricity float64) SettlementIncomeResult {
	fee := grossMonthly*sys.TxFeePct/100 + sys.TxFeeFixed
	net := grossMonthly - fee - monthlyElectricity

	var feePct float64
	if grossMonthly > 0 {
		feePct = fee / grossMonthly * 100
	}

	return SettlementIncomeResult{
		System:          sys.Name,
		SystemAr:        sys.NameAr,
		SystemCategory:  sys.Category,
		GrossMonthly:    grossMonthly,
		TxFee:           fee,
		FeePct:          feePct,
		Electricity:     monthlyElectricity,
		NetMonthly:      net,
		NetAnnual:       net * refdata.MonthsPerYear,
		SettlementHours: sys.SettlementHours,
		Difficulty:      sys.UserDifficulty,
		MfgAcceptance:   sys.MfgAcceptance,
	}
}

// SettlementScoreResult rates a settlement system on a 0-100 scale.
type SettlementScoreResult struct {
	System          string  `json:"system"`
	SystemAr        string  `json:"system_ar"`
	SystemCategory  string  `json:"system_category"`
	UXScore         float64 `json:"ux_score"`
	MfgScore        float64 `json:"mfg_score"`
	RegScore        float64 `json:"reg_score"`
	FeeScore        float64 `json:"fee_score"`
	SpeedScore      float64 `json:"speed_score"`
	ReachScore      float64 `json:"reach_score"`
	OverallScore    float64 `json:"overall_score"`
	TxFeePct        float64 `json:"tx_fee_pct"`
	TxFeeFixed      float64 `json:"tx_fee_fixed"`
	SettlementHours float64 `json:"settlement_hours"`
	Difficulty      string  `json:"difficulty"`
	MfgAcceptance   string  `json:"mfg_acceptance"`
	RegulatoryRisk  string  `json:"regulatory_risk"`
	AvailableCount  int     `json:"available_count"`
	BlockedCount    int     `json:"blocked_count"`
	RequiresBank    bool    `json:"requires_bank"`
	RequiresWallet  bool    `json:"requires_wallet"`
	RequiresKYC     bool    `json:"requires_kyc"`
	OnboardingSteps int     `json:"onboarding_steps"`
}

var (
	uxScores  = map[string]float64{"Easy": 95, "Medium": 60, "Hard": 30}
	mfgScores = map[string]float64{"High": 90, "Medium": 55, "Low": 20}
	regScores = map[string]float64{"Low": 90, "Medium": 50, "High": 15}
)

// Score weights; they sum to 1.
const (
	weightUX    = 0.25
	weightMfg   = 0.25
	weightReg   = 0.15
	weightFee   = 0.15
	weightSpeed = 0.10
	weightReach = 0.10

	// reachRegions is the number of regions a system must serve for full reach.
	reachRegions = 10
)

// SettlementScore rates a settlement system on user experience, manufacturer
// acceptance, regulatory risk, fees, payout speed and regional reach.
// Unknown difficulty, acceptance or risk labels score 0 on that axis.
func SettlementScore(sys refdata.SettlementSystem) SettlementScoreResult {
	ux := uxScores[sys.UserDifficulty]
	mfg := mfgScores[sys.MfgAcceptance]
	reg := regScores[sys.RegulatoryRisk]
	fee := math.Max(0, 100-(sys.TxFeePct+sys.TxFeeFixed)*20)

	var speed float64
	switch {
	case sys.SettlementHours < 1:
		speed = 100
	case sys.SettlementHours < 24:
		speed = 60
	default:
		speed = 30
	}

	reach := float64(len(sys.AvailableRegions)) / reachRegions * 100

	overall := ux*weightUX + mfg*weightMfg + reg*weightReg +
		fee*weightFee + speed*weightSpeed + reach*weightReach

	return SettlementScoreResult{
		System:          sys.Name,
		SystemAr:        sys.NameAr,
		SystemCategory:  sys.Category,
		UXScore:         ux,
		MfgScore:        mfg,
		RegScore:        reg,
		FeeScore:        fee,
		SpeedScore:      speed,
		ReachScore:      reach,
		OverallScore:    overall,
		TxFeePct:        sys.TxFeePct,
		TxFeeFixed:      sys.TxFeeFixed,
		SettlementHours: sys.SettlementHours,
		Difficulty:      sys.UserDifficulty,
		MfgAcceptance:   sys.MfgAcceptance,
		RegulatoryRisk:  sys.RegulatoryRisk,
		AvailableCount:  len(sys.AvailableRegions),
		BlockedCount:    len(sys.BlockedRegions),
		RequiresBank:    sys.RequiresBankAccount,
		RequiresWallet:  sys.RequiresCryptoWallet,
		RequiresKYC:     sys.RequiresKYC,
		OnboardingSteps: sys.OnboardingSteps,
	}
}
