package refdata

import "fmt"

// Variant identifies one of the four severity scenarios.
type Variant int

// Variants in their canonical order. Every per-variant array is indexed by
// these values.
const (
	Optimistic Variant = iota
	Moderate
	Pessimistic
	Catastrophic
)

// NumVariants is the number of severity variants.
const NumVariants = 4

// NoVariant marks results that do not depend on a variant, such as
// settlement scores and regional profiles.
const NoVariant Variant = -1

var (
	variantNames   = [NumVariants]string{"Optimistic", "Moderate", "Pessimistic", "Catastrophic"}
	variantNamesAr = [NumVariants]string{"متفائل", "معتدل", "متشائم", "كارثي"}
	variantEmojis  = [NumVariants]string{"🟢", "🔵", "🟠", "🔴"}
	variantColors  = [NumVariants]string{"#2ECC71", "#3498DB", "#E67E22", "#E74C3C"}
)

// AllVariants returns the variants in canonical order.
func AllVariants() [NumVariants]Variant {
	return [NumVariants]Variant{Optimistic, Moderate, Pessimistic, Catastrophic}
}

// Valid reports whether v is one of the four defined variants.
func (v Variant) Valid() bool {
	return v >= Optimistic && v <= Catastrophic
}

// String returns the English variant name.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Arabic returns the Arabic variant name.
func (v Variant) Arabic() string {
	if !v.Valid() {
		return ""
	}
	return variantNamesAr[v]
}

// Emoji returns the marker used for the variant in reports.
func (v Variant) Emoji() string {
	if !v.Valid() {
		return ""
	}
	return variantEmojis[v]
}

// Color returns the hex chart color for the variant (e.g., "#3498DB").
func (v Variant) Color() string {
	if !v.Valid() {
		return "#7F8C8D"
	}
	return variantColors[v]
}

// ParseVariant resolves an English variant name, case-sensitive.
func ParseVariant(name string) (Variant, bool) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// VariantSet holds the per-variant input assumptions. Each array is indexed
// by Variant, so all of them share the same ordering and length.
type VariantSet struct {
	// Uptime is the fraction of devices actively computing.
	Uptime [NumVariants]float64

	// Coverage is the fraction of AI requests served by NHP.
	Coverage [NumVariants]float64

	// Growth is the annual network growth rate (3.0 means +300%).
	Growth [NumVariants]float64

	// TokenPrice is the USD reward per device GPU-hour.
	TokenPrice [NumVariants]float64

	// DCReplaced is the number of datacenters displaced.
	DCReplaced [NumVariants]float64

	// Overhead is the NHP coordination overhead fraction.
	Overhead [NumVariants]float64
}

// DefaultVariants returns the built-in variant assumptions.
func DefaultVariants() VariantSet {
	return VariantSet{
		Uptime:     [NumVariants]float64{0.40, 0.25, 0.10, 0.03},
		Coverage:   [NumVariants]float64{0.70, 0.40, 0.15, 0.05},
		Growth:     [NumVariants]float64{3.0, 1.5, 0.5, 0.1},
		TokenPrice: [NumVariants]float64{0.50, 0.20, 0.08, 0.02},
		DCReplaced: [NumVariants]float64{10, 5, 2, 0.5},
		Overhead:   [NumVariants]float64{0.10, 0.20, 0.35, 0.50},
	}
}

// Per-variant multipliers used by individual scenario categories.
var (
	// BatteryHourScale scales nightly compute hours in battery scenarios.
	BatteryHourScale = [NumVariants]float64{1.0, 0.8, 0.5, 0.3}

	// MarketPenetration is the NHP adoption rate used in market sizing.
	MarketPenetration = [NumVariants]float64{0.10, 0.05, 0.02, 0.005}

	// BreakevenDevCost is the one-time integration cost in USD.
	BreakevenDevCost = [NumVariants]float64{50_000_000, 30_000_000, 20_000_000, 10_000_000}

	// RiskSeverity scales both impact and probability in risk scenarios.
	RiskSeverity = [NumVariants]float64{1.0, 0.7, 0.4, 0.2}
)

// Fixed scenario inputs.
const (
	// BreakevenMonthlyOps is the monthly NHP operating cost in breakeven scenarios.
	BreakevenMonthlyOps = 2_000_000.0

	// RiskBaseValue is the annual savings figure risks are measured against
	// (moderate Samsung savings).
	RiskBaseValue = 64_000_000.0

	// CompetitiveDevices and CompetitiveAvgTOPS describe the reference NHP
	// fleet compared against competitors.
	CompetitiveDevices = 300_000_000
	CompetitiveAvgTOPS = 20.0

	// TaskReferenceUptime is the uptime of the Samsung reference fleet used
	// for task feasibility.
	TaskReferenceUptime = 0.25

	// ReferenceCloudKey is the cloud used by savings and breakeven scenarios.
	ReferenceCloudKey = "aws_a100"

	// TaskReferenceManufacturer is the fleet used for task feasibility.
	TaskReferenceManufacturer = "samsung"

	// FocusRegionKey is the region highlighted in settlement summaries.
	FocusRegionKey = "usa"
)

// TokenScales are the network sizes used by token economics scenarios.
var TokenScales = []int64{1_000_000, 10_000_000, 100_000_000, 500_000_000, 1_000_000_000}

// Alliances lists manufacturer groupings by key, in scenario order.
var Alliances = [][]string{
	{"samsung", "apple"},
	{"samsung", "xiaomi"},
	{"samsung", "apple", "xiaomi"},
	{"samsung", "apple", "xiaomi", "google", "huawei"},
	{"samsung", "apple", "xiaomi", "google", "huawei", "oppo", "vivo"},
}
