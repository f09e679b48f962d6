package scenario

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// categoryDef names a category and the function that generates it.
type categoryDef struct {
	Key     string
	Title   string
	TitleAr string
	run     categoryFunc
}

// categoryDefs lists every category in run order.
var categoryDefs = []categoryDef{
	{"A", "Computing Power per Manufacturer", "القوة الحسابية لكل مصنّع", (*Runner).fleetPower},
	{"B", "NHP vs Cloud Providers", "مقارنة مع مزودي السحابة", (*Runner).cloudComparison},
	{"C", "User Income by Region", "دخل المستخدم حسب المنطقة", (*Runner).userIncome},
	{"D", "Manufacturer AI Savings vs AWS", "توفير المصنّع مقارنة بـ AWS", (*Runner).manufacturerSavings},
	{"E", "Environmental Impact", "الأثر البيئي", (*Runner).environmental},
	{"F", "Network Alliance Power", "قوة التحالفات", (*Runner).alliances},
	{"G", "AI Task Feasibility", "جدوى المهام الحسابية", (*Runner).taskFeasibility},
	{"H", "Battery Impact", "تأثير البطارية", (*Runner).battery},
	{"I", "Market Size", "حجم السوق", (*Runner).marketSize},
	{"J", "Token Economics", "اقتصاد التوكن", (*Runner).tokenEconomics},
	{"K", "Competitive Positioning", "الموقع التنافسي", (*Runner).competitive},
	{"L", "Breakeven Analysis", "تحليل نقطة التعادل", (*Runner).breakeven},
	{"M", "Risk Analysis", "تحليل المخاطر", (*Runner).risk},
	{"N", "Network Growth", "نمو الشبكة", (*Runner).growth},
}

func lookupCategoryDef(key string) (categoryDef, bool) {
	for _, def := range categoryDefs {
		if def.Key == key {
			return def, true
		}
	}
	return categoryDef{}, false
}

// CategoryKeys returns the category keys in run order.
func CategoryKeys() []string {
	keys := make([]string, len(categoryDefs))
	for i, def := range categoryDefs {
		keys[i] = def.Key
	}
	return keys
}

// TokenScenario is a token economics result labelled with its network size.
type TokenScenario struct {
	engine.TokenEconomicsResult
	ScaleLabel string `json:"scale_label"`
}

// ScaleLabel formats a network size, e.g. "1,000,000 devices".
func ScaleLabel(devices int64) string {
	return humanize.Comma(devices) + " devices"
}

func (r *Runner) fleetPower() ([]Record, error) {
	var out []Record
	for _, mfg := range r.catalog.Manufacturers {
		for _, v := range refdata.AllVariants() {
			out = append(out, Record{"A", v, engine.FleetPower(mfg, r.variants.Uptime[v])})
		}
	}
	return out, nil
}

func (r *Runner) cloudComparison() ([]Record, error) {
	var out []Record
	for _, mfg := range r.catalog.Manufacturers {
		for _, cloud := range r.pricing.Providers() {
			for _, v := range refdata.AllVariants() {
				out = append(out, Record{"B", v, engine.CostComparison(mfg, cloud, r.variants.Coverage[v])})
			}
		}
	}
	return out, nil
}

func (r *Runner) userIncome() ([]Record, error) {
	var out []Record
	for _, region := range r.catalog.Regions {
		for _, v := range refdata.AllVariants() {
			out = append(out, Record{"C", v, engine.UserIncome(region, r.variants.TokenPrice[v])})
		}
	}
	return out, nil
}

func (r *Runner) manufacturerSavings() ([]Record, error) {
	cloud, err := r.referenceCloud()
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, mfg := range r.catalog.Manufacturers {
		for _, v := range refdata.AllVariants() {
			out = append(out, Record{"D", v, engine.CostComparison(mfg, cloud, r.variants.Coverage[v])})
		}
	}
	return out, nil
}

func (r *Runner) environmental() ([]Record, error) {
	var out []Record
	for _, mfg := range r.catalog.Manufacturers {
		for _, v := range refdata.AllVariants() {
			res := engine.Environmental(mfg, r.variants.Uptime[v], r.variants.DCReplaced[v])
			out = append(out, Record{"E", v, res})
		}
	}
	return out, nil
}

func (r *Runner) alliances() ([]Record, error) {
	var out []Record
	for _, keys := range refdata.Alliances {
		members, missing := r.catalog.ManufacturersByKey(keys)
		if len(missing) > 0 {
			r.logger.Warn().
				Strs("missing", missing).
				Strs("alliance", keys).
				Msg("alliance members not in catalog, computing without them")
		}
		if len(members) == 0 {
			continue
		}
		for _, v := range refdata.AllVariants() {
			out = append(out, Record{"F", v, engine.CombinedNetwork(members, r.variants.Uptime[v])})
		}
	}
	return out, nil
}

func (r *Runner) taskFeasibility() ([]Record, error) {
	ref, ok := r.catalog.Manufacturer(refdata.TaskReferenceManufacturer)
	if !ok {
		return nil, fmt.Errorf("reference manufacturer %q not in catalog", refdata.TaskReferenceManufacturer)
	}

	fleet := engine.FleetPower(ref, refdata.TaskReferenceUptime)
	var avgTOPS float64
	if fleet.ActiveDevices > 0 {
		avgTOPS = fleet.TotalTOPS / float64(fleet.ActiveDevices)
	}

	var out []Record
	for _, task := range r.catalog.TaskTypes {
		for _, v := range refdata.AllVariants() {
			res := engine.TaskFeasibility(task, fleet.TotalTOPS, fleet.ActiveDevices, avgTOPS, r.variants.Overhead[v])
			out = append(out, Record{"G", v, res})
		}
	}
	return out, nil
}

func (r *Runner) battery() ([]Record, error) {
	var out []Record
	for _, tier := range r.catalog.BatteryTiers {
		for _, v := range refdata.AllVariants() {
			hours := tier.NightlyHours * refdata.BatteryHourScale[v]
			out = append(out, Record{"H", v, engine.BatteryImpact(tier.Name, hours)})
		}
	}
	return out, nil
}

func (r *Runner) marketSize() ([]Record, error) {
	var out []Record
	for _, region := range r.catalog.Regions {
		for _, v := range refdata.AllVariants() {
			out = append(out, Record{"I", v, engine.MarketSize(region, refdata.MarketPenetration[v])})
		}
	}
	return out, nil
}

func (r *Runner) tokenEconomics() ([]Record, error) {
	var out []Record
	for _, devices := range refdata.TokenScales {
		label := ScaleLabel(devices)
		for _, v := range refdata.AllVariants() {
			res := engine.TokenEconomics(devices, r.variants.Uptime[v], r.variants.TokenPrice[v], refdata.PlatformCut)
			out = append(out, Record{"J", v, TokenScenario{TokenEconomicsResult: res, ScaleLabel: label}})
		}
	}
	return out, nil
}

func (r *Runner) competitive() ([]Record, error) {
	var out []Record
	for _, comp := range r.catalog.Competitors {
		for _, v := range refdata.AllVariants() {
			res := engine.Competitive(refdata.CompetitiveDevices, refdata.CompetitiveAvgTOPS, r.variants.Uptime[v], comp)
			out = append(out, Record{"K", v, res})
		}
	}
	return out, nil
}

func (r *Runner) breakeven() ([]Record, error) {
	cloud, err := r.referenceCloud()
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, mfg := range r.catalog.Manufacturers {
		for _, v := range refdata.AllVariants() {
			res := engine.Breakeven(mfg, cloud, refdata.BreakevenDevCost[v], refdata.BreakevenMonthlyOps, r.variants.Coverage[v])
			out = append(out, Record{"L", v, res})
		}
	}
	return out, nil
}

func (r *Runner) risk() ([]Record, error) {
	var out []Record
	for _, rf := range r.catalog.RiskFactors {
		for _, v := range refdata.AllVariants() {
			scale := refdata.RiskSeverity[v]
			res := engine.Risk(rf.Name, rf.NameAr, refdata.RiskBaseValue, rf.Impact*scale, rf.Probability*scale, rf.Category)
			out = append(out, Record{"M", v, res})
		}
	}
	return out, nil
}

func (r *Runner) growth() ([]Record, error) {
	out := make([]Record, 0, refdata.NumVariants)
	for _, v := range refdata.AllVariants() {
		res := engine.NetworkGrowth(refdata.BaseDevices, r.variants.Growth[v], refdata.SimulationYears, refdata.TargetDevices)
		out = append(out, Record{"N", v, res})
	}
	return out, nil
}
