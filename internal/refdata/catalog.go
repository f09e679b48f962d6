package refdata

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// logger is the package logger; callers inject theirs with SetLogger.
var logger = zerolog.Nop()

// SetLogger sets the logger used when building catalog indexes.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Catalog is an ordered, read-only collection of reference data with keyed
// lookups. The zero value is empty; use Default for the built-in data.
type Catalog struct {
	Manufacturers     []Manufacturer
	CloudProviders    []CloudProvider
	Regions           []Region
	TaskTypes         []TaskType
	Competitors       []Competitor
	RiskFactors       []RiskFactor
	BatteryTiers      []BatteryTier
	SettlementSystems []SettlementSystem
	RegionalProfiles  []RegionalProfile

	DeveloperTasks     []DeveloperTask
	DeveloperUseCases  []DeveloperUseCase
	TokenModels        []TokenModel
	DeveloperSegments  []DeveloperSegment
	PriceScenarios     []PriceScenario
	ThermalProfiles    []ThermalProfile
	India              IndiaMarket
	IndiaAdoption      []AdoptionLevel
	DeveloperSpends    []float64
	NPUChips           []NPUChip
	DistributedRivals  []DistributedRival
	StressFactors      []StressFactor
	TimezoneBlocs      []TimezoneBloc
	RetiredPhones      []RetiredPhone
	SovereigntyRegions []SovereigntyRegion
	Disasters          []Disaster
	EducationMarkets   []EducationMarket
	Milestones         []Milestone
	DeviceGenerations  []DeviceGeneration
	AdoptionPaths      []AdoptionPath

	indexOnce     sync.Once
	manufacturers map[string]int
	clouds        map[string]int
	regions       map[string]int
	devTasks      map[string]int
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in catalog. The returned value is shared and
// must not be modified.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = &Catalog{
			Manufacturers:     manufacturers,
			CloudProviders:    cloudProviders,
			Regions:           regions,
			TaskTypes:         taskTypes,
			Competitors:       competitors,
			RiskFactors:       riskFactors,
			BatteryTiers:      batteryTiers,
			SettlementSystems: settlementSystems,
			RegionalProfiles:  regionalProfiles,

			DeveloperTasks:     developerTasks,
			DeveloperUseCases:  developerUseCases,
			TokenModels:        tokenModels,
			DeveloperSegments:  developerSegments,
			PriceScenarios:     priceScenarios,
			ThermalProfiles:    thermalProfiles,
			India:              indiaMarket,
			IndiaAdoption:      indiaAdoption,
			DeveloperSpends:    developerSpends,
			NPUChips:           npuChips,
			DistributedRivals:  distributedRivals,
			StressFactors:      stressFactors,
			TimezoneBlocs:      timezoneBlocs,
			RetiredPhones:      retiredPhones,
			SovereigntyRegions: sovereigntyRegions,
			Disasters:          disasters,
			EducationMarkets:   educationMarkets,
			Milestones:         milestones,
			DeviceGenerations:  deviceGenerations,
			AdoptionPaths:      adoptionPaths,
		}
	})
	return defaultCatalog
}

// buildIndex maps keys to slice positions. The first entry wins when a key
// is duplicated.
func (c *Catalog) buildIndex() {
	c.manufacturers = make(map[string]int, len(c.Manufacturers))
	for i, m := range c.Manufacturers {
		if _, dup := c.manufacturers[m.Key]; dup {
			logger.Warn().Str("key", m.Key).Msg("duplicate manufacturer key ignored")
			continue
		}
		c.manufacturers[m.Key] = i
	}

	c.clouds = make(map[string]int, len(c.CloudProviders))
	for i, p := range c.CloudProviders {
		if _, dup := c.clouds[p.Key]; dup {
			logger.Warn().Str("key", p.Key).Msg("duplicate cloud provider key ignored")
			continue
		}
		c.clouds[p.Key] = i
	}

	c.regions = make(map[string]int, len(c.Regions))
	for i, r := range c.Regions {
		if _, dup := c.regions[r.Key]; dup {
			logger.Warn().Str("key", r.Key).Msg("duplicate region key ignored")
			continue
		}
		c.regions[r.Key] = i
	}

	c.devTasks = make(map[string]int, len(c.DeveloperTasks))
	for i, t := range c.DeveloperTasks {
		if _, dup := c.devTasks[t.Key]; dup {
			logger.Warn().Str("key", t.Key).Msg("duplicate developer task key ignored")
			continue
		}
		c.devTasks[t.Key] = i
	}

	logger.Debug().
		Int("manufacturers", len(c.manufacturers)).
		Int("clouds", len(c.clouds)).
		Int("regions", len(c.regions)).
		Int("developer_tasks", len(c.devTasks)).
		Msg("reference catalog indexed")
}

// Manufacturer returns the manufacturer with the given key.
// Returns the Manufacturer and true if found, or an empty value and false otherwise.
func (c *Catalog) Manufacturer(key string) (Manufacturer, bool) {
	c.indexOnce.Do(c.buildIndex)
	i, ok := c.manufacturers[key]
	if !ok {
		return Manufacturer{}, false
	}
	return c.Manufacturers[i], true
}

// CloudProvider returns the cloud provider with the given key.
func (c *Catalog) CloudProvider(key string) (CloudProvider, bool) {
	c.indexOnce.Do(c.buildIndex)
	i, ok := c.clouds[key]
	if !ok {
		return CloudProvider{}, false
	}
	return c.CloudProviders[i], true
}

// Region returns the region with the given key.
func (c *Catalog) Region(key string) (Region, bool) {
	c.indexOnce.Do(c.buildIndex)
	i, ok := c.regions[key]
	if !ok {
		return Region{}, false
	}
	return c.Regions[i], true
}

// DeveloperTask returns the developer task with the given key.
func (c *Catalog) DeveloperTask(key string) (DeveloperTask, bool) {
	c.indexOnce.Do(c.buildIndex)
	i, ok := c.devTasks[key]
	if !ok {
		return DeveloperTask{}, false
	}
	return c.DeveloperTasks[i], true
}

// Validate checks that the keys the scenario model depends on resolve. All
// failures are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	if _, ok := c.CloudProvider(ReferenceCloudKey); !ok {
		errs = append(errs, fmt.Errorf("reference cloud %q not in catalog", ReferenceCloudKey))
	}
	if _, ok := c.Manufacturer(TaskReferenceManufacturer); !ok {
		errs = append(errs, fmt.Errorf("reference manufacturer %q not in catalog", TaskReferenceManufacturer))
	}
	if _, ok := c.Region(FocusRegionKey); !ok {
		errs = append(errs, fmt.Errorf("focus region %q not in catalog", FocusRegionKey))
	}
	for _, uc := range c.DeveloperUseCases {
		for _, v := range uc.Volumes {
			if _, ok := c.DeveloperTask(v.TaskKey); !ok {
				errs = append(errs, fmt.Errorf("use case %q: unknown developer task %q", uc.Name, v.TaskKey))
			}
		}
	}
	return errors.Join(errs...)
}

// ManufacturersByKey resolves keys in order, skipping unknown ones. The
// second return value lists the keys that were not found.
func (c *Catalog) ManufacturersByKey(keys []string) ([]Manufacturer, []string) {
	out := make([]Manufacturer, 0, len(keys))
	var missing []string
	for _, k := range keys {
		m, ok := c.Manufacturer(k)
		if !ok {
			missing = append(missing, k)
			continue
		}
		out = append(out, m)
	}
	return out, missing
}

// WithCloudProviders returns a copy of the catalog whose cloud providers are
// replaced by providers. The other datasets are shared with c.
func (c *Catalog) WithCloudProviders(providers []CloudProvider) *Catalog {
	return &Catalog{
		Manufacturers:     c.Manufacturers,
		CloudProviders:    providers,
		Regions:           c.Regions,
		TaskTypes:         c.TaskTypes,
		Competitors:       c.Competitors,
		RiskFactors:       c.RiskFactors,
		BatteryTiers:      c.BatteryTiers,
		SettlementSystems: c.SettlementSystems,
		RegionalProfiles:  c.RegionalProfiles,

		DeveloperTasks:     c.DeveloperTasks,
		DeveloperUseCases:  c.DeveloperUseCases,
		TokenModels:        c.TokenModels,
		DeveloperSegments:  c.DeveloperSegments,
		PriceScenarios:     c.PriceScenarios,
		ThermalProfiles:    c.ThermalProfiles,
		India:              c.India,
		IndiaAdoption:      c.IndiaAdoption,
		DeveloperSpends:    c.DeveloperSpends,
		NPUChips:           c.NPUChips,
		DistributedRivals:  c.DistributedRivals,
		StressFactors:      c.StressFactors,
		TimezoneBlocs:      c.TimezoneBlocs,
		RetiredPhones:      c.RetiredPhones,
		SovereigntyRegions: c.SovereigntyRegions,
		Disasters:          c.Disasters,
		EducationMarkets:   c.EducationMarkets,
		Milestones:         c.Milestones,
		DeviceGenerations:  c.DeviceGenerations,
		AdoptionPaths:      c.AdoptionPaths,
	}
}
