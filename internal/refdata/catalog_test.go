package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()

	assert.Len(t, c.Manufacturers, 7)
	assert.Len(t, c.CloudProviders, 7)
	assert.Len(t, c.Regions, 10)
	assert.Len(t, c.TaskTypes, 6)
	assert.Len(t, c.Competitors, 4)
	assert.Len(t, c.RiskFactors, 10)
	assert.Len(t, c.BatteryTiers, 3)
	assert.Len(t, c.SettlementSystems, 8)
	assert.Len(t, c.RegionalProfiles, 6)
	assert.Len(t, c.DeveloperTasks, 8)
	assert.Len(t, c.DeveloperUseCases, 8)
	assert.Len(t, c.TokenModels, 4)
	assert.Len(t, c.DeveloperSegments, 6)
	assert.Len(t, c.PriceScenarios, 5)
	assert.Len(t, c.ThermalProfiles, 5)
	assert.Len(t, c.IndiaAdoption, 5)
	assert.Len(t, c.DeveloperSpends, 5)
	assert.Len(t, c.NPUChips, 6)
	assert.Len(t, c.DistributedRivals, 5)
	assert.Len(t, c.StressFactors, 7)
	assert.Len(t, c.TimezoneBlocs, 8)
	assert.Len(t, c.RetiredPhones, 7)
	assert.Len(t, c.SovereigntyRegions, 5)
	assert.Len(t, c.Disasters, 5)
	assert.Len(t, c.EducationMarkets, 5)
	assert.Len(t, c.Milestones, 7)
	assert.Len(t, c.DeviceGenerations, 3)
	assert.Len(t, c.AdoptionPaths, 3)
}

func TestDefault_Order(t *testing.T) {
	c := Default()

	var mfgKeys []string
	for _, m := range c.Manufacturers {
		mfgKeys = append(mfgKeys, m.Key)
	}
	assert.Equal(t, []string{"samsung", "apple", "xiaomi", "google", "huawei", "oppo", "vivo"}, mfgKeys)

	var cloudKeys []string
	for _, p := range c.CloudProviders {
		cloudKeys = append(cloudKeys, p.Key)
	}
	assert.Equal(t, []string{
		"aws_a100", "aws_h100", "gcloud_h100", "azure_a100",
		"azure_h100", "lambda_h100", "coreweave_h100",
	}, cloudKeys)

	assert.Equal(t, "usa", c.Regions[0].Key)
	assert.Equal(t, "southeast_asia", c.Regions[len(c.Regions)-1].Key)
}

func TestCatalog_Manufacturer(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		wantFound   bool
		wantDevices int64
		wantShort   string
	}{
		{name: "samsung", key: "samsung", wantFound: true, wantDevices: 300_000_000, wantShort: "SAM"},
		{name: "apple", key: "apple", wantFound: true, wantDevices: 1_500_000_000, wantShort: "APL"},
		{name: "vivo", key: "vivo", wantFound: true, wantDevices: 250_000_000, wantShort: "VVO"},
		{name: "unknown", key: "nokia", wantFound: false},
		{name: "empty key", key: "", wantFound: false},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := c.Manufacturer(tt.key)
			assert.Equal(t, tt.wantFound, ok)
			if !tt.wantFound {
				assert.Zero(t, m)
				return
			}
			assert.Equal(t, tt.wantDevices, m.ActiveDevices)
			assert.Equal(t, tt.wantShort, m.Short)
		})
	}
}

func TestCatalog_CloudProvider(t *testing.T) {
	c := Default()

	p, ok := c.CloudProvider(ReferenceCloudKey)
	require.True(t, ok)
	assert.Equal(t, "AWS", p.Name)
	assert.Equal(t, 8, p.GPUsPerInstance)
	assert.InDelta(t, 32.77, p.HourlyCost, 1e-9)
	assert.Equal(t, A100TOPS, p.TOPSPerGPU)

	for _, p := range c.CloudProviders {
		assert.GreaterOrEqual(t, p.GPUsPerInstance, 1, p.Key)
		assert.Positive(t, p.HourlyCost, p.Key)
	}

	_, ok = c.CloudProvider("oracle_a100")
	assert.False(t, ok)
}

func TestCatalog_Region(t *testing.T) {
	c := Default()

	r, ok := c.Region("india")
	require.True(t, ok)
	assert.Equal(t, "الهند", r.NameAr)
	assert.InDelta(t, 0.08, r.ElectricityCostKWh, 1e-12)
	assert.InDelta(t, 450.0, r.AvgMonthlyIncome, 1e-12)

	for _, r := range c.Regions {
		assert.NotEmpty(t, r.NameAr, r.Key)
		assert.GreaterOrEqual(t, r.SmartphonePenetration, 0.0, r.Key)
		assert.LessOrEqual(t, r.SmartphonePenetration, 1.0, r.Key)
	}
}

func TestCatalog_DeveloperTask(t *testing.T) {
	c := Default()

	task, ok := c.DeveloperTask("image_gen")
	require.True(t, ok)
	assert.Equal(t, "1 image", task.Unit)
	assert.InDelta(t, 0.03, task.CloudAvgPrice, 1e-12)

	_, ok = c.DeveloperTask("video_gen")
	assert.False(t, ok)

	for _, task := range c.DeveloperTasks {
		assert.Less(t, task.NHPPrice, task.CloudAvgPrice, task.Key)
	}
}

func TestCatalog_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	broken := &Catalog{
		Manufacturers:  Default().Manufacturers,
		CloudProviders: []CloudProvider{{Key: "spot_h100"}},
		DeveloperUseCases: []DeveloperUseCase{
			{Name: "Video Shop", Volumes: []TaskVolume{{TaskKey: "video_gen", Units: 10}}},
		},
	}
	err := broken.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReferenceCloudKey)
	assert.Contains(t, err.Error(), FocusRegionKey)
	assert.Contains(t, err.Error(), "video_gen")
	assert.NotContains(t, err.Error(), TaskReferenceManufacturer)
}

func TestCatalog_DuplicateKeyFirstWins(t *testing.T) {
	c := &Catalog{
		Manufacturers: []Manufacturer{
			{Key: "acme", Name: "First"},
			{Key: "acme", Name: "Second"},
		},
	}

	m, ok := c.Manufacturer("acme")
	require.True(t, ok)
	assert.Equal(t, "First", m.Name)
}

func TestCatalog_ManufacturersByKey(t *testing.T) {
	c := Default()

	got, missing := c.ManufacturersByKey([]string{"apple", "missing", "samsung"})
	require.Len(t, got, 2)
	assert.Equal(t, "apple", got[0].Key)
	assert.Equal(t, "samsung", got[1].Key)
	assert.Equal(t, []string{"missing"}, missing)
}

func TestAlliances_ResolveAgainstDefault(t *testing.T) {
	c := Default()
	for _, keys := range Alliances {
		got, missing := c.ManufacturersByKey(keys)
		assert.Empty(t, missing)
		assert.Len(t, got, len(keys))
	}
	assert.Len(t, Alliances[len(Alliances)-1], len(c.Manufacturers))
}

func TestCatalog_WithCloudProviders(t *testing.T) {
	base := Default()
	custom := base.WithCloudProviders([]CloudProvider{
		{Key: "spot_h100", Name: "Spot", GPUsPerInstance: 1, TOPSPerGPU: H100TOPS, HourlyCost: 1.10},
	})

	p, ok := custom.CloudProvider("spot_h100")
	require.True(t, ok)
	assert.InDelta(t, 1.10, p.HourlyCost, 1e-12)

	_, ok = custom.CloudProvider(ReferenceCloudKey)
	assert.False(t, ok, "replaced list drops the built-in clouds")

	_, ok = base.CloudProvider(ReferenceCloudKey)
	assert.True(t, ok, "the source catalog is unchanged")

	assert.Len(t, custom.Manufacturers, len(base.Manufacturers))
	assert.Len(t, custom.SettlementSystems, len(base.SettlementSystems))
	assert.Len(t, custom.TimezoneBlocs, len(base.TimezoneBlocs))
	assert.Equal(t, base.India, custom.India)

	task, ok := custom.DeveloperTask("speech")
	require.True(t, ok, "copies index their own developer tasks")
	assert.Equal(t, "1 minute", task.Unit)
}
