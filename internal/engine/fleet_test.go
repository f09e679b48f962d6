package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func mustManufacturer(t *testing.T, key string) refdata.Manufacturer {
	t.Helper()
	m, ok := refdata.Default().Manufacturer(key)
	require.True(t, ok, "manufacturer %q", key)
	return m
}

func mustCloud(t *testing.T, key string) refdata.CloudProvider {
	t.Helper()
	p, ok := refdata.Default().CloudProvider(key)
	require.True(t, ok, "cloud %q", key)
	return p
}

func mustRegion(t *testing.T, key string) refdata.Region {
	t.Helper()
	r, ok := refdata.Default().Region(key)
	require.True(t, ok, "region %q", key)
	return r
}

func TestFleetPower_SamsungModerate(t *testing.T) {
	got := FleetPower(mustManufacturer(t, "samsung"), 0.25)

	assert.Equal(t, "Samsung", got.Manufacturer)
	assert.Equal(t, int64(300_000_000), got.TotalDevices)
	assert.Equal(t, int64(18_750_000), got.ActiveFlagship)
	assert.Equal(t, int64(56_250_000), got.ActiveMidrange)
	assert.Equal(t, int64(75_000_000), got.ActiveDevices)
	assert.Equal(t, 1_312_500_000.0, got.TotalTOPS)
	assert.Equal(t, 656_250.0, got.H100Equivalent)
	assert.Equal(t, 25.0, got.UptimePct)
}

func TestFleetPower_Truncation(t *testing.T) {
	m := refdata.Manufacturer{
		Name:          "Odd",
		ActiveDevices: 7,
		FlagshipPct:   0.5,
		FlagshipTOPS:  10,
		MidrangeTOPS:  1,
	}

	got := FleetPower(m, 0.5)
	// flagship = int(3.5) = 3, midrange = 4; active = int(1.5) + int(2.0)
	assert.Equal(t, int64(1), got.ActiveFlagship)
	assert.Equal(t, int64(2), got.ActiveMidrange)
	assert.Equal(t, int64(3), got.ActiveDevices)
	assert.Equal(t, 12.0, got.TotalTOPS)
}

func TestFleetPower_Edges(t *testing.T) {
	tests := []struct {
		name       string
		mfg        refdata.Manufacturer
		uptime     float64
		wantActive int64
		wantTOPS   float64
	}{
		{
			name:       "zero uptime yields no capacity",
			mfg:        mustManufacturer(t, "apple"),
			uptime:     0,
			wantActive: 0,
			wantTOPS:   0,
		},
		{
			name:       "empty fleet",
			mfg:        refdata.Manufacturer{Name: "Empty", FlagshipPct: 0.5, FlagshipTOPS: 30, MidrangeTOPS: 10},
			uptime:     0.4,
			wantActive: 0,
			wantTOPS:   0,
		},
		{
			name: "full uptime, all flagship",
			mfg: refdata.Manufacturer{
				Name: "Flag", ActiveDevices: 1000, FlagshipPct: 1, FlagshipTOPS: 40, MidrangeTOPS: 10,
			},
			uptime:     1,
			wantActive: 1000,
			wantTOPS:   40_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FleetPower(tt.mfg, tt.uptime)
			assert.Equal(t, tt.wantActive, got.ActiveDevices)
			assert.Equal(t, tt.wantTOPS, got.TotalTOPS)
			assert.Equal(t, tt.wantTOPS/refdata.H100TOPS, got.H100Equivalent)
		})
	}
}

func TestFleetPower_MonotonicInUptime(t *testing.T) {
	m := mustManufacturer(t, "xiaomi")
	prev := FleetPower(m, 0)
	for _, u := range []float64{0.03, 0.10, 0.25, 0.40, 1.0} {
		cur := FleetPower(m, u)
		assert.GreaterOrEqual(t, cur.TotalTOPS, prev.TotalTOPS, "uptime %v", u)
		assert.GreaterOrEqual(t, cur.ActiveDevices, prev.ActiveDevices, "uptime %v", u)
		prev = cur
	}
}

func TestCombinedNetwork(t *testing.T) {
	sam := mustManufacturer(t, "samsung")
	apl := mustManufacturer(t, "apple")

	got := CombinedNetwork([]refdata.Manufacturer{sam, apl}, 0.25)

	assert.Equal(t, "SAM + APL", got.Alliance)
	assert.Equal(t, 2, got.ManufacturersCount)
	assert.Equal(t, int64(450_000_000), got.TotalActiveDevices)
	assert.Equal(t, 9_187_500_000.0, got.TotalTOPS)
	assert.Equal(t, 4_593_750.0, got.H100Equivalent)
	assert.Equal(t, 25.0, got.UptimePct)

	sum := FleetPower(sam, 0.25).TotalTOPS + FleetPower(apl, 0.25).TotalTOPS
	assert.Equal(t, sum, got.TotalTOPS)
}

func TestCombinedNetwork_Empty(t *testing.T) {
	got := CombinedNetwork(nil, 0.4)
	assert.Empty(t, got.Alliance)
	assert.Zero(t, got.ManufacturersCount)
	assert.Zero(t, got.TotalTOPS)
}
