// Package engine implements the closed-form NHP formulas. Every function is
// pure: results depend only on the arguments and the model constants in
// refdata. Divisions by a possibly-zero denominator return 0 unless the
// function documents otherwise.
//
// Inputs are not validated. Out-of-range fractions (negative uptime, coverage
// above 1) propagate through the arithmetic unchanged.
package engine

import (
	"strings"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// FleetPowerResult is the computing capacity of one manufacturer's fleet.
type FleetPowerResult struct {
	Manufacturer   string  `json:"manufacturer"`
	TotalDevices   int64   `json:"total_devices"`
	ActiveDevices  int64   `json:"active_devices"`
	ActiveFlagship int64   `json:"active_flagship"`
	ActiveMidrange int64   `json:"active_midrange"`
	TotalTOPS      float64 `json:"total_tops"`
	H100Equivalent float64 `json:"h100_equivalent"`
	UptimePct      float64 `json:"uptime_pct"`
}

// FleetPower computes the active TOPS of a manufacturer's fleet at the given
// uptime. Device counts truncate toward zero at each step.
//
// Example: Samsung at 25% uptime has 75,000,000 flagships of which
// 18,750,000 are active, and 56,250,000 active mid-range phones, for
// 1,312,500,000 TOPS or 656,250 H100 equivalents.
func FleetPower(mfg refdata.Manufacturer, uptime float64) FleetPowerResult {
	flagshipCount := int64(float64(mfg.ActiveDevices) * mfg.FlagshipPct)
	midrangeCount := mfg.ActiveDevices - flagshipCount

	activeFlagship := int64(float64(flagshipCount) * uptime)
	activeMidrange := int64(float64(midrangeCount) * uptime)

	totalTOPS := float64(activeFlagship)*mfg.FlagshipTOPS + float64(activeMidrange)*mfg.MidrangeTOPS

	return FleetPowerResult{
		Manufacturer:   mfg.Name,
		TotalDevices:   mfg.ActiveDevices,
		ActiveDevices:  activeFlagship + activeMidrange,
		ActiveFlagship: activeFlagship,
		ActiveMidrange: activeMidrange,
		TotalTOPS:      totalTOPS,
		H100Equivalent: totalTOPS / refdata.H100TOPS,
		UptimePct:      uptime * 100,
	}
}

// CombinedNetworkResult is the pooled capacity of a manufacturer alliance.
type CombinedNetworkResult struct {
	Alliance           string  `json:"alliance"`
	ManufacturersCount int     `json:"manufacturers_count"`
	TotalActiveDevices int64   `json:"total_active_devices"`
	TotalTOPS          float64 `json:"total_tops"`
	H100Equivalent     float64 `json:"h100_equivalent"`
	UptimePct          float64 `json:"uptime_pct"`
}

// CombinedNetwork sums FleetPower over the given manufacturers. The alliance
// label joins their short codes with " + " in argument order.
func CombinedNetwork(mfgs []refdata.Manufacturer, uptime float64) CombinedNetworkResult {
	var (
		devices int64
		tops    float64
	)
	names := make([]string, 0, len(mfgs))
	for _, m := range mfgs {
		fp := FleetPower(m, uptime)
		devices += fp.ActiveDevices
		tops += fp.TotalTOPS
		names = append(names, m.Short)
	}

	return CombinedNetworkResult{
		Alliance:           strings.Join(names, " + "),
		ManufacturersCount: len(mfgs),
		TotalActiveDevices: devices,
		TotalTOPS:          tops,
		H100Equivalent:     tops / refdata.H100TOPS,
		UptimePct:          uptime * 100,
	}
}
