package engine

import (
	"math"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// CompetitiveResult compares the NHP network with one competitor.
type CompetitiveResult struct {
	Competitor       string   `json:"competitor"`
	NHPActiveDevices int64    `json:"nhp_active_devices"`
	CompDevices      int64    `json:"comp_devices"`
	NHPTotalTOPS     float64  `json:"nhp_total_tops"`
	CompTotalTOPS    float64  `json:"comp_total_tops"`
	PowerRatio       float64  `json:"power_ratio"`
	DeviceRatio      float64  `json:"device_ratio"`
	NHPAdvantages    []string `json:"nhp_advantages"`
	CompDeviceType   string   `json:"comp_device_type"`
}

// Advantage labels, in the order they are reported.
const (
	AdvantageMfgPartnership = "Manufacturer partnership"
	AdvantageTEE            = "TEE security"
	AdvantageNeutral        = "Blockchain neutral"
	AdvantageLargerBase     = "Larger device base"
)

// Competitive compares NHP capacity and reach with a competitor. The ratios
// are +Inf when the competitor's denominator is zero.
//
// The device-base advantage compares the NHP total device count, not the
// active count, against the competitor's base.
func Competitive(nhpDevices int64, nhpAvgTOPS, nhpUptime float64, comp refdata.Competitor) CompetitiveResult {
	active := int64(float64(nhpDevices) * nhpUptime)
	nhpTOPS := float64(active) * nhpAvgTOPS
	compTOPS := float64(comp.DeviceBaseEstimate) * comp.AvgTOPSPerNode

	powerRatio := math.Inf(1)
	if compTOPS > 0 {
		powerRatio = nhpTOPS / compTOPS
	}
	deviceRatio := math.Inf(1)
	if comp.DeviceBaseEstimate > 0 {
		deviceRatio = float64(active) / float64(comp.DeviceBaseEstimate)
	}

	advantages := []string{}
	if !comp.MfgPartnership {
		advantages = append(advantages, AdvantageMfgPartnership)
	}
	if !comp.TEEProtection {
		advantages = append(advantages, AdvantageTEE)
	}
	if comp.NetworkLocked {
		advantages = append(advantages, AdvantageNeutral)
	}
	if nhpDevices > comp.DeviceBaseEstimate {
		advantages = append(advantages, AdvantageLargerBase)
	}

	return CompetitiveResult{
		Competitor:       comp.Name,
		NHPActiveDevices: active,
		CompDevices:      comp.DeviceBaseEstimate,
		NHPTotalTOPS:     nhpTOPS,
		CompTotalTOPS:    compTOPS,
		PowerRatio:       powerRatio,
		DeviceRatio:      deviceRatio,
		NHPAdvantages:    advantages,
		CompDeviceType:   comp.DeviceType,
	}
}
