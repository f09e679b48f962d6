package engine

import (
	"github.com/rshade/nhp-simulation/internal/carbon"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// EnvironmentalResult is the net CO2 effect of a manufacturer's fleet.
type EnvironmentalResult struct {
	Manufacturer   string  `json:"manufacturer"`
	DCReplaced     float64 `json:"dc_replaced"`
	CO2SavedGross  float64 `json:"co2_saved_gross"`
	CO2AddedPhones float64 `json:"co2_added_phones"`
	CO2SavedNet    float64 `json:"co2_saved_net"`
	CarsEquivalent int64   `json:"cars_equivalent"`
	ActiveDevices  int64   `json:"active_devices"`
}

var fleetCarbon = carbon.NewEstimator()

// Environmental weighs the CO2 avoided by replacing dcReplaced datacenters
// against the CO2 added by the fleet's active phones. All figures are metric
// tons per year.
//
// With uptime 0 the result satisfies CO2SavedNet == CO2SavedGross.
func Environmental(mfg refdata.Manufacturer, uptime, dcReplaced float64) EnvironmentalResult {
	gross := carbon.DatacenterCO2Tons(dcReplaced)
	active := int64(float64(mfg.ActiveDevices) * uptime)
	added := fleetCarbon.AnnualCO2Tons(active)
	net := gross - added

	return EnvironmentalResult{
		Manufacturer:   mfg.Name,
		DCReplaced:     dcReplaced,
		CO2SavedGross:  gross,
		CO2AddedPhones: added,
		CO2SavedNet:    net,
		CarsEquivalent: carbon.CarsEquivalent(net),
		ActiveDevices:  active,
	}
}
