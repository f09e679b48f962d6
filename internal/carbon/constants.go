// Package carbon provides CO2 accounting for the NHP phone fleet: emissions
// added by phones computing overnight, emissions avoided by retiring
// datacenters, and the passenger-car equivalent of the difference.
package carbon

import "github.com/rshade/nhp-simulation/internal/refdata"

// Emission factors and the phone energy profile come from the reference
// catalog so scenario formulas and the estimator agree.
const (
	// GridIntensityKgPerKWh is the grid carbon intensity in kg CO2 per kWh.
	GridIntensityKgPerKWh = refdata.CO2PerKWhKg

	// DatacenterTonsPerYear is the annual CO2 output of one large datacenter
	// in metric tons.
	DatacenterTonsPerYear = refdata.DCCO2TonsYear

	// CarTonsPerYear is the annual CO2 output of an average passenger car
	// in metric tons.
	CarTonsPerYear = refdata.CO2PerCarTons

	// PhoneExtraWatts is the extra draw of one phone while computing.
	PhoneExtraWatts = refdata.DeviceExtraWatt

	// PhoneNightlyHours is the nightly compute window per phone.
	PhoneNightlyHours = refdata.NightlyHours

	// DaysPerYear annualizes daily energy.
	DaysPerYear = refdata.DaysPerYear
)

// Unit conversions.
const (
	// KgPerTon converts kilograms to metric tons.
	KgPerTon = 1000.0

	// WhPerKWh converts watt-hours to kilowatt-hours.
	WhPerKWh = 1000.0
)
