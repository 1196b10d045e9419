package core

import (
	"fmt"
	"math"

	"github.com/huangsam/esgscore/schema"
)

// Emission factors. The energy factor is a binary switch, not a blended share.
const (
	gridEmissionFactor      = 0.75 // kg CO2 per kWh from the grid
	renewableEmissionFactor = 0.05 // kg CO2 per kWh, lifecycle of renewables
	kgPerTon                = 1000.0

	// Per-capita constants are sector-independent.
	operationsTonsPerEmployee = 0.5
	transportTonsPerEmployee  = 0.3

	offsetPricePerTon = 15.0
)

// EPA Formula Constants (2024 Edition), kg CO2e per unit of the equivalent activity.
const (
	epaMilesDrivenFactor  = 0.192
	epaTreeSeedlingFactor = 60.0
	epaHomeDayFactor      = 18.3
)

// CalculateCarbonFootprint estimates annual emissions in tons CO2e.
// It returns ErrInvalidEmployeeCount when employeeCount is not positive.
// Negative or non-finite energy consumption is treated as zero. The sector is echoed back;
// the per-employee constants do not depend on it.
func (e *Engine) CalculateCarbonFootprint(sector string, employeeCount int, annualEnergyKWh float64, hasRenewableEnergy bool) (schema.CarbonFootprintResult, error) {
	if employeeCount <= 0 {
		return schema.CarbonFootprintResult{}, fmt.Errorf("%w (received %d)", ErrInvalidEmployeeCount, employeeCount)
	}
	energyKWh := annualEnergyKWh
	if math.IsNaN(energyKWh) || math.IsInf(energyKWh, 0) || energyKWh < 0 {
		energyKWh = 0
	}

	factor := gridEmissionFactor
	if hasRenewableEnergy {
		factor = renewableEmissionFactor
	}

	employees := float64(employeeCount)
	energy := energyKWh * factor / kgPerTon
	operations := employees * operationsTonsPerEmployee
	transport := employees * transportTonsPerEmployee
	total := energy + operations + transport
	totalKg := total * kgPerTon

	return schema.CarbonFootprintResult{
		Sector:             sector,
		TotalCO2Tons:       round2(total),
		PerEmployeeCO2Tons: round2(total / employees),
		Breakdown: schema.CarbonBreakdown{
			Energy:     round2(energy),
			Operations: round2(operations),
			Transport:  round2(transport),
		},
		OffsetTonsRequired: round2(total),
		OffsetCost:         round2(total * offsetPricePerTon),
		Equivalencies: schema.CarbonEquivalencies{
			MilesDriven:    math.Round(totalKg / epaMilesDrivenFactor),
			TreeSeedlings:  math.Round(totalKg / epaTreeSeedlingFactor),
			HomeEnergyDays: math.Round(totalKg / epaHomeDayFactor),
		},
	}, nil
}
