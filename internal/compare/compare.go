// Package compare computes annual operating cost and carbon footprint for a
// pair of appliance records.
package compare

import "wattcompare-backend/internal/model"

// CarbonPerKwh is the fixed kg-CO2 emission factor applied to annual cost.
const CarbonPerKwh = 0.82

// Entry holds the computed figures for one appliance.
type Entry struct {
	Name       string  `json:"name"`
	AnnualCost float64 `json:"annual_cost"`
	Carbon     float64 `json:"carbon"`
}

// Result is the outcome of comparing two appliances.
type Result struct {
	A           Entry  `json:"A"`
	B           Entry  `json:"B"`
	Recommended string `json:"recommended"`
}

// AnnualCost returns energyKwh * energyRate, or 0 when either value is
// missing or zero.
func AnnualCost(a model.Appliance) float64 {
	if a.EnergyKwh == nil || *a.EnergyKwh == 0 || a.EnergyRate == 0 {
		return 0
	}
	return *a.EnergyKwh * a.EnergyRate
}

// Compare computes both appliances' annual cost and carbon footprint and
// recommends the one with strictly lower annual cost. Ties resolve to b.
func Compare(a, b model.Appliance) Result {
	costA, costB := AnnualCost(a), AnnualCost(b)

	recommended := b.Name
	if costA < costB {
		recommended = a.Name
	}

	return Result{
		A:           Entry{Name: a.Name, AnnualCost: costA, Carbon: costA * CarbonPerKwh},
		B:           Entry{Name: b.Name, AnnualCost: costB, Carbon: costB * CarbonPerKwh},
		Recommended: recommended,
	}
}
