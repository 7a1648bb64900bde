package stats

import (
	"fmt"

	"github.com/xolan/fuel/internal/entry"
)

// Multipliers from a daily cost to longer periods.
const (
	DaysPerWeek  = 7
	DaysPerMonth = 30.44
	DaysPerYear  = 365.25
)

// Unavailable says why an ownership projection couldn't be made.
type Unavailable int

const (
	OwnershipAvailable Unavailable = iota
	NoVehicle
	NoPurchasePrice
	NotEnoughEntries
)

// Ownership is the total cost of owning a vehicle spread over the time
// its log covers.
type Ownership struct {
	Reason Unavailable `json:"-"`
	Needed int         `json:"-"`

	PurchasePrice float64 `json:"purchasePrice"`
	TotalFuelCost float64 `json:"totalFuelCost"`
	Total         float64 `json:"totalOwnershipCost"`
	Days          float64 `json:"days"`
	PerDay        float64 `json:"costPerDay"`
	PerWeek       float64 `json:"costPerWeek"`
	PerMonth      float64 `json:"costPerMonth"`
	PerYear       float64 `json:"costPerYear"`
}

// Available reports whether the projection holds numbers.
func (o Ownership) Available() bool {
	return o.Reason == OwnershipAvailable
}

// Project combines the purchase price with the fuel spend. vehicle is the
// selected vehicle's name; an empty name means nothing is selected.
func Project(vehicle string, totalFuelCost float64, usable []entry.Processed, purchasePrice *float64) Ownership {
	switch {
	case vehicle == "":
		return Ownership{Reason: NoVehicle}
	case purchasePrice == nil || *purchasePrice <= 0:
		return Ownership{Reason: NoPurchasePrice}
	case len(usable) < Threshold:
		return Ownership{Reason: NotEnoughEntries, Needed: Threshold - len(usable)}
	}

	o := Ownership{
		PurchasePrice: *purchasePrice,
		TotalFuelCost: totalFuelCost,
		Total:         *purchasePrice + totalFuelCost,
		Days:          max(1, entry.DaysBetween(usable[0].Time, usable[len(usable)-1].Time)),
	}
	o.PerDay = o.Total / o.Days
	o.PerWeek = o.PerDay * DaysPerWeek
	o.PerMonth = o.PerDay * DaysPerMonth
	o.PerYear = o.PerDay * DaysPerYear
	return o
}

// Lines formats an available projection for display.
func (o Ownership) Lines(currency string) []Stat {
	if currency == "" {
		currency = DefaultCurrency
	}
	money := func(v float64) string { return fmt.Sprintf("%s%.2f", currency, v) }
	return []Stat{
		{"Car Purchase Price", money(o.PurchasePrice)},
		{"Total Fuel Cost", money(o.TotalFuelCost)},
		{"Total Ownership Cost (Price + Fuel)", money(o.Total)},
		{"Cost per Year", money(o.PerYear)},
		{"Cost per Month", money(o.PerMonth)},
		{"Cost per Week", money(o.PerWeek)},
		{"Cost per Day", money(o.PerDay)},
	}
}
