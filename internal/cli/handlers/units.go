package handlers

import (
	"fmt"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/units"
)

const hintUnits = "Valid unit systems: metric, imperial"

// SetUnits switches the unit system, converting every stored entry.
func SetUnits(deps *cli.Deps, system string) {
	to, err := units.Parse(system)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid unit system '%s'", system), nil, hintUnits)
		return
	}

	change, err := deps.Services.Units.Set(to)
	if err != nil {
		deps.Fail("Failed to switch unit system", err, "")
		return
	}
	if change.From == change.To {
		_, _ = fmt.Fprintf(deps.Stdout, "Already using %s units\n", to)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Switched from %s to %s units\n", change.From, change.To)
	_, _ = fmt.Fprintf(deps.Stdout, "Converted %s across %s\n", cli.Count(change.Entries, "entry"), cli.Count(change.Vehicles, "vehicle"))
}

// ConvertUnits prints one reading set converted between unit systems.
func ConvertUnits(deps *cli.Deps, from, to string, odometer, fuel, price float64) {
	src, err := units.Parse(from)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid unit system '%s'", from), nil, hintUnits)
		return
	}
	dst, err := units.Parse(to)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid unit system '%s'", to), nil, hintUnits)
		return
	}

	odo, vol, unitPrice := units.ConvertValues(odometer, fuel, price, src, dst)
	currency := deps.Services.Config.Get().CurrencySymbol
	_, _ = fmt.Fprintf(deps.Stdout, "Odometer: %s %s\n", cli.FormatNumber(odo, 2), dst.DistanceUnit())
	_, _ = fmt.Fprintf(deps.Stdout, "Fuel:     %s %s\n", cli.FormatNumber(vol, 2), dst.VolumeUnit())
	_, _ = fmt.Fprintf(deps.Stdout, "Price:    %s%s/%s\n", currency, cli.FormatNumber(unitPrice, 3), dst.VolumeUnit())
}
