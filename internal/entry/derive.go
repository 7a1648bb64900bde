package entry

import (
	"slices"
	"time"
)

// Processed is a RawEntry with its parsed fields and the values derived
// from its position in the date-ordered log. Nil pointers mark absent
// values. Processed entries are rebuilt on every read and never stored.
type Processed struct {
	Raw RawEntry `json:"-"`

	Date             string    `json:"date"`
	Time             time.Time `json:"-"`
	OdometerReading  *float64  `json:"odometerReading"`
	Fuel             *float64  `json:"fuel"`
	Price            *float64  `json:"price"`
	DistanceTraveled *float64  `json:"distanceTraveled"`
	TotalSpend       *float64  `json:"totalSpend"`
	IsFirst          bool      `json:"isFirst"`
	IsInvalid        bool      `json:"isInvalid"`
}

// Result is the output of a derivation pass.
type Result struct {
	Entries           []Processed
	HasInvalidEntries bool
}

// Usable returns the entries that feed statistics.
func (r Result) Usable() []Processed {
	return Usable(r.Entries)
}

// Process orders raw entries by date and derives distance, spend and
// validity for each one. The order is stable; entries whose date is
// missing or unparseable sort as the zero time, ahead of every real date.
// No entry is ever dropped.
func Process(raws []RawEntry) Result {
	if len(raws) == 0 {
		return Result{Entries: []Processed{}}
	}

	sorted := make([]Processed, len(raws))
	for i, raw := range raws {
		sorted[i] = parse(raw)
	}
	slices.SortStableFunc(sorted, func(a, b Processed) int {
		return a.Time.Compare(b.Time)
	})

	var res Result
	for i := range sorted {
		cur := &sorted[i]
		if i == 0 {
			cur.IsFirst = true
		} else {
			prev := sorted[i-1]
			if cur.OdometerReading != nil && prev.OdometerReading != nil {
				if *cur.OdometerReading > *prev.OdometerReading {
					d := *cur.OdometerReading - *prev.OdometerReading
					cur.DistanceTraveled = &d
				} else {
					cur.IsInvalid = true
				}
			}
		}
		if cur.IsInvalid {
			res.HasInvalidEntries = true
		}
	}
	res.Entries = sorted
	return res
}

// parse converts the stored fields and applies the per-entry checks that
// don't depend on neighbours.
func parse(raw RawEntry) Processed {
	p := Processed{Raw: raw, Date: raw.Date}

	t, dateOK := ParseStoredDate(raw.Date)
	p.Time = t

	odo, odoOK := raw.OdometerReading.Float()
	fuel, fuelOK := raw.Fuel.Float()
	price, priceOK := raw.Price.Float()
	if odoOK {
		p.OdometerReading = &odo
	}
	if fuelOK {
		p.Fuel = &fuel
	}
	if priceOK {
		p.Price = &price
	}
	if fuelOK && priceOK {
		spend := fuel * price
		p.TotalSpend = &spend
	}

	p.IsInvalid = !dateOK || !odoOK || !fuelOK || !priceOK
	return p
}

// Usable filters the entries that have a distance and passed validation.
// First entries never have a distance, so they are always excluded.
func Usable(entries []Processed) []Processed {
	usable := make([]Processed, 0, len(entries))
	for _, e := range entries {
		if e.DistanceTraveled != nil && !e.IsInvalid {
			usable = append(usable, e)
		}
	}
	return usable
}

// CountInvalid returns how many entries failed validation.
func CountInvalid(entries []Processed) int {
	n := 0
	for _, e := range entries {
		if e.IsInvalid {
			n++
		}
	}
	return n
}
