package stats

import "fmt"

// Sections that can be withheld while the log is too short.
const (
	SectionStats     = "view detailed statistics"
	SectionSeries    = "display charts"
	SectionOwnership = "calculate Total Cost of Ownership"
)

// NeedMore is the notice shown in place of a withheld section.
func NeedMore(needed int, section string) string {
	noun := "entry"
	if needed > 1 {
		noun = "entries"
	}
	msg := fmt.Sprintf("Please add %d more valid fuel %s to %s.", needed, noun, section)
	if section == SectionStats {
		msg += fmt.Sprintf(" (Requires at least %d entries with a calculated distance traveled and no data errors)", Threshold)
	}
	return msg
}

// OwnershipNotice explains an unavailable projection.
func OwnershipNotice(o Ownership) string {
	switch o.Reason {
	case NoVehicle:
		return "Please select or add a car to view Total Cost of Ownership."
	case NoPurchasePrice:
		return "To see Total Cost of Ownership, edit your car and add its purchase price."
	case NotEnoughEntries:
		return NeedMore(o.Needed, SectionOwnership)
	}
	return ""
}

// DataErrorNotice is shown above a log containing invalid entries.
const DataErrorNotice = "Data Entry Issue: Some entries (marked !) appear to have invalid data (e.g., odometer not increasing, missing values). These entries are excluded from statistics. Please edit or delete them for accurate calculations."

// LogNotice explains the role of the first entry. It is empty for an
// empty log.
func LogNotice(total int) string {
	needed := Threshold + 1
	switch {
	case total == 0:
		return ""
	case total < needed:
		return fmt.Sprintf("Note: The first entry (marked *) establishes your starting odometer reading. For accuracy, at least %d total entries are needed to generate stats and charts.", needed)
	default:
		return "Note: The first entry is always marked as your baseline reading and is excluded from statistics."
	}
}
