package publish

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"github.com/xolan/fuel/internal/stats"
	"github.com/xolan/fuel/internal/units"
)

// Message is one MQTT publication.
type Message struct {
	Topic    string
	Payload  []byte
	Retained bool
}

// Snapshot is the data published for one vehicle.
type Snapshot struct {
	Vehicle   string
	Units     units.System
	Entries   int
	Invalid   int
	Stats     stats.Result
	Ownership stats.Ownership
	Notices   []string
	Time      time.Time
}

// summary is the JSON body of the summary topic.
type summary struct {
	Vehicle     string           `json:"vehicle"`
	UnitSystem  string           `json:"unitSystem"`
	Entries     int              `json:"entries"`
	Invalid     int              `json:"invalidEntries"`
	Usable      int              `json:"usableEntries"`
	FuelCost    float64          `json:"totalFuelCost"`
	Summary     *stats.Summary   `json:"summary"`
	Report      *stats.Report    `json:"report,omitempty"`
	Ownership   *stats.Ownership `json:"ownership,omitempty"`
	Notices     []string         `json:"notices,omitempty"`
	PublishedAt string           `json:"publishedAt"`
}

// Slug turns a label into a topic segment: lowercase letters and digits
// separated by single underscores.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// BuildMessages returns the summary message followed by one message per
// primary statistic. Per-stat topics are only sent once the report is
// available.
func BuildMessages(prefix string, snap Snapshot) ([]Message, error) {
	base := strings.Trim(prefix, "/") + "/" + Slug(snap.Vehicle)

	body := summary{
		Vehicle:     snap.Vehicle,
		UnitSystem:  string(snap.Units),
		Entries:     snap.Entries,
		Invalid:     snap.Invalid,
		Usable:      snap.Stats.Count,
		FuelCost:    snap.Stats.TotalFuelCost,
		Summary:     snap.Stats.Summary,
		Report:      snap.Stats.Report,
		Notices:     snap.Notices,
		PublishedAt: snap.Time.UTC().Format(time.RFC3339),
	}
	if snap.Ownership.Available() {
		o := snap.Ownership
		body.Ownership = &o
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	msgs := []Message{{Topic: base + "/summary", Payload: payload, Retained: true}}
	if snap.Stats.Report == nil {
		return msgs, nil
	}
	if primary := snap.Stats.Report.Category(stats.CategoryPrimary); primary != nil {
		for _, s := range primary.Stats {
			msgs = append(msgs, Message{
				Topic:    base + "/" + Slug(s.Label),
				Payload:  []byte(s.Value),
				Retained: true,
			})
		}
	}
	return msgs, nil
}
