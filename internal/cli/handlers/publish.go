package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/publish"
)

// Publish sends the vehicle's summary and primary statistics to the
// configured MQTT broker.
func Publish(deps *cli.Deps, vehicle string) {
	cfg := deps.Services.Config.Get().MQTT
	if !cfg.Enabled {
		deps.Fail("MQTT publishing is not enabled", nil,
			fmt.Sprintf("Set enabled = true and broker under [mqtt] in %s", deps.Services.Config.GetPath()))
		return
	}

	res, ok := computeStats(deps, vehicle)
	if !ok {
		return
	}

	msgs, err := publish.BuildMessages(cfg.TopicPrefix, publish.Snapshot{
		Vehicle:   res.Vehicle,
		Units:     deps.Services.Units.Current(),
		Entries:   len(res.Processed.Entries),
		Invalid:   entry.CountInvalid(res.Processed.Entries),
		Stats:     res.Stats,
		Ownership: res.Ownership,
		Notices:   res.Notices(),
		Time:      deps.Now(),
	})
	if err != nil {
		deps.Fail("Failed to build messages", err, "")
		return
	}

	sender, err := deps.Connect(cfg, deps.Log)
	if err != nil {
		if errors.Is(err, publish.ErrDisabled) {
			deps.Fail("MQTT publishing is not enabled", nil, "")
			return
		}
		deps.Fail("Failed to connect to MQTT broker", err, fmt.Sprintf("Check that %s is reachable", cfg.Broker))
		return
	}
	defer sender.Close()

	if err := sender.Send(msgs); err != nil {
		deps.Fail("Failed to publish", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Published %s for %s to %s\n", cli.Count(len(msgs), "message"), res.Vehicle, cfg.Broker)
}
