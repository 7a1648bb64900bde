package service

import (
	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/stats"
)

// StatsService computes statistics, ownership cost and chart series.
type StatsService struct {
	repo   *repository
	config *ConfigService
}

// NewStatsService creates a new StatsService
func NewStatsService(repo *repository, cfg *ConfigService) *StatsService {
	return &StatsService{repo: repo, config: cfg}
}

// Options returns the report options for the current configuration.
func (s *StatsService) Options() stats.Options {
	cfg := s.config.Get()
	return stats.Options{Units: cfg.Units(), Currency: cfg.CurrencySymbol}
}

// Compute derives everything for vehicle from its stored entries. The
// empty name yields an empty result with the "no vehicle" ownership
// notice.
func (s *StatsService) Compute(vehicle string) (*StatsResult, error) {
	opts := s.Options()
	var (
		raws  []entry.RawEntry
		price *float64
	)
	if vehicle != "" {
		_, v, err := s.repo.vehicle(vehicle)
		if err != nil {
			return nil, err
		}
		raws, price = v.Entries, v.Price
	}

	processed := entry.Process(raws)
	usable := processed.Usable()
	agg := stats.Aggregate(usable, opts)
	return &StatsResult{
		Vehicle:   vehicle,
		Processed: processed,
		Usable:    usable,
		Stats:     agg,
		Ownership: stats.Project(vehicle, agg.TotalFuelCost, usable, price),
		Series:    stats.BuildSeries(usable, opts),
		Currency:  opts.Currency,
	}, nil
}
