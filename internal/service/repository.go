package service

import (
	"fmt"

	"github.com/xolan/fuel/internal/entry"
	"github.com/xolan/fuel/internal/logging"
	"github.com/xolan/fuel/internal/storage"
)

// repository loads and saves the garage for the services. Every save
// re-derives each vehicle's invalid-entry flag from its entries.
type repository struct {
	store storage.Store
	log   logging.Logger
}

func newRepository(store storage.Store, log logging.Logger) *repository {
	if log == nil {
		log = logging.Nop{}
	}
	return &repository{store: store, log: log.With("storage")}
}

// load reads the garage. Data in an older layout is written back in the
// current layout right away, so the migration happens once.
func (r *repository) load() (storage.LoadResult, error) {
	res, err := r.store.Load()
	if err != nil {
		return res, fmt.Errorf("failed to load vehicles: %w", err)
	}
	for _, w := range res.Warnings {
		r.log.Warnf("skipping unreadable vehicle %q: %s", w.Vehicle, w.Error)
	}
	if len(res.Garage) > 0 && (len(res.Migrated) > 0 || res.Version < storage.SchemaVersion) {
		r.log.Infof("migrating %d vehicle(s) from schema %d to %d", len(res.Migrated), res.Version, storage.SchemaVersion)
		if err := r.save(res.Garage); err != nil {
			return res, fmt.Errorf("failed to migrate vehicles: %w", err)
		}
	}
	return res, nil
}

func (r *repository) garage() (storage.Garage, error) {
	res, err := r.load()
	if err != nil {
		return nil, err
	}
	return res.Garage, nil
}

func (r *repository) save(g storage.Garage) error {
	for name, v := range g {
		v.HasInvalidEntries = entry.Process(v.Entries).HasInvalidEntries
		g[name] = v
	}
	if err := r.store.Save(g); err != nil {
		return fmt.Errorf("failed to save vehicles: %w", err)
	}
	r.log.Debugf("saved %d vehicle(s) to %s", len(g), r.store.Path())
	return nil
}

// vehicle returns the named record or ErrVehicleNotFound.
func (r *repository) vehicle(name string) (storage.Garage, storage.Vehicle, error) {
	g, err := r.garage()
	if err != nil {
		return nil, storage.Vehicle{}, err
	}
	v, ok := g[name]
	if !ok {
		return nil, storage.Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, name)
	}
	return g, v, nil
}
