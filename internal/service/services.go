package service

import (
	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/logging"
	"github.com/xolan/fuel/internal/session"
	"github.com/xolan/fuel/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Vehicle  *VehicleService
	Entry    *EntryService
	Stats    *StatsService
	Transfer *TransferService
	Units    *UnitsService
	Storage  *StorageService
	Session  *SessionService
	Config   *ConfigService
}

// Paths locates the files the services work on.
type Paths struct {
	Storage string
	State   string
	Config  string
}

// DefaultPaths resolves the files under the application directory for cfg.
func DefaultPaths(cfg config.Config) (Paths, error) {
	storagePath, err := storage.GetStoragePath(cfg.StorageBackend)
	if err != nil {
		return Paths{}, err
	}
	statePath, err := session.GetStatePath()
	if err != nil {
		return Paths{}, err
	}
	configPath, err := config.GetConfigPath()
	if err != nil {
		return Paths{}, err
	}
	return Paths{Storage: storagePath, State: statePath, Config: configPath}, nil
}

// NewServices creates a new Services instance with default paths
func NewServices(log logging.Logger) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	stored, err := config.LoadFileOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.WithEnv(stored)
	if err != nil {
		return nil, err
	}
	paths, err := DefaultPaths(cfg)
	if err != nil {
		return nil, err
	}
	return NewServicesWithPaths(paths, stored, log)
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing).
// stored holds the config file settings; FUEL_* overrides apply on top.
func NewServicesWithPaths(paths Paths, stored config.Config, log logging.Logger) (*Services, error) {
	if log == nil {
		log = logging.Nop{}
	}
	configService := NewConfigService(paths.Config, stored)
	store, err := storage.Open(configService.Get().StorageBackend, paths.Storage)
	if err != nil {
		return nil, err
	}

	repo := newRepository(store, log)
	sessionService := NewSessionService(paths.State)
	entryService := NewEntryService(repo, sessionService)
	statsService := NewStatsService(repo, configService)

	return &Services{
		Vehicle:  NewVehicleService(repo, sessionService),
		Entry:    entryService,
		Stats:    statsService,
		Transfer: NewTransferService(entryService, statsService),
		Units:    NewUnitsService(repo, configService),
		Storage:  NewStorageService(repo),
		Session:  sessionService,
		Config:   configService,
	}, nil
}

// Close releases the storage backend.
func (s *Services) Close() error {
	return s.Storage.Close()
}
