package service

import (
	"fmt"

	"github.com/xolan/fuel/internal/storage"
)

// StorageService exposes storage health and backup operations.
type StorageService struct {
	repo *repository
}

// NewStorageService creates a new StorageService
func NewStorageService(repo *repository) *StorageService {
	return &StorageService{repo: repo}
}

// Path returns the storage file.
func (s *StorageService) Path() string {
	return s.repo.store.Path()
}

// Validate reports the health of the stored data without changing it.
func (s *StorageService) Validate() (storage.StorageHealth, error) {
	health, err := storage.ValidateStorage(s.repo.store)
	if err != nil {
		return health, fmt.Errorf("failed to validate storage: %w", err)
	}
	return health, nil
}

// ListBackups returns the available backups, most recent first.
func (s *StorageService) ListBackups() ([]storage.BackupInfo, error) {
	return storage.ListBackups(s.Path())
}

// Restore replaces the storage file with backup n. The store is closed
// first so the next read sees the restored file.
func (s *StorageService) Restore(n int) error {
	if err := s.repo.store.Close(); err != nil {
		return err
	}
	if err := storage.RestoreBackup(s.Path(), n); err != nil {
		return err
	}
	s.repo.log.Infof("restored %s from backup %d", s.Path(), n)
	return nil
}

// Close releases the store.
func (s *StorageService) Close() error {
	return s.repo.store.Close()
}
