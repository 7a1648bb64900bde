package storage

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the path of backup n for the given storage file.
// Backups are named <file>.bak.N; lower numbers are more recent.
func GetBackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
// Missing files are skipped.
func rotateBackups(storagePath string) error {
	if err := os.Remove(GetBackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(GetBackupPath(storagePath, i), GetBackupPath(storagePath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// CreateBackup copies the storage file to .bak.1 after rotating older
// backups. Nothing happens when the storage file doesn't exist yet.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}
	return copyFile(storagePath, GetBackupPath(storagePath, 1))
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number  int       // The backup number (1, 2, or 3)
	Path    string    // The full path to the backup file
	ModTime time.Time // When the backup was taken
	Size    int64
}

// ListBackups returns the existing backups of storagePath, most recent first.
func ListBackups(storagePath string) ([]BackupInfo, error) {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := GetBackupPath(storagePath, i)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		backups = append(backups, BackupInfo{
			Number:  i,
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return backups, nil
}

// RestoreBackup replaces the storage file with backup n. The current state
// is backed up first, so a restore can itself be undone.
func RestoreBackup(storagePath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := GetBackupPath(storagePath, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	// Rotation renames .bak.n, so read it before taking the safety backup.
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}
	if err := CreateBackup(storagePath); err != nil {
		return err
	}
	return writeAtomic(storagePath, data)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
