package db

import (
	"fmt"
	"io"
	"os"
)

// Backup copies the database file to destPath.
// A missing source database is reported as a SchemaError so the caller can
// surface the init hint.
func Backup(dbPath, destPath string) error {
	src, err := os.Open(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &SchemaError{Err: fmt.Errorf("database %s does not exist", dbPath)}
		}
		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy database: %w", err)
	}

	if err := dst.Sync(); err != nil {
		return fmt.Errorf("failed to flush backup file: %w", err)
	}

	return nil
}
