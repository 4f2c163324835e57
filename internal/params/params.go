// Package params holds the fixed names and defaults shared by the storage,
// export and configuration layers.
package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/gradients/internal/application"
)

// Durable blob keys. Each key is written independently of the others.
const (
	KeyCustomGradients     = "custom-gradients"
	KeyFavoriteGradients   = "favorite-gradients"
	KeyGradientCollections = "gradient-collections"
)

// Storage backends.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

const (
	ConfigFileName = "config.ini"
	BoltFileName   = "gradients.bolt"
	SQLiteFileName = "gradients.db"

	DefaultExportWidth  = 800
	DefaultExportHeight = 600
)

// ConfigPath returns the path of the ini configuration file.
func ConfigPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// EnsureDataDir creates dir when missing and returns it unchanged.
func EnsureDataDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("data directory is empty")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return dir, nil
}
