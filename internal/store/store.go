package store

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/gradients/internal/params"
)

// Store defines the blob operations used by the app.
type Store interface {
	Ping() error
	// Get returns nil, nil when key was never written.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Open creates the store for backend inside dataDir.
func Open(backend, dataDir string) (Store, error) {
	dir, err := params.EnsureDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	var instance Store

	switch backend {
	case params.BackendBolt, "":
		instance, err = NewBolt(filepath.Join(dir, params.BoltFileName))
	case params.BackendSQLite:
		instance, err = NewSQLite(filepath.Join(dir, params.SQLiteFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", backend, err)
	}

	if err := instance.Ping(); err != nil {
		_ = instance.Close()

		return nil, fmt.Errorf("pinging %s store: %w", backend, err)
	}

	return instance, nil
}
