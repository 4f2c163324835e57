package store

import (
	"fmt"
	"log/slog"

	"github.com/inovacc/gradients/internal/encoding"
)

// Adapter serializes values to JSON blobs on top of a Store.
type Adapter struct {
	blobs Store
	log   *slog.Logger
}

// NewAdapter wraps blobs. A nil logger discards log output.
func NewAdapter(blobs Store, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Adapter{blobs: blobs, log: log}
}

// Save encodes value and writes it under key.
func (a *Adapter) Save(key string, value any) error {
	data, err := encoding.ToJSON(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := a.blobs.Put(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	a.log.Debug("blob saved", "key", key, "bytes", len(data))

	return nil
}

// Load reads and decodes the blob under key. The second result is false when
// the key was never written, could not be read, or does not parse; callers
// fall back to their default state in every one of those cases.
func Load[T any](a *Adapter, key string) (T, bool) {
	var zero T

	data, err := a.blobs.Get(key)
	if err != nil {
		a.log.Error("failed to read blob, using defaults", "key", key, "error", err)

		return zero, false
	}

	if data == nil {
		return zero, false
	}

	value, err := encoding.ParseJSON[T](data)
	if err != nil {
		a.log.Warn("ignoring unreadable blob", "key", key, "error", err)

		return zero, false
	}

	return *value, true
}
