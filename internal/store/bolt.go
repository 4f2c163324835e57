package store

import (
	"bytes"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketBlobs = "blobs" // key: blob key -> encoded value

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketBlobs))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Get(key string) ([]byte, error) {
	var out []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		blobs := tx.Bucket([]byte(boltBucketBlobs))

		// Values are only valid for the life of the transaction.
		if v := blobs.Get([]byte(key)); v != nil {
			out = bytes.Clone(v)
		}

		return nil
	})

	return out, err
}

func (b *Bolt) Put(key string, value []byte) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		blobs := tx.Bucket([]byte(boltBucketBlobs))

		return blobs.Put([]byte(key), value)
	})
}

func (b *Bolt) Delete(key string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		blobs := tx.Bucket([]byte(boltBucketBlobs))

		return blobs.Delete([]byte(key))
	})
}

func (b *Bolt) Keys() ([]string, error) {
	var out []string

	err := b.storage.View(func(tx *bbolt.Tx) error {
		blobs := tx.Bucket([]byte(boltBucketBlobs))

		return blobs.ForEach(func(k, _ []byte) error {
			out = append(out, string(k))

			return nil
		})
	})

	return out, err
}
