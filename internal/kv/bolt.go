package kv

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const openTimeout = 5 * time.Second

// ErrBucketNotFound is returned by Load when the bucket path does not exist.
var ErrBucketNotFound = errors.New("bucket not found")

// Save writes every key of s into the bolt database at path under bucket.
// Bucket paths are '/'-separated and created as nested buckets; existing
// keys in the bucket are overwritten.
func Save(path, bucket string, s Store) error {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		b, err := createBucket(tx, bucket)
		if err != nil {
			return err
		}
		for _, k := range s.Keys() {
			v, _ := s.Get(k)
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return errors.Wrapf(err, "failed to put %s", k)
			}
		}
		return nil
	})
}

// Load reads bucket from the bolt database at path into a new Memory store.
func Load(path, bucket string) (*Memory, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout, ReadOnly: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer db.Close()

	s := New()
	err = db.View(func(tx *bolt.Tx) error {
		b := lookupBucket(tx, bucket)
		if b == nil {
			return errors.Wrap(ErrBucketNotFound, bucket)
		}
		return b.ForEach(func(k, v []byte) error {
			if v != nil {
				s.Set(string(k), string(v))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func createBucket(tx *bolt.Tx, path string) (*bolt.Bucket, error) {
	parts := strings.Split(path, "/")
	b, err := tx.CreateBucketIfNotExists([]byte(parts[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create bucket %s", parts[0])
	}
	for _, p := range parts[1:] {
		if b, err = b.CreateBucketIfNotExists([]byte(p)); err != nil {
			return nil, errors.Wrapf(err, "failed to create bucket %s", p)
		}
	}
	return b, nil
}

func lookupBucket(tx *bolt.Tx, path string) *bolt.Bucket {
	parts := strings.Split(path, "/")
	b := tx.Bucket([]byte(parts[0]))
	for _, p := range parts[1:] {
		if b == nil {
			return nil
		}
		b = b.Bucket([]byte(p))
	}
	return b
}
