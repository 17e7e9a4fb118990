package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// Records are stored as JSON keyed by the entity's natural string id. A decode
// failure means the stored bytes no longer match the record shape; it is
// surfaced as a read error and never recovered from.

func putRecord[T any](tx *bolt.Tx, bucket []byte, key string, rec T) error {
	if key == "" {
		return fmt.Errorf("%s: record id must not be empty", bucket)
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", bucket, key, err)
	}
	return tx.Bucket(bucket).Put([]byte(key), raw)
}

func getRecord[T any](tx *bolt.Tx, bucket []byte, key string) (T, bool, error) {
	var rec T
	raw := tx.Bucket(bucket).Get([]byte(key))
	if raw == nil {
		return rec, false, nil
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, false, fmt.Errorf("decode %s %q: %w", bucket, key, err)
	}
	return rec, true, nil
}

func deleteRecord(tx *bolt.Tx, bucket []byte, key string) (bool, error) {
	b := tx.Bucket(bucket)
	if b.Get([]byte(key)) == nil {
		return false, nil
	}
	return true, b.Delete([]byte(key))
}

// listRecords returns every record in the bucket in key order (lexicographic,
// not insertion order).
func listRecords[T any](tx *bolt.Tx, bucket []byte) ([]T, error) {
	out := make([]T, 0)
	err := tx.Bucket(bucket).ForEach(func(k, v []byte) error {
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("decode %s %q: %w", bucket, k, err)
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}
