// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dirPerm     = fs.FileMode(0o700)
	filePerm    = fs.FileMode(0o600)
	openTimeout = 5 * time.Second

	// FileName is the settings database file name inside the data directory.
	FileName = "settings.db"
)

var settingsBucket = []byte("settings")

// Store is the bbolt-backed [Provider].
type Store struct {
	db *bolt.DB

	mu       sync.RWMutex
	defaults map[Key]any
}

// LoadAt opens the settings database at path, creating it and its parent
// directory when missing.
func LoadAt(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating settings directory: %w", err)
	}

	db, err := bolt.Open(path, filePerm, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening settings db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing settings db: %w", err)
	}

	return &Store{db: db, defaults: defaultValues()}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetDefault replaces the value returned for key when it was never set.
// Used to apply configuration-provided defaults at startup.
func (s *Store) SetDefault(key Key, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkType(s.defaults, key, value); err != nil {
		return err
	}
	s.defaults[key] = value
	return nil
}

// Set persists value under key. The value must have the same type as the
// key's default.
func (s *Store) Set(key Key, value any) error {
	s.mu.RLock()
	err := checkType(s.defaults, key, value)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %s: %w", key, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(settingsBucket).Put([]byte(key), raw)
	})
}

// Int returns an integer setting.
func (s *Store) Int(key Key) int {
	return get[int](s, key)
}

// Bool returns a boolean setting.
func (s *Store) Bool(key Key) bool {
	return get[bool](s, key)
}

// String returns a string setting.
func (s *Store) String(key Key) string {
	return get[string](s, key)
}

// Strings returns a string list setting. The returned slice is never nil.
func (s *Store) Strings(key Key) []string {
	v := get[[]string](s, key)
	if v == nil {
		return []string{}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// get decodes the stored value of key, falling back to its default when
// the key is absent or undecodable.
func get[T any](s *Store, key Key) T {
	s.mu.RLock()
	def, _ := s.defaults[key].(T)
	s.mu.RUnlock()

	var raw []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(settingsBucket).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if raw == nil {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def
	}
	return value
}

func checkType(defaults map[Key]any, key Key, value any) error {
	def, ok := defaults[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if reflect.TypeOf(def) != reflect.TypeOf(value) {
		return fmt.Errorf("%w: %s expects %T, got %T", ErrTypeMismatch, key, def, value)
	}
	return nil
}
