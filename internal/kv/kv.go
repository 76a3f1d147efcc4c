// Package kv provides the key-value metadata store attached to every binary
// object.
package kv

import (
	"sort"
	"strconv"
)

// Store is a flat string key-value store. Implementations are not safe for
// concurrent use.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string)
	// Delete removes key and reports whether it existed.
	Delete(key string) bool
	// Keys returns every key in lexical order.
	Keys() []string
	// Close releases the store. A closed store must not be used again.
	Close() error
}

// Memory is an in-memory Store.
type Memory struct {
	m      map[string]string
	closed bool
}

// New returns an empty in-memory store.
func New() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.m[key] = value
}

func (s *Memory) Delete(key string) bool {
	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	return true
}

func (s *Memory) Keys() []string {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (s *Memory) Len() int {
	return len(s.m)
}

func (s *Memory) Close() error {
	s.m = nil
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Memory) Closed() bool {
	return s.closed
}

// SetUint64 stores v in hex, the format used for addresses.
func SetUint64(s Store, key string, v uint64) {
	s.Set(key, "0x"+strconv.FormatUint(v, 16))
}

// GetUint64 parses a value written by SetUint64 (or any base-prefixed integer).
func GetUint64(s Store, key string) (uint64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
