package services

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// RateStore holds the live RateTable snapshot shared by request handlers.
// Reads are lock-free; updates swap the whole table atomically so in-flight
// quote computations always see a consistent set of rates.
type RateStore struct {
	current atomic.Pointer[RateTable]
}

// NewRateStore returns a store primed with the given table.
func NewRateStore(rt RateTable) *RateStore {
	s := &RateStore{}
	s.Swap(rt)
	return s
}

// Current returns the active rate table snapshot.
func (s *RateStore) Current() RateTable {
	return *s.current.Load()
}

// Swap replaces the active snapshot.
func (s *RateStore) Swap(rt RateTable) {
	s.current.Store(&rt)
}

// MarshalRateTable serializes a table for the rate_settings collection.
func MarshalRateTable(rt RateTable) (string, error) {
	b, err := json.Marshal(rt)
	if err != nil {
		return "", fmt.Errorf("marshal rate table: %w", err)
	}
	return string(b), nil
}

// UnmarshalRateTable parses a stored rate table blob.
func UnmarshalRateTable(raw string) (RateTable, error) {
	var rt RateTable
	if err := json.Unmarshal([]byte(raw), &rt); err != nil {
		return RateTable{}, fmt.Errorf("parse rate table: %w", err)
	}
	return rt, nil
}
