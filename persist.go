package rowan

import (
	"encoding/json"
	"fmt"
)

// Tier controls how long a stored value survives.
type Tier uint8

const (
	// RetainReload keeps the value across script reloads but not restarts.
	RetainReload Tier = iota
	// RetainRestart keeps the value across restarts via SaveJSON/LoadJSON.
	RetainRestart
)

func (t Tier) String() string {
	switch t {
	case RetainReload:
		return "reload"
	case RetainRestart:
		return "restart"
	default:
		return "unknown"
	}
}

type storeEntry struct {
	value any
	tier  Tier
}

// Store holds values that outlive a single script run. Values set during a
// session survive Reload; values placed in the restart tier can additionally
// be serialized to JSON and restored in a later process.
type Store struct {
	entries map[string]storeEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]storeEntry)}
}

// Set stores a value in the reload tier.
func (s *Store) Set(key string, value any) {
	s.SetTier(key, value, RetainReload)
}

// SetTier stores a value with an explicit retention tier.
func (s *Store) SetTier(key string, value any, tier Tier) {
	s.entries[key] = storeEntry{value: value, tier: tier}
}

// Get returns the stored value and whether the key exists.
func (s *Store) Get(key string) (any, bool) {
	e, ok := s.entries[key]
	return e.value, ok
}

// GetString returns the value as a string, or the empty string when the key
// is missing or holds another type.
func (s *Store) GetString(key string) string {
	if v, ok := s.entries[key]; ok {
		if str, ok := v.value.(string); ok {
			return str
		}
	}
	return ""
}

// GetFloat returns the value as a float64, accepting stored ints.
func (s *Store) GetFloat(key string) float64 {
	v, ok := s.entries[key]
	if !ok {
		return 0
	}
	switch n := v.value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// GetInt returns the value as an int, accepting stored float64s (JSON
// numbers decode as float64).
func (s *Store) GetInt(key string) int {
	v, ok := s.entries[key]
	if !ok {
		return 0
	}
	switch n := v.value.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// GetBool returns the value as a bool, or false.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.entries[key]; ok {
		if b, ok := v.value.(bool); ok {
			return b
		}
	}
	return false
}

// Delete removes a key. Missing keys are ignored.
func (s *Store) Delete(key string) {
	delete(s.entries, key)
}

// Len returns the number of stored keys.
func (s *Store) Len() int { return len(s.entries) }

// OnReload returns the existing value for key, or installs and returns def
// when the key is absent. Scripts call this at load time so state carries
// over a reload while first runs get a clean default.
func (s *Store) OnReload(key string, def any) any {
	if e, ok := s.entries[key]; ok {
		return e.value
	}
	s.entries[key] = storeEntry{value: def, tier: RetainReload}
	return def
}

// Reset simulates a restart: reload-tier entries are dropped, restart-tier
// entries survive.
func (s *Store) Reset() {
	for k, e := range s.entries {
		if e.tier == RetainReload {
			delete(s.entries, k)
		}
	}
}

// SaveJSON serializes the restart-tier entries. Reload-tier entries are
// deliberately excluded.
func (s *Store) SaveJSON() ([]byte, error) {
	out := make(map[string]any)
	for k, e := range s.entries {
		if e.tier == RetainRestart {
			out[k] = e.value
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return data, nil
}

// LoadJSON merges previously saved restart-tier entries into the store.
// Existing keys are overwritten.
func (s *Store) LoadJSON(data []byte) error {
	var in map[string]any
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	for k, v := range in {
		s.entries[k] = storeEntry{value: v, tier: RetainRestart}
	}
	return nil
}
