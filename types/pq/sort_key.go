package pq

import (
	"fmt"
	"strings"
)

// SortKey selects the item attribute compared when sorting a priority queue.
type SortKey uint8

const (
	// SortKeyPriority orders items by their priority.
	SortKeyPriority SortKey = iota + 1

	// SortKeyTimestamp orders items by their timestamp.
	SortKeyTimestamp
)

// sortKeyNames maps each valid key to the name used in configuration/logs.
var sortKeyNames = map[SortKey]string{
	SortKeyPriority:  "priority",
	SortKeyTimestamp: "timestamp",
}

// DefaultSortCriteria returns the criteria used when sorting a queue which has no criteria assigned.
func DefaultSortCriteria() []SortKey {
	return []SortKey{SortKeyPriority}
}

// ParseSortKey returns the key with the given name, and a boolean indicating whether the name was recognised.
func ParseSortKey(name string) (SortKey, bool) {
	for key, n := range sortKeyNames {
		if n == name {
			return key, true
		}
	}

	return 0, false
}

// ParseSortCriteria parses the given names into sort keys, returning false if any name is not recognised.
func ParseSortCriteria(names ...string) ([]SortKey, bool) {
	keys := make([]SortKey, 0, len(names))

	for _, name := range names {
		key, ok := ParseSortKey(name)
		if !ok {
			return nil, false
		}

		keys = append(keys, key)
	}

	return keys, true
}

// Valid returns a boolean indicating whether the key is one of the known keys.
func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

// String implements the 'fmt.Stringer' interface.
func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}

	return fmt.Sprintf("SortKey(%d)", uint8(k))
}

// MarshalText implements the 'encoding.TextMarshaler' interface.
func (k SortKey) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid sort key %d", uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements the 'encoding.TextUnmarshaler' interface, surrounding whitespace is ignored.
func (k *SortKey) UnmarshalText(text []byte) error {
	key, ok := ParseSortKey(strings.TrimSpace(string(text)))
	if !ok {
		return fmt.Errorf("unknown sort key '%s'", text)
	}

	*k = key

	return nil
}

// validCriteria returns a boolean indicating whether the criteria is non-empty and contains only known keys.
func validCriteria(keys []SortKey) bool {
	if len(keys) == 0 {
		return false
	}

	for _, key := range keys {
		if !key.Valid() {
			return false
		}
	}

	return true
}
