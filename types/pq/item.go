package pq

import "math"

// Item encapsulates a payload and the attributes used to order it in a priority queue.
//
// NOTE: Setters silently ignore invalid values and retain the previous value, they never return an error.
type Item[T any] struct {
	priority  float64
	timestamp float64
	payload   *T
}

// NewItem returns an item with a zero priority/timestamp and no payload.
func NewItem[T any]() *Item[T] {
	return &Item[T]{}
}

// NewItemWithDefault returns an item whose payload is eagerly set to a newly allocated zero value of T.
func NewItemWithDefault[T any]() *Item[T] {
	return &Item[T]{payload: new(T)}
}

// NewItemWithFactory returns an item whose payload is eagerly constructed using the given factory. A nil factory, or
// one which returns nil, results in an item with no payload.
func NewItemWithFactory[T any](factory func() *T) *Item[T] {
	item := NewItem[T]()

	if factory != nil {
		item.SetPayload(factory())
	}

	return item
}

// Priority returns the priority of the item, smaller values are removed from the front of the queue first.
func (i *Item[T]) Priority() float64 {
	return i.priority
}

// SetPriority sets the priority if the given value is a finite, non-negative number.
func (i *Item[T]) SetPriority(v float64) {
	if validAttribute(v) {
		i.priority = v
	}
}

// Timestamp returns the timestamp of the item.
func (i *Item[T]) Timestamp() float64 {
	return i.timestamp
}

// SetTimestamp sets the timestamp if the given value is a finite, non-negative number.
func (i *Item[T]) SetTimestamp(v float64) {
	if validAttribute(v) {
		i.timestamp = v
	}
}

// Payload returns the payload handle, this is not a copy; mutations made through it are visible to every holder.
func (i *Item[T]) Payload() *T {
	return i.payload
}

// SetPayload sets the payload handle, nil handles are ignored.
func (i *Item[T]) SetPayload(v *T) {
	if v != nil {
		i.payload = v
	}
}

// HasPayload returns a boolean indicating whether a payload has been set.
func (i *Item[T]) HasPayload() bool {
	return i.payload != nil
}

// Value returns the attribute of the item selected by the given key, unknown keys return zero.
func (i *Item[T]) Value(key SortKey) float64 {
	switch key {
	case SortKeyPriority:
		return i.priority
	case SortKeyTimestamp:
		return i.timestamp
	}

	return 0
}

// validAttribute returns a boolean indicating whether the given value may be used as a priority/timestamp.
func validAttribute(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
