// Package pq exposes a generic priority queue which orders items by one or more of their attributes.
//
// Items are kept in an unordered slice which is stably re-sorted when required; by default sorting is deferred until
// an item is removed from either end of the queue so that bulk insertion only pays for a single sort.
//
// NOTE: Items are ordered in ascending order, the item with the numerically smallest priority is at the front of the
// queue. The queue is not safe for concurrent use.
package pq

import (
	"golang.org/x/exp/slices"

	"github.com/couchbase/tools-pqueue/core/log"
)

// PriorityQueue implements a priority queue which accepts items with a generic payload, ordered by the configured sort
// criteria.
type PriorityQueue[T any] struct {
	items []*Item[T]

	criteria        []SortKey
	defaultCriteria []SortKey

	delay       bool
	invalidated bool

	logger log.WrappedLogger
}

// NewPriorityQueue creates a new priority queue where the underlying capacity is set to the given value.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	return NewPriorityQueueWithOptions[T](Options{Capacity: capacity})
}

// NewPriorityQueueWithOptions creates a new priority queue using the given options.
func NewPriorityQueueWithOptions[T any](opts Options) *PriorityQueue[T] {
	opts.defaults()

	return &PriorityQueue[T]{
		items:           make([]*Item[T], 0, opts.Capacity),
		criteria:        slices.Clone(opts.SortCriteria),
		defaultCriteria: opts.DefaultCriteria,
		delay:           !opts.Immediate,
		invalidated:     true,
		logger:          log.NewPrefixedLogger(opts.Logger, opts.LogPrefix),
	}
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return len(p.items)
}

// SortCriteria returns a copy of the current sort criteria, this is empty until either criteria is assigned or the
// queue has been sorted using the default criteria.
func (p *PriorityQueue[T]) SortCriteria() []SortKey {
	return slices.Clone(p.criteria)
}

// SetSortCriteria sets the keys used to order the queue; items are compared by the first key, ties are broken by the
// second and so on. The whole assignment is ignored if no keys are given or any key is invalid.
//
// NOTE: The queue is not re-sorted immediately, instead it's sorted using the new criteria before the next item is
// removed from either end.
func (p *PriorityQueue[T]) SetSortCriteria(keys ...SortKey) {
	if !validCriteria(keys) {
		p.logger.Tracef("ignoring invalid sort criteria %v", keys)
		return
	}

	p.criteria = slices.Clone(keys)
	p.invalidated = true
}

// SetSortCriteriaNames behaves like 'SetSortCriteria' but accepts the key names, e.g. "priority" and "timestamp".
func (p *PriorityQueue[T]) SetSortCriteriaNames(names ...string) {
	keys, ok := ParseSortCriteria(names...)
	if !ok {
		p.logger.Tracef("ignoring invalid sort criteria %q", names)
		return
	}

	p.SetSortCriteria(keys...)
}

// Delay returns a boolean indicating whether sorting is deferred whilst adding items.
func (p *PriorityQueue[T]) Delay() bool {
	return p.delay
}

// SetDelay sets whether sorting is deferred whilst adding items.
func (p *PriorityQueue[T]) SetDelay(v bool) {
	p.delay = v
}

// Invalidated returns a boolean indicating whether the queue may be out of order, and will be sorted before the next
// item is removed from either end.
func (p *PriorityQueue[T]) Invalidated() bool {
	return p.invalidated
}

// SetData replaces the contents of the queue with a shallow copy of the given items, nil items are dropped. Where no
// non-nil items are given the existing contents are retained.
//
// NOTE: The queue is neither sorted, nor marked as requiring a sort, meaning the assigned order is not guaranteed to
// be sorted until the queue is next sorted.
func (p *PriorityQueue[T]) SetData(items []*Item[T]) {
	data := make([]*Item[T], 0, len(items))

	for _, item := range items {
		if item != nil {
			data = append(data, item)
		}
	}

	if len(data) == 0 {
		p.logger.Tracef("ignoring assignment of empty data")
		return
	}

	p.items = data
}

// AddItem adds the given item to the back of the queue, nil items are ignored. The queue is immediately re-sorted
// unless sorting is being deferred.
func (p *PriorityQueue[T]) AddItem(item *Item[T]) {
	if item == nil {
		p.logger.Tracef("ignoring nil item")
		return
	}

	p.items = append(p.items, item)

	if !p.delay {
		p.sort()
		return
	}

	p.invalidated = true
}

// RemoveFirstItem removes and returns the item at the front of the queue, i.e. the item with the smallest values
// according to the sort criteria. Returns nil if the queue is empty.
func (p *PriorityQueue[T]) RemoveFirstItem() *Item[T] {
	if len(p.items) == 0 {
		return nil
	}

	if p.invalidated {
		p.sort()
	}

	item := p.items[0]

	p.items[0] = nil // avoid memory leak
	p.items = p.items[1:]

	return item
}

// RemoveLastItem removes and returns the item at the back of the queue, i.e. the item with the largest values
// according to the sort criteria. Returns nil if the queue is empty.
func (p *PriorityQueue[T]) RemoveLastItem() *Item[T] {
	n := len(p.items)
	if n == 0 {
		return nil
	}

	if p.invalidated {
		p.sort()
	}

	item := p.items[n-1]

	p.items[n-1] = nil // avoid memory leak
	p.items = p.items[:n-1]

	return item
}

// RemoveItem removes the first occurrence of the given item, compared by identity, returning a boolean indicating
// whether it was found.
//
// NOTE: Removal does not change the relative order of the remaining items, so the queue is not re-sorted.
func (p *PriorityQueue[T]) RemoveItem(item *Item[T]) bool {
	if item == nil {
		return false
	}

	idx := slices.Index(p.items, item)
	if idx == -1 {
		return false
	}

	n := len(p.items)

	p.items = slices.Delete(p.items, idx, idx+1)
	p.items[:n][n-1] = nil // avoid memory leak

	return true
}

// Clear removes all items and the sort criteria from the queue, and disables deferred sorting.
func (p *PriorityQueue[T]) Clear() {
	clear(p.items)

	p.items = p.items[:0]
	p.criteria = nil
	p.invalidated = true
	p.delay = false
}

// Drain removes all items from the front of the queue running the given function on each item. In the event of an
// error, dequeuing stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item *Item[T]) error) error {
	for p.Len() > 0 {
		if err := fn(p.RemoveFirstItem()); err != nil {
			return err
		}
	}

	return nil
}
