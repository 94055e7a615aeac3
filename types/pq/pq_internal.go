package pq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// sort stably sorts the items using the current criteria, installing the default criteria if none is set.
func (p *PriorityQueue[T]) sort() {
	if len(p.items) < 2 {
		return
	}

	if len(p.criteria) == 0 {
		p.criteria = slices.Clone(p.defaultCriteria)
	}

	p.logger.Tracef("sorting %d items by %v", len(p.items), p.criteria)

	slices.SortStableFunc(p.items, func(a, b *Item[T]) int {
		return compareItems(a, b, p.criteria)
	})

	p.invalidated = false
}

// compareItems compares the two items by each key in turn, returning the result of the first key which differs.
func compareItems[T any](a, b *Item[T], criteria []SortKey) int {
	for _, key := range criteria {
		if c := compare(a.Value(key), b.Value(key)); c != 0 {
			return c
		}
	}

	return 0
}

// compare returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b.
func compare[N constraints.Ordered](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
