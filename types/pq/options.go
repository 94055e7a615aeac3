package pq

import (
	"golang.org/x/exp/slices"

	"github.com/couchbase/tools-pqueue/core/log"
)

// Options encapsulates the available options which can be used when creating a priority queue.
type Options struct {
	// Capacity is the initial capacity of the underlying slice, the queue may grow beyond it.
	Capacity int

	// Immediate disables deferred sorting, meaning every insertion re-sorts the queue. Defaults to false, sorting is
	// deferred until an item is removed from either end of the queue.
	Immediate bool

	// SortCriteria is the initial sort criteria, an invalid criteria is ignored.
	SortCriteria []SortKey

	// DefaultCriteria is installed as the sort criteria when sorting a queue with no criteria. Defaults to sorting by
	// priority, an invalid criteria is replaced by the default.
	DefaultCriteria []SortKey

	// LogPrefix is the prefix used when logging. Defaults to '(pq)'.
	LogPrefix string

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	o.Capacity = max(0, o.Capacity)

	if !validCriteria(o.SortCriteria) {
		o.SortCriteria = nil
	}

	if validCriteria(o.DefaultCriteria) {
		o.DefaultCriteria = slices.Clone(o.DefaultCriteria)
	} else {
		o.DefaultCriteria = DefaultSortCriteria()
	}

	if o.LogPrefix == "" {
		o.LogPrefix = "(pq)"
	}
}
