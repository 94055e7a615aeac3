// Package variable exposes utilities for getting configuration from the environment.
package variable

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/couchbase/tools-pqueue/types/pq"
)

// queueOptions are the priority queue options which may be set using environment variables.
type queueOptions struct {
	Capacity        int          `env:"CAPACITY"`
	Immediate       bool         `env:"IMMEDIATE"`
	SortCriteria    []pq.SortKey `env:"SORT_CRITERIA" envSeparator:","`
	DefaultCriteria []pq.SortKey `env:"DEFAULT_CRITERIA" envSeparator:","`
}

// GetQueueOptions returns the priority queue options from the environment, using the provided defaults for any
// variables which are not set. Variables are read using the given prefix, for example with the prefix 'CB_PQ_' the
// variables are:
//
//	CB_PQ_CAPACITY         - initial capacity of the queue
//	CB_PQ_IMMEDIATE        - boolean, disables deferred sorting
//	CB_PQ_SORT_CRITERIA    - comma separated list of sort keys, e.g. 'priority,timestamp'
//	CB_PQ_DEFAULT_CRITERIA - comma separated list of sort keys used when no criteria is set
//
// NOTE: The logger related options are never read from the environment and are always taken from the defaults.
func GetQueueOptions(prefix string, defaults pq.Options) (pq.Options, error) {
	opts := queueOptions{
		Capacity:        defaults.Capacity,
		Immediate:       defaults.Immediate,
		SortCriteria:    defaults.SortCriteria,
		DefaultCriteria: defaults.DefaultCriteria,
	}

	err := env.ParseWithOptions(&opts, env.Options{Prefix: prefix})
	if err != nil {
		return pq.Options{}, fmt.Errorf("failed to get queue options from environment: %w", err)
	}

	if opts.Capacity < 0 {
		return pq.Options{}, fmt.Errorf("invalid capacity %d, must be non-negative", opts.Capacity)
	}

	defaults.Capacity = opts.Capacity
	defaults.Immediate = opts.Immediate
	defaults.SortCriteria = opts.SortCriteria
	defaults.DefaultCriteria = opts.DefaultCriteria

	return defaults, nil
}
