package variable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-pqueue/core/log"
	"github.com/couchbase/tools-pqueue/types/pq"
)

func TestGetQueueOptions(t *testing.T) {
	type test struct {
		name        string
		env         map[string]string
		expected    pq.Options
		expectedErr bool
	}

	const prefix = "CB_CUSTOMTEST_PQ_"

	defaults := pq.Options{
		Capacity:     16,
		SortCriteria: []pq.SortKey{pq.SortKeyPriority},
		LogPrefix:    "(test)",
	}

	tests := []*test{
		{
			name:     "NothingSet",
			expected: defaults,
		},
		{
			name: "AllSet",
			env: map[string]string{
				prefix + "CAPACITY":         "128",
				prefix + "IMMEDIATE":        "true",
				prefix + "SORT_CRITERIA":    "priority, timestamp",
				prefix + "DEFAULT_CRITERIA": "timestamp",
			},
			expected: pq.Options{
				Capacity:        128,
				Immediate:       true,
				SortCriteria:    []pq.SortKey{pq.SortKeyPriority, pq.SortKeyTimestamp},
				DefaultCriteria: []pq.SortKey{pq.SortKeyTimestamp},
				LogPrefix:       "(test)",
			},
		},
		{
			name: "OnlyCriteria",
			env:  map[string]string{prefix + "SORT_CRITERIA": "timestamp,priority"},
			expected: pq.Options{
				Capacity:     16,
				SortCriteria: []pq.SortKey{pq.SortKeyTimestamp, pq.SortKeyPriority},
				LogPrefix:    "(test)",
			},
		},
		{
			name:        "UnknownSortKey",
			env:         map[string]string{prefix + "SORT_CRITERIA": "priority,z"},
			expectedErr: true,
		},
		{
			name:        "InvalidCapacity",
			env:         map[string]string{prefix + "CAPACITY": "many"},
			expectedErr: true,
		},
		{
			name:        "NegativeCapacity",
			env:         map[string]string{prefix + "CAPACITY": "-1"},
			expectedErr: true,
		},
		{
			name:        "InvalidBoolean",
			env:         map[string]string{prefix + "IMMEDIATE": "sometimes"},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			opts, err := GetQueueOptions(prefix, defaults)
			if test.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, opts)
		})
	}
}

func TestGetQueueOptionsKeepsLogger(t *testing.T) {
	logger := log.NewSlogLogger(nil)

	opts, err := GetQueueOptions("CB_CUSTOMTEST_PQ_LOGGER_", pq.Options{Logger: logger})
	require.NoError(t, err)
	require.Equal(t, logger, opts.Logger)
}

func TestGetQueueOptionsCreatesQueue(t *testing.T) {
	const prefix = "CB_CUSTOMTEST_PQ_QUEUE_"

	t.Setenv(prefix+"IMMEDIATE", "true")
	t.Setenv(prefix+"SORT_CRITERIA", "timestamp")

	opts, err := GetQueueOptions(prefix, pq.Options{})
	require.NoError(t, err)

	queue := pq.NewPriorityQueueWithOptions[int](opts)
	require.False(t, queue.Delay())

	for i, ts := range []float64{30, 10, 20} {
		item := pq.NewItemWithDefault[int]()
		*item.Payload() = i

		item.SetTimestamp(ts)
		queue.AddItem(item)
	}

	require.Equal(t, 1, *queue.RemoveFirstItem().Payload())
	require.Equal(t, 0, *queue.RemoveLastItem().Payload())
}
