package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAllKeepsOrder(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{1, 2, 3}},
		{name: "more workers than jobs", numWorkers: 8, jobs: []int{5, 4, 3, 2, 1}},
		{name: "no jobs", numWorkers: 4, jobs: []int{}},
		{name: "invalid worker count", numWorkers: 0, jobs: []int{7}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := RunAll(tt.numWorkers, tt.jobs, func(job int) int {
				return job * job
			})
			want := make([]int, len(tt.jobs))
			for i, j := range tt.jobs {
				want[i] = j * j
			}
			assert.Equal(t, want, got)
		})
	}
}
