package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func points(values ...int) []Point {
	out := make([]Point, len(values))
	for i, v := range values {
		out[i] = Point{Key: strconv.Itoa(i + 1), Value: v}
	}
	return out
}

func TestCompressRuns(t *testing.T) {
	tests := []struct {
		name       string
		values     []int
		minLen     int
		wantKeys   []string
		wantValues []int
	}{
		{
			name:       "leading and trailing runs",
			values:     []int{0, 0, 0, 1, 0, 0, 0},
			minLen:     3,
			wantKeys:   []string{"1", "…", "3", "4", "5", "…", "7"},
			wantValues: []int{0, 0, 0, 1, 0, 0, 0},
		},
		{
			name:       "long interior run",
			values:     []int{2, 0, 0, 0, 0, 0, 1},
			minLen:     3,
			wantKeys:   []string{"1", "2", "…", "6", "7"},
			wantValues: []int{2, 0, 0, 0, 1},
		},
		{
			name:       "run one short of the minimum is kept",
			values:     []int{1, 0, 0, 1},
			minLen:     3,
			wantKeys:   []string{"1", "2", "3", "4"},
			wantValues: []int{1, 0, 0, 1},
		},
		{
			name:       "whole series is one run",
			values:     []int{0, 0, 0, 0},
			minLen:     3,
			wantKeys:   []string{"1", "…", "4"},
			wantValues: []int{0, 0, 0},
		},
		{
			name:       "other values are never compressed",
			values:     []int{1, 1, 1, 1},
			minLen:     3,
			wantKeys:   []string{"1", "2", "3", "4"},
			wantValues: []int{1, 1, 1, 1},
		},
		{
			name:       "empty",
			values:     nil,
			minLen:     3,
			wantKeys:   []string{},
			wantValues: []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, values := CompressRuns(points(tt.values...), 0, tt.minLen, "…")
			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantValues, values)
			assert.Len(t, values, len(keys))
		})
	}
}

func TestHasRun(t *testing.T) {
	p := points(0, 0, 0, 1, 0, 0, 0)
	assert.True(t, HasRun(p, 0, 3))
	assert.False(t, HasRun(p, 0, 4))
	assert.False(t, HasRun(p, 1, 2))
	assert.True(t, HasRun(p, 1, 1))
	assert.False(t, HasRun(nil, 0, 1))
}
