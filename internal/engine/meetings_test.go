package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ymd = []string{"y", "m", "d"}

func TestCountDistinctRejectsBadColumns(t *testing.T) {
	f := NewFrame()
	for _, cols := range [][]string{{}, {"y", "m", "d"}, {"nonexistent"}} {
		_, err := CountDistinct(f, cols...)
		assert.ErrorIs(t, err, ErrInvalidColumns, "columns %v", cols)
	}

	f = newIntFrame(t, ymd, []int64{2001, 1, 1})
	_, err := CountDistinct(f, "y", "month")
	assert.ErrorIs(t, err, ErrInvalidColumns)
}

func TestCountDistinct(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want int
	}{
		{"single row", [][]int64{{2001, 1, 1}}, 1},
		{"duplicate year", [][]int64{{2001, 1, 1}, {2001, 1, 1}, {2002, 1, 1}}, 2},
		{"duplicate month", [][]int64{{2001, 1, 1}, {2001, 2, 1}, {2001, 1, 1}}, 2},
		{"duplicate day", [][]int64{{2001, 1, 1}, {2001, 1, 1}, {2001, 1, 2}}, 2},
		{"distinct years", [][]int64{{2001, 1, 1}, {2002, 1, 1}, {2003, 1, 1}}, 3},
		{"distinct months", [][]int64{{2001, 1, 1}, {2001, 2, 1}, {2001, 3, 1}}, 3},
		{"distinct days", [][]int64{{2001, 1, 1}, {2001, 1, 2}, {2001, 1, 3}}, 3},
		{"all columns differ", [][]int64{{2001, 2, 7}, {2002, 2, 8}, {2003, 2, 9}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountDistinct(newIntFrame(t, ymd, tt.rows...), ymd...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountDistinctIsOrderIndependent(t *testing.T) {
	a := newIntFrame(t, ymd, []int64{2001, 1, 1}, []int64{2002, 1, 1}, []int64{2001, 1, 1})
	b := newIntFrame(t, ymd, []int64{2001, 1, 1}, []int64{2001, 1, 1}, []int64{2002, 1, 1})
	na, err := CountDistinct(a, ymd...)
	require.NoError(t, err)
	nb, err := CountDistinct(b, ymd...)
	require.NoError(t, err)
	assert.Equal(t, na, nb)
}

func TestCountDistinctComparesByType(t *testing.T) {
	f := NewFrame("v")
	require.NoError(t, f.AppendRow(int64(1)))
	require.NoError(t, f.AppendRow("1"))
	require.NoError(t, f.AppendRow(int64(1)))

	n, err := CountDistinct(f, "v")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountDistinctSubset(t *testing.T) {
	f := newIntFrame(t, ymd, []int64{2001, 1, 1}, []int64{2001, 2, 1}, []int64{2002, 3, 1})
	n, err := CountDistinct(f, "y")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
