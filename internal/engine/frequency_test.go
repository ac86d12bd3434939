package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostCommonKeepsFirstSeenOrderOnTies(t *testing.T) {
	c := Count([]string{"b", "a", "c", "a", "b", "d"})
	assert.Equal(t, []Freq{
		{"b", 2}, {"a", 2}, {"c", 1}, {"d", 1},
	}, c.MostCommon())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 6, c.Total())
}

func TestLeaders(t *testing.T) {
	assert.Equal(t, []Freq{{"x", 3}}, Count([]string{"y", "x", "x", "x"}).Leaders())
	assert.Equal(t, []Freq{{"y", 1}, {"x", 1}}, Count([]string{"y", "x"}).Leaders())
	assert.Nil(t, Count(nil).Leaders())
}

func TestShare(t *testing.T) {
	c := Count([]string{"a", "a", "a", "b"})
	assert.InDelta(t, 75.0, c.Share(c.Get("a")), 1e-9)
	assert.InDelta(t, 0.0, Count(nil).Share(1), 1e-9)
}
