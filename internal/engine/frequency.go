package engine

import "sort"

// Freq is a value and the number of times it occurred.
type Freq struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counter counts strings and remembers the order they were first seen in.
type Counter struct {
	order []string
	count map[string]int
}

// Count builds a Counter from values.
func Count(values []string) *Counter {
	c := &Counter{count: make(map[string]int)}
	for _, v := range values {
		c.Add(v, 1)
	}
	return c
}

func (c *Counter) Add(value string, n int) {
	if _, ok := c.count[value]; !ok {
		c.order = append(c.order, value)
	}
	c.count[value] += n
}

// Len returns the number of distinct values.
func (c *Counter) Len() int { return len(c.order) }

func (c *Counter) Get(value string) int { return c.count[value] }

// Total is the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.count {
		total += n
	}
	return total
}

// MostCommon lists values by descending count. Ties keep first-seen order.
func (c *Counter) MostCommon() []Freq {
	out := make([]Freq, len(c.order))
	for i, v := range c.order {
		out[i] = Freq{Value: v, Count: c.count[v]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Leaders returns every value tied at the highest count.
func (c *Counter) Leaders() []Freq {
	all := c.MostCommon()
	if len(all) == 0 {
		return nil
	}
	n := 1
	for n < len(all) && all[n].Count == all[0].Count {
		n++
	}
	return all[:n]
}

// Share returns count as a percentage of the total.
func (c *Counter) Share(count int) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
