package engine

// Point is one labelled bar of an ordered series.
type Point struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// run is a maximal stretch [start, end) of equal values.
type run struct {
	start, end int
}

func runs(points []Point) []run {
	var out []run
	for i := 0; i < len(points); {
		j := i + 1
		for j < len(points) && points[j].Value == points[i].Value {
			j++
		}
		out = append(out, run{i, j})
		i = j
	}
	return out
}

// HasRun reports whether points contain at least minLen consecutive
// entries equal to target.
func HasRun(points []Point, target, minLen int) bool {
	for _, r := range runs(points) {
		if points[r.start].Value == target && r.end-r.start >= minLen {
			return true
		}
	}
	return false
}

// CompressRuns replaces every run of target of length >= minLen with three
// entries: the first key, filler, the last key, all carrying target.
// Everything else is copied in order. Keys and values are returned as
// parallel slices ready for a chart axis.
func CompressRuns(points []Point, target, minLen int, filler string) (keys []string, values []int) {
	keys = make([]string, 0, len(points))
	values = make([]int, 0, len(points))
	for _, r := range runs(points) {
		first := points[r.start]
		if first.Value == target && r.end-r.start >= minLen {
			last := points[r.end-1]
			keys = append(keys, first.Key, filler, last.Key)
			values = append(values, target, target, target)
			continue
		}
		for _, p := range points[r.start:r.end] {
			keys = append(keys, p.Key)
			values = append(values, p.Value)
		}
	}
	return keys, values
}
