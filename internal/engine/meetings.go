package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColumns is returned when a column subset is empty or names a
// column the frame does not have.
var ErrInvalidColumns = errors.New("invalid column subset")

// CountDistinct counts distinct rows of the projection of f onto columns.
// It is used to count meetings from the year/month/day columns.
func CountDistinct(f *Frame, columns ...string) (int, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("%w: no columns given", ErrInvalidColumns)
	}
	cols := make([][]Value, len(columns))
	for i, name := range columns {
		col, err := f.Column(name)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidColumns, err)
		}
		cols[i] = col
	}

	seen := make(map[string]struct{})
	var key strings.Builder
	for r := 0; r < f.Len(); r++ {
		key.Reset()
		for _, col := range cols {
			writeKey(&key, col[r])
		}
		seen[key.String()] = struct{}{}
	}
	return len(seen), nil
}

// writeKey appends a type-tagged encoding of v, so int 1 and string "1"
// never collide.
func writeKey(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case int64:
		b.WriteByte('i')
		b.WriteString(strconv.FormatInt(x, 10))
	case float64:
		b.WriteByte('f')
		b.WriteString(strconv.FormatUint(math.Float64bits(x), 16))
	case string:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(x)))
		b.WriteByte(':')
		b.WriteString(x)
	case nil:
		b.WriteByte('n')
	default:
		b.WriteByte('?')
		b.WriteString(fmt.Sprintf("%T:%v", x, x))
	}
	b.WriteByte('|')
}
