package engine

import (
	"errors"
	"fmt"
	"sort"
)

// Column names of the book club workbook.
const (
	ColMeetingYear  = "meeting_year"
	ColMeetingMonth = "meeting_month"
	ColMeetingDay   = "meeting_day"
	ColTitle        = "title"
	ColAuthor       = "author"
	ColGenres       = "genres"
	ColCountry      = "author_country"
	ColGender       = "author_gender"
	ColPages        = "num_pages"
	ColYearWritten  = "year_written_or_published"
)

// MeetingColumns identify one meeting.
var MeetingColumns = []string{ColMeetingYear, ColMeetingMonth, ColMeetingDay}

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrRowLength     = errors.New("row length does not match columns")
)

// Value is a single cell: int64, float64 or string.
type Value any

// Frame holds the dataset column by column, like a tiny data frame.
// A loaded Frame is never mutated; Filter and Select return new frames.
type Frame struct {
	names []string
	index map[string]int
	cols  [][]Value
}

// NewFrame creates an empty frame with the given column names.
func NewFrame(columns ...string) *Frame {
	f := &Frame{
		names: append([]string(nil), columns...),
		index: make(map[string]int, len(columns)),
		cols:  make([][]Value, len(columns)),
	}
	for i, name := range columns {
		f.index[name] = i
	}
	return f
}

// AppendRow adds one row. Values are given in column order.
func (f *Frame) AppendRow(values ...Value) error {
	if len(values) != len(f.names) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowLength, len(values), len(f.names))
	}
	for i, v := range values {
		f.cols[i] = append(f.cols[i], v)
	}
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0])
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the cells of a column in row order.
func (f *Frame) Column(name string) ([]Value, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return f.cols[i], nil
}

// Cell returns a single value.
func (f *Frame) Cell(row int, name string) (Value, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(col) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", row, len(col))
	}
	return col[row], nil
}

// Int returns the cell as an integer. Strings are not converted.
func (f *Frame) Int(row int, name string) (int64, error) {
	v, err := f.Cell(row, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("column %q row %d: %v is not a number", name, row, v)
}

// String returns the cell as text.
func (f *Frame) String(row int, name string) (string, error) {
	v, err := f.Cell(row, name)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// Select projects the frame onto a subset of columns.
func (f *Frame) Select(columns ...string) (*Frame, error) {
	out := NewFrame(columns...)
	for i, name := range columns {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		out.cols[i] = col
	}
	return out, nil
}

// Filter returns the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	out := NewFrame(f.names...)
	for r := 0; r < f.Len(); r++ {
		if !keep(r) {
			continue
		}
		for c := range f.cols {
			out.cols[c] = append(out.cols[c], f.cols[c][r])
		}
	}
	return out
}

// FilterYear keeps the meetings held in year. Zero means all years.
func FilterYear(f *Frame, year int) (*Frame, error) {
	if year == 0 {
		return f, nil
	}
	if !f.HasColumn(ColMeetingYear) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, ColMeetingYear)
	}
	return f.Filter(func(row int) bool {
		y, err := f.Int(row, ColMeetingYear)
		return err == nil && y == int64(year)
	}), nil
}

// Years returns the distinct meeting years in ascending order.
func Years(f *Frame) ([]int, error) {
	col, err := f.Column(ColMeetingYear)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	var years []int
	for r := range col {
		y, err := f.Int(r, ColMeetingYear)
		if err != nil {
			return nil, err
		}
		if !seen[int(y)] {
			seen[int(y)] = true
			years = append(years, int(y))
		}
	}
	sort.Ints(years)
	return years, nil
}
