package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ListSeparator separates items inside a list cell.
const ListSeparator = ", "

var ErrMalformedList = errors.New("malformed list cell")

// ParseList parses a list cell like "[a, b, c]" into ["a", "b", "c"].
//
// The brackets are required. "[]" yields a single empty item; callers that
// count values drop it (see NonEmpty).
func ParseList(cell string) ([]string, error) {
	if len(cell) < 2 || cell[0] != '[' || cell[len(cell)-1] != ']' {
		return nil, fmt.Errorf("%w: %q", ErrMalformedList, cell)
	}
	items := strings.Split(cell[1:len(cell)-1], ListSeparator)
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items, nil
}

// FormatList is the inverse of ParseList for items without ", " inside.
func FormatList(items []string) string {
	return "[" + strings.Join(items, ListSeparator) + "]"
}

// parseListOrScalar accepts a plain value as a one item list. Some
// workbooks store author_gender without brackets.
func parseListOrScalar(cell string) []string {
	if items, err := ParseList(cell); err == nil {
		return items
	}
	return []string{strings.TrimSpace(cell)}
}

// ColumnValues parses every cell of a list column and flattens the result.
// Order is row order, then item order within the cell. Duplicates are kept.
func ColumnValues(f *Frame, column string) ([]string, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	var out []string
	for row, v := range col {
		cell, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d holds %T", ErrMalformedList, column, row, v)
		}
		items, err := ParseList(cell)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", column, row, err)
		}
		out = append(out, items...)
	}
	return out, nil
}

// looseColumnValues is ColumnValues with parseListOrScalar semantics.
func looseColumnValues(f *Frame, column string) ([]string, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, v := range col {
		out = append(out, parseListOrScalar(fmt.Sprint(v))...)
	}
	return out, nil
}

// NonEmpty drops empty items, which come from "[]" cells.
func NonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
