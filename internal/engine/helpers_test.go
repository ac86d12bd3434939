package engine

import "testing"

// book is a test row in workbook column order.
type book struct {
	year, month, day   int64
	title              string
	author, genres     string
	country, gender    string
	pages, yearWritten int64
}

func newBookFrame(t *testing.T, books ...book) *Frame {
	t.Helper()
	f := NewFrame(RequiredColumns...)
	for _, b := range books {
		err := f.AppendRow(
			b.year, b.month, b.day,
			b.title, b.author, b.genres, b.country, b.gender,
			b.pages, b.yearWritten,
		)
		if err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}
	return f
}

func newIntFrame(t *testing.T, columns []string, rows ...[]int64) *Frame {
	t.Helper()
	f := NewFrame(columns...)
	for _, row := range rows {
		values := make([]Value, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.AppendRow(values...); err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}
	return f
}
