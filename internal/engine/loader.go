package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet the club keeps its book list on.
const DefaultSheet = "Sheet1"

var (
	ErrMissingColumn = errors.New("missing column")
	ErrBadCell       = errors.New("bad cell")
)

// RequiredColumns must be present in every workbook.
var RequiredColumns = []string{
	ColMeetingYear, ColMeetingMonth, ColMeetingDay,
	ColTitle, ColAuthor, ColGenres, ColCountry, ColGender,
	ColPages, ColYearWritten,
}

var intColumns = map[string]bool{
	ColMeetingYear:  true,
	ColMeetingMonth: true,
	ColMeetingDay:   true,
	ColPages:        true,
	ColYearWritten:  true,
}

// parseInt accepts "1984" as well as "1984.0", which is how spreadsheets
// often store whole numbers.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not a whole number", s)
	}
	return int64(f), nil
}

// LoadWorkbook reads the book list from an .xlsx file.
func LoadWorkbook(path, sheet string) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return loadSheet(f, sheet)
}

// ReadWorkbook is LoadWorkbook for an already opened stream.
func ReadWorkbook(r io.Reader, sheet string) (*Frame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()
	return loadSheet(f, sheet)
}

func loadSheet(f *excelize.File, sheet string) (*Frame, error) {
	start := time.Now()
	if sheet == "" {
		sheet = DefaultSheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	header := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(header))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if seen[h] {
			return nil, fmt.Errorf("duplicate column %q in sheet %q", h, sheet)
		}
		seen[h] = true
		header[i] = h
	}
	for _, name := range RequiredColumns {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	frame := NewFrame(header...)
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		values := make([]Value, len(header))
		for c, name := range header {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if !intColumns[name] {
				values[c] = cell
				continue
			}
			n, err := parseInt(cell)
			if err != nil {
				// +2: one for the header, one for 1-based rows
				return nil, fmt.Errorf("%w: row %d column %q: %v", ErrBadCell, r+2, name, err)
			}
			values[c] = n
		}
		if err := frame.AppendRow(values...); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("sheet", sheet).
		Int("rows", frame.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("workbook loaded")
	return frame, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
