package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"bookclub/internal/models"
	"bookclub/internal/plural"
)

const (
	AvgWordsPerPage     = 300
	AvgWordsPerSentence = 15
	PaperThicknessM     = 0.000103

	DefaultDecadeRunMin  = 3
	DefaultDecadeFiller  = "..."
	DefaultHistogramBins = 20
)

// Options tune the chart series. Zero values mean defaults.
type Options struct {
	DecadeRunMin  int
	DecadeFiller  string
	HistogramBins int
}

func (o Options) withDefaults() Options {
	if o.DecadeRunMin <= 0 {
		o.DecadeRunMin = DefaultDecadeRunMin
	}
	if o.DecadeFiller == "" {
		o.DecadeFiller = DefaultDecadeFiller
	}
	if o.HistogramBins <= 0 {
		o.HistogramBins = DefaultHistogramBins
	}
	return o
}

// Aggregate computes the dashboard for the meetings held in year (0 = all).
func Aggregate(all *Frame, year int, opts Options) (*models.DashboardData, error) {
	opts = opts.withDefaults()

	f, err := FilterYear(all, year)
	if err != nil {
		return nil, err
	}

	books, err := bookRows(f)
	if err != nil {
		return nil, err
	}
	data := &models.DashboardData{Year: year, Books: books}

	authors, err := ColumnValues(f, ColAuthor)
	if err != nil {
		return nil, err
	}
	genres, err := ColumnValues(f, ColGenres)
	if err != nil {
		return nil, err
	}
	countries, err := ColumnValues(f, ColCountry)
	if err != nil {
		return nil, err
	}
	genders, err := looseColumnValues(f, ColGender)
	if err != nil {
		return nil, err
	}

	authorCounts := Count(NonEmpty(authors))
	genreCounts := Count(NonEmpty(genres))
	countryCounts := Count(NonEmpty(countries))

	// Stats
	st := &data.Stats
	if st.Meetings, err = CountDistinct(f, MeetingColumns...); err != nil {
		return nil, err
	}
	st.Books = f.Len()
	st.BooksLabel = plural.Books(st.Books)
	st.Authors = authorCounts.Len()
	st.AuthorsLabel = plural.Authors(st.Authors)
	st.Genres = genreCounts.Len()
	st.GenresLabel = plural.Genres(st.Genres)

	for _, b := range books {
		st.Pages += b.Pages
	}
	st.StackHeightM = float64(st.Pages) * PaperThicknessM
	st.Words = st.Pages * AvgWordsPerPage
	st.Sentences = st.Words / AvgWordsPerSentence
	st.Thickest, st.Thinnest = extremes(books)

	st.TopGenres = topItems(genreCounts.Leaders())
	st.TopAuthors = topItems(authorCounts.Leaders())
	st.TopCountries = topItems(countryCounts.Leaders())

	// Charts
	ch := &data.Charts
	ch.Authors = topItems(authorCounts.MostCommon())
	ch.Genres = shares(genreCounts)

	if ch.BooksByCountry, err = booksByCountry(f); err != nil {
		return nil, err
	}
	ch.AuthorsByCountry = shares(Count(NonEmpty(zipLast(authors, countries))))
	ch.AuthorsByGender = shares(Count(NonEmpty(zipLast(authors, genders))))
	ch.BooksByDecade = booksByDecade(books, opts)
	ch.PagesByMonth = pagesByMonth(books)
	ch.PagesHistogram = histogram(books, opts.HistogramBins)

	return data, nil
}

func bookRows(f *Frame) ([]models.BookRow, error) {
	rows := make([]models.BookRow, f.Len())
	for r := range rows {
		b := &rows[r]
		b.Index = r + 1
		ints := []struct {
			col string
			dst *int
		}{
			{ColMeetingYear, &b.MeetingYear},
			{ColMeetingMonth, &b.MeetingMonth},
			{ColMeetingDay, &b.MeetingDay},
			{ColPages, &b.Pages},
			{ColYearWritten, &b.YearWritten},
		}
		for _, c := range ints {
			n, err := f.Int(r, c.col)
			if err != nil {
				return nil, err
			}
			*c.dst = int(n)
		}
		strs := []struct {
			col string
			dst *string
		}{
			{ColTitle, &b.Title},
			{ColAuthor, &b.Author},
			{ColGenres, &b.Genres},
			{ColCountry, &b.Country},
			{ColGender, &b.Gender},
		}
		for _, c := range strs {
			s, err := f.String(r, c.col)
			if err != nil {
				return nil, err
			}
			*c.dst = s
		}
	}
	return rows, nil
}

// stripBrackets shows a list cell as plain text: "[a, b]" -> "a, b".
func stripBrackets(cell string) string {
	return strings.TrimSuffix(strings.TrimPrefix(cell, "["), "]")
}

func extremes(books []models.BookRow) (thickest, thinnest []models.BookRef) {
	if len(books) == 0 {
		return nil, nil
	}
	maxPages, minPages := books[0].Pages, books[0].Pages
	for _, b := range books[1:] {
		maxPages = max(maxPages, b.Pages)
		minPages = min(minPages, b.Pages)
	}
	for _, b := range books {
		ref := models.BookRef{Author: stripBrackets(b.Author), Title: b.Title, Pages: b.Pages}
		if b.Pages == maxPages {
			thickest = append(thickest, ref)
		}
		if b.Pages == minPages {
			thinnest = append(thinnest, ref)
		}
	}
	return thickest, thinnest
}

func topItems(freqs []Freq) []models.TopItem {
	out := make([]models.TopItem, len(freqs))
	for i, fr := range freqs {
		out[i] = models.TopItem{Name: fr.Value, Value: fr.Count}
	}
	return out
}

func shares(c *Counter) []models.ShareItem {
	freqs := c.MostCommon()
	out := make([]models.ShareItem, len(freqs))
	for i, fr := range freqs {
		out[i] = models.ShareItem{Name: fr.Value, Count: fr.Count, Percent: c.Share(fr.Count)}
	}
	return out
}

// zipLast pairs keys with values positionally (stopping at the shorter
// slice) and returns the values of the resulting mapping: one per distinct
// key, in first-seen key order, the last value for a key winning.
func zipLast(keys, values []string) []string {
	n := min(len(keys), len(values))
	var order []string
	last := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if _, ok := last[keys[i]]; !ok {
			order = append(order, keys[i])
		}
		last[keys[i]] = values[i]
	}
	out := make([]string, len(order))
	for i, k := range order {
		out[i] = last[k]
	}
	return out
}

// booksByCountry counts each title once.
func booksByCountry(f *Frame) ([]models.ShareItem, error) {
	seen := make(map[string]bool)
	unique := f.Filter(func(row int) bool {
		title, err := f.String(row, ColTitle)
		if err != nil || seen[title] {
			return false
		}
		seen[title] = true
		return true
	})
	countries, err := ColumnValues(unique, ColCountry)
	if err != nil {
		return nil, err
	}
	return shares(Count(NonEmpty(countries))), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// decadeStart returns the first year of the decade holding y: 1981 for
// 1981..1990.
func decadeStart(y int) int {
	return floorDiv(y-1, 10)*10 + 1
}

// booksByDecade buckets books by the decade they were written in, lists
// every decade between the oldest and newest book and compresses long
// stretches of empty decades.
func booksByDecade(books []models.BookRow, opts Options) models.Series {
	if len(books) == 0 {
		return models.Series{Labels: []string{}, Values: []int{}}
	}
	counts := make(map[int]int)
	first, last := decadeStart(books[0].YearWritten), decadeStart(books[0].YearWritten)
	for _, b := range books {
		d := decadeStart(b.YearWritten)
		counts[d]++
		first = min(first, d)
		last = max(last, d)
	}

	var points []Point
	for d := first; d <= last; d += 10 {
		points = append(points, Point{Key: fmt.Sprintf("%d-%d", d, d+9), Value: counts[d]})
	}

	if !HasRun(points, 0, opts.DecadeRunMin) {
		s := models.Series{Labels: make([]string, len(points)), Values: make([]int, len(points))}
		for i, p := range points {
			s.Labels[i], s.Values[i] = p.Key, p.Value
		}
		return s
	}
	labels, values := CompressRuns(points, 0, opts.DecadeRunMin, opts.DecadeFiller)
	return models.Series{Labels: labels, Values: values}
}

// pagesByMonth attributes each book to the month it was read in. A meeting
// in the first half of a month discusses the book read the month before.
func pagesByMonth(books []models.BookRow) []models.MonthlyItem {
	var out []models.MonthlyItem
	index := make(map[string]int)
	for _, b := range books {
		year, month := b.MeetingYear, b.MeetingMonth
		if b.MeetingDay < 15 {
			month--
			if month == 0 {
				month = 12
				year--
			}
		}
		label := strconv.Itoa(month) + "-" + strconv.Itoa(year)
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, models.MonthlyItem{Month: label})
		}
		out[i].Pages += b.Pages
	}
	return out
}

// histogram splits [min, max] of the page counts into equal bins. The last
// bin includes its right edge.
func histogram(books []models.BookRow, bins int) models.Histogram {
	h := models.Histogram{Values: make([]int, len(books))}
	if len(books) == 0 {
		return h
	}
	for i, b := range books {
		h.Values[i] = b.Pages
	}
	sorted := append([]int(nil), h.Values...)
	sort.Ints(sorted)
	lo, hi := float64(sorted[0]), float64(sorted[len(sorted)-1])
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(bins)
	h.Edges = make([]float64, bins+1)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi
	h.Counts = make([]int, bins)
	for _, v := range h.Values {
		i := int(math.Floor((float64(v) - lo) / width))
		if i >= bins {
			i = bins - 1
		}
		h.Counts[i]++
	}
	return h
}
