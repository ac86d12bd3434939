// Package report turns dashboard statistics into the Russian Markdown
// sentences shown above the charts.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bookclub/internal/engine"
	"bookclub/internal/models"
)

const AllYears = "все годы"

var printer = message.NewPrinter(language.Russian)

// Int formats n with Russian digit grouping: 1 234 567.
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// Float formats f with a decimal comma: 0,27.
func Float(f float64, decimals int) string {
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", f)
}

// YearLabel names a year selection the way the year selector shows it.
func YearLabel(year int) string {
	if year == 0 {
		return AllYears
	}
	return strconv.Itoa(year) + " год"
}

// YearOptions lists the selector entries, "все годы" first.
func YearOptions(years []int) []string {
	out := []string{YearLabel(0)}
	for _, y := range years {
		out = append(out, YearLabel(y))
	}
	return out
}

// Summary returns the general statistics as Markdown sentences.
func Summary(data *models.DashboardData) []string {
	st := data.Stats
	lines := []string{
		fmt.Sprintf("Количество проведённых встреч: **%s**.", Int(st.Meetings)),
		fmt.Sprintf("Прочитано: **%s** %s **%s** %s в **%s** %s.",
			Int(st.Books), st.BooksLabel,
			Int(st.Authors), st.AuthorsLabel,
			Int(st.Genres), st.GenresLabel),
		fmt.Sprintf("Примерное количество прочитанных страниц: **%s**. "+
			"Если сложить столько страниц в одну стопку, "+
			"то её высота составит, примерно, **%s м.** "+
			"(Из расчёта, что толщина одной страницы составляет %s мм.)",
			Int(st.Pages), Float(st.StackHeightM, 2), Float(engine.PaperThicknessM*1000, 3)),
		fmt.Sprintf("Примерное количество прочитанных предложений: **%s**. "+
			"(Из расчёта %d слов на предложение)",
			Int(st.Sentences), engine.AvgWordsPerSentence),
		fmt.Sprintf("Примерное количество прочитанных слов: **%s**. "+
			"(Из расчёта %d слов на страницу)",
			Int(st.Words), engine.AvgWordsPerPage),
	}

	if line := books("Самая толстая прочитанная книга", "Самые толстые прочитанные книги", st.Thickest); line != "" {
		lines = append(lines, line)
	}
	if line := books("Самая тонкая прочитанная книга", "Самые тонкие прочитанные книги", st.Thinnest); line != "" {
		lines = append(lines, line)
	}
	if line := leaders("Самый популярный жанр", "Самые популярные жанры", st.TopGenres); line != "" {
		lines = append(lines, line)
	}
	if line := leaders("Самый популярный автор", "Самые популярные авторы", st.TopAuthors); line != "" {
		lines = append(lines, line)
	}
	if line := leaders("Самая популярная страна", "Самые популярные страны", st.TopCountries); line != "" {
		lines = append(lines, line)
	}
	return lines
}

func books(one, many string, refs []models.BookRef) string {
	if len(refs) == 0 {
		return ""
	}
	parts := make([]string, len(refs))
	for i, b := range refs {
		parts[i] = fmt.Sprintf("**%s *%s*** (%d стр.)", b.Author, b.Title, b.Pages)
	}
	return heading(one, many, len(refs)) + strings.Join(parts, ", ") + "."
}

func leaders(one, many string, items []models.TopItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("**%s** (%d кн.)", it.Name, it.Value)
	}
	return heading(one, many, len(items)) + strings.Join(parts, ", ") + "."
}

func heading(one, many string, n int) string {
	if n > 1 {
		return many + ": "
	}
	return one + ": "
}

// Shares renders the Markdown list shown next to a pie chart. unit is "кн."
// for books or "ав." for authors.
func Shares(items []models.ShareItem, unit string) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "- %s: %d %s (%s%%)\n", it.Name, it.Count, unit, Float(it.Percent, 1))
	}
	return b.String()
}

// HTML converts Markdown lines to an HTML fragment, one paragraph per line.
func HTML(lines ...string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(strings.Join(lines, "\n\n")), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
