package report

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub/internal/models"
)

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestInt(t *testing.T) {
	assert.Equal(t, "42", Int(42))
	got := Int(1234567)
	assert.Equal(t, "1234567", stripSpaces(got))
	assert.NotContains(t, got, ",")
	assert.Greater(t, len([]rune(got)), len("1234567"), "expected digit grouping in %q", got)
}

func TestFloat(t *testing.T) {
	assert.Equal(t, "0,27", Float(0.2678, 2))
	assert.Equal(t, "40,0", Float(40, 1))
}

func TestYearLabel(t *testing.T) {
	assert.Equal(t, "все годы", YearLabel(0))
	assert.Equal(t, "2023 год", YearLabel(2023))
	assert.Equal(t, []string{"все годы", "2022 год", "2023 год"}, YearOptions([]int{2022, 2023}))
}

func sampleData() *models.DashboardData {
	return &models.DashboardData{
		Stats: models.Stats{
			Meetings: 3, Books: 4, BooksLabel: "книги",
			Authors: 4, AuthorsLabel: "авторов",
			Genres: 4, GenresLabel: "жанрах",
			Pages: 2600, StackHeightM: 0.2678, Words: 780000, Sentences: 52000,
			Thickest: []models.BookRef{{Author: "Лев Толстой", Title: "Война и мир", Pages: 1300}},
			Thinnest: []models.BookRef{
				{Author: "Николай Гоголь", Title: "Нос", Pages: 40},
				{Author: "Антон Чехов", Title: "Тоска", Pages: 40},
			},
			TopGenres:    []models.TopItem{{Name: "роман", Value: 2}},
			TopAuthors:   []models.TopItem{{Name: "Лев Толстой", Value: 2}},
			TopCountries: []models.TopItem{{Name: "Россия", Value: 2}, {Name: "Франция", Value: 2}},
		},
	}
}

func TestSummary(t *testing.T) {
	lines := Summary(sampleData())
	require.Len(t, lines, 10)

	assert.Equal(t, "Количество проведённых встреч: **3**.", lines[0])
	assert.Equal(t, "Прочитано: **4** книги **4** авторов в **4** жанрах.", lines[1])
	assert.Contains(t, lines[2], "**0,27 м.**")
	assert.Contains(t, lines[2], "0,103 мм.")
	assert.Contains(t, stripSpaces(lines[3]), "**52000**")
	assert.Contains(t, stripSpaces(lines[4]), "**780000**")
	assert.Equal(t, "Самая толстая прочитанная книга: **Лев Толстой *Война и мир*** (1300 стр.).", lines[5])
	assert.Equal(t, "Самые тонкие прочитанные книги: **Николай Гоголь *Нос*** (40 стр.), **Антон Чехов *Тоска*** (40 стр.).", lines[6])
	assert.Equal(t, "Самый популярный жанр: **роман** (2 кн.).", lines[7])
	assert.Equal(t, "Самый популярный автор: **Лев Толстой** (2 кн.).", lines[8])
	assert.Equal(t, "Самые популярные страны: **Россия** (2 кн.), **Франция** (2 кн.).", lines[9])
}

func TestSummaryEmpty(t *testing.T) {
	lines := Summary(&models.DashboardData{})
	assert.Len(t, lines, 5)
	assert.Equal(t, "Количество проведённых встреч: **0**.", lines[0])
}

func TestShares(t *testing.T) {
	got := Shares([]models.ShareItem{
		{Name: "Россия", Count: 2, Percent: 40},
		{Name: "Франция", Count: 3, Percent: 60},
	}, "кн.")
	assert.Equal(t, "- Россия: 2 кн. (40,0%)\n- Франция: 3 кн. (60,0%)\n", got)
}

func TestHTML(t *testing.T) {
	html, err := HTML("Прочитано: **4** книги.", "Второй абзац.")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>4</strong>")
	assert.Equal(t, 2, strings.Count(html, "<p>"))
}
