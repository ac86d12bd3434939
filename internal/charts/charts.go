// Package charts draws the dashboard charts with go-echarts.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"bookclub/internal/models"
	"bookclub/internal/report"
)

const (
	width  = "900px"
	height = "500px"
)

func title(text string, year int) charts.GlobalOpts {
	return charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s (за %s)", text, report.YearLabel(year))})
}

func size(h string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: "Книжный клуб «Читаем вместе»",
		Width:     width,
		Height:    h,
	})
}

func barData(values []int) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func bar(text string, year int, labels []string, values []int, valueAxis string) *charts.Bar {
	b := charts.NewBar()
	b.SetGlobalOptions(
		size(height),
		title(text, year),
		charts.WithYAxisOpts(opts.YAxis{Name: valueAxis}),
	)
	b.SetXAxis(labels).AddSeries(valueAxis, barData(values))
	return b
}

func pie(text string, year int, items []models.ShareItem) *charts.Pie {
	p := charts.NewPie()
	p.SetGlobalOptions(size(height), title(text, year))
	data := make([]opts.PieData, len(items))
	for i, it := range items {
		data[i] = opts.PieData{Name: it.Name, Value: it.Count}
	}
	p.AddSeries(text, data)
	return p
}

// Authors is a horizontal bar per author, most read on top.
func Authors(data *models.DashboardData) *charts.Bar {
	n := len(data.Charts.Authors)
	labels := make([]string, n)
	values := make([]int, n)
	// echarts draws the category axis bottom-up
	for i, a := range data.Charts.Authors {
		labels[n-1-i] = a.Name
		values[n-1-i] = a.Value
	}
	b := charts.NewBar()
	b.SetGlobalOptions(
		size(fmt.Sprintf("%dpx", max(400, 25*n))),
		title("Количество прочитанных книг каждого автора", data.Year),
		charts.WithYAxisOpts(opts.YAxis{Name: "Количество книг"}),
	)
	b.SetXAxis(labels).AddSeries("Количество книг", barData(values))
	b.XYReversal()
	return b
}

// Decades shows books by the decade they were written in.
func Decades(data *models.DashboardData) *charts.Bar {
	s := data.Charts.BooksByDecade
	return bar("Распределение книг по годам написания/издания", data.Year, s.Labels, s.Values, "Количество книг")
}

// Months shows pages read per month.
func Months(data *models.DashboardData) *charts.Bar {
	labels := make([]string, len(data.Charts.PagesByMonth))
	values := make([]int, len(data.Charts.PagesByMonth))
	for i, m := range data.Charts.PagesByMonth {
		labels[i], values[i] = m.Month, m.Pages
	}
	return bar("Количество страниц, читаемых в месяц", data.Year, labels, values, "Количество страниц")
}

// Histogram shows how thick the books are.
func Histogram(data *models.DashboardData) *charts.Bar {
	h := data.Charts.PagesHistogram
	labels := make([]string, len(h.Counts))
	for i := range h.Counts {
		labels[i] = fmt.Sprintf("%.0f-%.0f", h.Edges[i], h.Edges[i+1])
	}
	b := bar("Распределение (гистограмма) количества страниц в книгах", data.Year, labels, h.Counts, "Количество книг")
	b.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Name: "Количество страниц"}))
	return b
}

// Genders draws the gender split as a bar and as a pie.
func Genders(data *models.DashboardData) (*charts.Bar, *charts.Pie) {
	items := data.Charts.AuthorsByGender
	labels := make([]string, len(items))
	values := make([]int, len(items))
	for i, it := range items {
		labels[i], values[i] = it.Name, it.Count
	}
	return bar("Количество авторов по полу", data.Year, labels, values, "Количество авторов"),
		pie("Количество авторов по полу", data.Year, items)
}

// Page puts every chart on one page, in the order the dashboard shows them.
func Page(data *models.DashboardData) *components.Page {
	genderBar, genderPie := Genders(data)
	page := components.NewPage()
	page.AddCharts(
		Authors(data),
		pie("Количество книг по странам", data.Year, data.Charts.BooksByCountry),
		pie("Количество авторов по странам", data.Year, data.Charts.AuthorsByCountry),
		genderBar,
		genderPie,
		Decades(data),
		pie("Количество книг по жанрам", data.Year, data.Charts.Genres),
		Months(data),
		Histogram(data),
	)
	return page
}

// Render writes the chart page as a standalone HTML document.
func Render(w io.Writer, data *models.DashboardData) error {
	if err := Page(data).Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}
