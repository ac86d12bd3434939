package api

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookclub/internal/engine"
	"bookclub/internal/report"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Книжный клуб «Читаем вместе», г. Алматы</title>
</head>
<body>
<h1>Книжный клуб «Читаем вместе», г. Алматы</h1>
<nav>Выберите год:
{{- range .Years }} <a href="/?year={{ .Value }}">{{ .Label }}</a>{{ end }}
</nav>
<h2>Общая статистика (за {{ .YearLabel }})</h2>
{{ .Summary }}
<h2>Что мы уже прочитали (за {{ .YearLabel }})</h2>
<table>
<tr><th>#</th><th>Встреча</th><th>Название</th><th>Автор</th><th>Жанры</th><th>Страна</th><th>Страниц</th><th>Год</th></tr>
{{- range .Books }}
<tr><td>{{ .Index }}</td><td>{{ .MeetingDay }}.{{ .MeetingMonth }}.{{ .MeetingYear }}</td><td>{{ .Title }}</td><td>{{ .Author }}</td><td>{{ .Genres }}</td><td>{{ .Country }}</td><td>{{ .Pages }}</td><td>{{ .YearWritten }}</td></tr>
{{- end }}
</table>
<iframe src="/charts?year={{ .Year }}" width="100%" height="6000" frameborder="0"></iframe>
</body>
</html>
`))

type yearLink struct {
	Value string
	Label string
}

// GetIndex renders the dashboard page: summary, book list and the charts.
func (h *Handler) GetIndex(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}
	frame, err := h.dataset()
	if err != nil {
		return err
	}
	years, err := engine.Years(frame)
	if err != nil {
		return dataError(err)
	}

	summary, err := report.HTML(report.Summary(data)...)
	if err != nil {
		return err
	}

	links := []yearLink{{Value: "all", Label: report.YearLabel(0)}}
	for _, y := range years {
		links = append(links, yearLink{Value: strconv.Itoa(y), Label: report.YearLabel(y)})
	}
	year := "all"
	if data.Year != 0 {
		year = strconv.Itoa(data.Year)
	}

	var buf bytes.Buffer
	err = indexTmpl.Execute(&buf, map[string]interface{}{
		"Years":     links,
		"Year":      year,
		"YearLabel": report.YearLabel(data.Year),
		"Summary":   template.HTML(summary),
		"Books":     data.Books,
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
