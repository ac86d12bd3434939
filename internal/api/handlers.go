package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"bookclub/internal/charts"
	"bookclub/internal/engine"
	"bookclub/internal/models"
	"bookclub/internal/report"
)

// Handler serves the dashboard for a dataset that is loaded in the
// background. Until SetData is called every data endpoint answers 503.
type Handler struct {
	mu      sync.RWMutex
	frame   *engine.Frame
	loadErr error

	opts    engine.Options
	metrics *Metrics
}

func NewHandler(frame *engine.Frame, opts engine.Options, metrics *Metrics) *Handler {
	return &Handler{frame: frame, opts: opts, metrics: metrics}
}

// SetData publishes a freshly loaded dataset.
func (h *Handler) SetData(frame *engine.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frame, h.loadErr = frame, nil
	if h.metrics != nil {
		h.metrics.BooksLoaded.Set(float64(frame.Len()))
	}
}

// SetError records that loading failed.
func (h *Handler) SetError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loadErr = err
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.GetIndex)
	e.GET("/charts", h.GetCharts)
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/years", h.GetYears)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/books", h.GetBooks)
	api.GET("/authors/top", h.GetTopAuthors)
	api.GET("/summary", h.GetSummary)
}

// --- HELPERS ---

type query struct {
	Year   string `query:"year"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
	Offset int    `query:"offset" validate:"min=0"`
}

func bindQuery(c echo.Context) (query, error) {
	var q query
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	if err := c.Validate(&q); err != nil {
		return q, err
	}
	return q, nil
}

// paginate clamps limit/offset to total. A zero limit means everything.
func paginate(total, limit, offset int) (start, end int) {
	if limit <= 0 {
		limit = total
	}
	if offset >= total {
		return total, total
	}
	return offset, min(offset+limit, total)
}

// parseYear accepts "", "all", "2023" and the selector label "2023 год".
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" || s == report.AllYears {
		return 0, nil
	}
	year, err := strconv.Atoi(strings.TrimSuffix(s, " год"))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func (h *Handler) dataset() (*engine.Frame, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.loadErr != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "dataset failed to load: "+h.loadErr.Error())
	}
	if h.frame == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is loading")
	}
	return h.frame, nil
}

// dashboard aggregates the dataset for the year in the query.
func (h *Handler) dashboard(q query) (*models.DashboardData, error) {
	frame, err := h.dataset()
	if err != nil {
		return nil, err
	}
	year, err := parseYear(q.Year)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if year != 0 {
		years, err := engine.Years(frame)
		if err != nil {
			return nil, dataError(err)
		}
		if !slices.Contains(years, year) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown year %d", year))
		}
	}
	data, err := engine.Aggregate(frame, year, h.opts)
	if err != nil {
		return nil, dataError(err)
	}
	return data, nil
}

// dataError reports a workbook that does not match the expected schema.
func dataError(err error) error {
	switch {
	case errors.Is(err, engine.ErrMalformedList),
		errors.Is(err, engine.ErrUnknownColumn),
		errors.Is(err, engine.ErrInvalidColumns):
		return echo.NewHTTPError(http.StatusInternalServerError, "workbook does not match the expected schema: "+err.Error())
	}
	return err
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	frame, err := h.dataset()
	if err != nil {
		var he *echo.HTTPError
		errors.As(err, &he)
		return c.JSON(he.Code, map[string]interface{}{"status": "unavailable", "message": he.Message})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok", "books": frame.Len()})
}

func (h *Handler) GetYears(c echo.Context) error {
	frame, err := h.dataset()
	if err != nil {
		return err
	}
	years, err := engine.Years(frame)
	if err != nil {
		return dataError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"years":   years,
		"options": report.YearOptions(years),
	})
}

func (h *Handler) GetDashboard(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (h *Handler) GetBooks(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}

	total := len(data.Books)
	start, end := paginate(total, q.Limit, q.Offset)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   data.Books[start:end],
		"total":  total,
		"limit":  end - start,
		"offset": q.Offset,
	})
}

// returns authors by number of books read
func (h *Handler) GetTopAuthors(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}
	start, end := paginate(len(data.Charts.Authors), q.Limit, q.Offset)
	return c.JSON(http.StatusOK, data.Charts.Authors[start:end])
}

func (h *Handler) GetSummary(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"year":  report.YearLabel(data.Year),
		"lines": report.Summary(data),
		"shares": map[string]string{
			"books_by_country":   report.Shares(data.Charts.BooksByCountry, "кн."),
			"authors_by_country": report.Shares(data.Charts.AuthorsByCountry, "ав."),
			"genres":             report.Shares(data.Charts.Genres, "кн."),
		},
	})
}

func (h *Handler) GetCharts(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return err
	}
	data, err := h.dashboard(q)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := charts.Render(&buf, data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
