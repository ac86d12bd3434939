package models

// DashboardData is everything the dashboard shows for one year selection.
type DashboardData struct {
	Year   int       `json:"year"` // 0 = all years
	Books  []BookRow `json:"books"`
	Stats  Stats     `json:"stats"`
	Charts Charts    `json:"charts"`
}

type BookRow struct {
	Index        int    `json:"index"`
	MeetingYear  int    `json:"meeting_year"`
	MeetingMonth int    `json:"meeting_month"`
	MeetingDay   int    `json:"meeting_day"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Genres       string `json:"genres"`
	Country      string `json:"author_country"`
	Gender       string `json:"author_gender"`
	Pages        int    `json:"num_pages"`
	YearWritten  int    `json:"year_written_or_published"`
}

type Stats struct {
	Meetings     int    `json:"meetings"`
	Books        int    `json:"books"`
	BooksLabel   string `json:"books_label"`
	Authors      int    `json:"authors"`
	AuthorsLabel string `json:"authors_label"`
	Genres       int    `json:"genres"`
	GenresLabel  string `json:"genres_label"`

	Pages        int     `json:"pages"`
	StackHeightM float64 `json:"stack_height_m"`
	Words        int     `json:"words"`
	Sentences    int     `json:"sentences"`

	Thickest []BookRef `json:"thickest"`
	Thinnest []BookRef `json:"thinnest"`

	TopGenres    []TopItem `json:"top_genres"`
	TopAuthors   []TopItem `json:"top_authors"`
	TopCountries []TopItem `json:"top_countries"`
}

type BookRef struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Pages  int    `json:"num_pages"`
}

type TopItem struct {
	Name  string `json:"name"`
	Value int    `json:"books"`
}

// ShareItem is one pie slice with its percentage of the whole.
type ShareItem struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Series is a pair of parallel label/value slices for bar charts.
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type MonthlyItem struct {
	Month string `json:"month"`
	Pages int    `json:"pages"`
}

type Histogram struct {
	Values []int     `json:"values"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

type Charts struct {
	Authors          []TopItem     `json:"authors"`
	BooksByCountry   []ShareItem   `json:"books_by_country"`
	AuthorsByCountry []ShareItem   `json:"authors_by_country"`
	AuthorsByGender  []ShareItem   `json:"authors_by_gender"`
	BooksByDecade    Series        `json:"books_by_decade"`
	Genres           []ShareItem   `json:"genres"`
	PagesByMonth     []MonthlyItem `json:"pages_by_month"`
	PagesHistogram   Histogram     `json:"pages_histogram"`
}
