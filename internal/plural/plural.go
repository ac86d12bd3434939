// Package plural picks Russian word forms for counts shown on the dashboard.
//
// The rules are the ones the club's dashboard has always used. They are not
// a full implementation of Russian numeral agreement: the whole range 5..20
// (2..20 for authors and genres) is treated as "many" before the last digit
// is looked at.
package plural

const (
	BookOne  = "книга"
	BookFew  = "книги"
	BookMany = "книг"

	// Authors are counted in the genitive: "книг 1 автора", "книг 5 авторов".
	AuthorOne  = "автора"
	AuthorMany = "авторов"

	// Genres follow the preposition "в": "в 1 жанре", "в 5 жанрах".
	GenreOne  = "жанре"
	GenreMany = "жанрах"
)

// Books returns the form of "книга" for n books.
func Books(n int) string {
	last := n % 10
	switch {
	case 5 <= n && n <= 20:
		return BookMany
	case last == 1:
		return BookOne
	case 2 <= last && last <= 4:
		return BookFew
	default:
		return BookMany
	}
}

// Authors returns the genitive form of "автор" for n authors.
func Authors(n int) string {
	switch {
	case 2 <= n && n <= 20:
		return AuthorMany
	case n%10 == 1:
		return AuthorOne
	default:
		return AuthorMany
	}
}

// Genres returns the prepositional form of "жанр" for n genres.
func Genres(n int) string {
	switch {
	case 2 <= n && n <= 20:
		return GenreMany
	case n%10 == 1:
		return GenreOne
	default:
		return GenreMany
	}
}
