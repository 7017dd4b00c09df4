// Shared data shapes for the LinkedIn scraper
// Keep field spelling stable: the CSV header is derived from it

package scraper

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// SearchQuery is built once from caller input and only used to build the seed URL.
type SearchQuery struct {
	Title      string
	Location   string
	OutputName string
}

// JobRecord is one exported row. Records are never modified after being pushed.
type JobRecord struct {
	Title       string `json:"title"`
	CompanyName string `json:"Company name"`
	PostedTime  string `json:"Time of posting"`
	URL         string `json:"url"`
}

// CSVHeader lists the column names in emission order.
var CSVHeader = []string{"title", "Company name", "Time of posting", "url"}

// Row returns the record's values in CSVHeader order.
func (r JobRecord) Row() []string {
	return []string{r.Title, r.CompanyName, r.PostedTime, r.URL}
}

var stripSpace = runes.Remove(runes.Predicate(unicode.IsSpace))

// CollapseWhitespace drops every run of whitespace entirely.
// "Senior\n  Engineer" becomes "SeniorEngineer", not "Senior Engineer".
func CollapseWhitespace(s string) string {
	out, _, err := transform.String(stripSpace, s)
	if err != nil {
		return s
	}
	return out
}
