package htmlpage

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listHTML = `<html><body>
<ul class="jobs-search__results-list">
  <li><a href="/jobs/view/1?refId=abc">One</a></li>
  <li><a href="https://other.test/jobs/view/2">Two</a></li>
  <li><a name="no-href">Three</a></li>
</ul>
</body></html>`

const detailHTML = `<html><body>
<div class="top-card-layout__entity-info"><h1 class="top-card-layout__title">
  Go   Developer
</h1></div>
<h1 class="top-card-layout__title">Second</h1>
</body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, listHTML)
	})
	mux.HandleFunc("/jobs/view/1", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/jobs/view/go-developer-1", http.StatusFound)
	})
	mux.HandleFunc("/jobs/view/go-developer-1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailHTML)
	})
	mux.HandleFunc("/blocked", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func navigate(t *testing.T, e *Engine, url string) crawler.Page {
	t.Helper()
	page, err := e.NewPage(context.Background())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(context.Background(), url))
	return page
}

func TestPage_Hrefs(t *testing.T) {
	srv := newServer(t)
	page := navigate(t, NewEngine(srv.Client(), ""), srv.URL+"/list")

	hrefs, err := page.Hrefs(context.Background(), "ul.jobs-search__results-list a")
	require.NoError(t, err)
	assert.Equal(t, []string{
		srv.URL + "/jobs/view/1?refId=abc",
		"https://other.test/jobs/view/2",
		"",
	}, hrefs, "one entry per matched anchor")

	none, err := page.Hrefs(context.Background(), "ul.missing a")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPage_TextAndRedirect(t *testing.T) {
	srv := newServer(t)
	page := navigate(t, NewEngine(srv.Client(), ""), srv.URL+"/jobs/view/1")

	assert.Equal(t, srv.URL+"/jobs/view/go-developer-1", page.URL())
	require.NoError(t, page.WaitForLoad(context.Background()))

	text, err := page.Text(context.Background(), "div.top-card-layout__entity-info h1.top-card-layout__title")
	require.NoError(t, err)
	assert.Equal(t, "\n  Go   Developer\n", text)

	// first match wins
	text, err = page.Text(context.Background(), "h1.top-card-layout__title")
	require.NoError(t, err)
	assert.Contains(t, text, "Developer")

	_, err = page.Text(context.Background(), "span.topcard__flavor a")
	assert.ErrorIs(t, err, crawler.ErrElementNotFound)
}

func TestPage_NonSuccessStatus(t *testing.T) {
	srv := newServer(t)
	page, err := NewEngine(srv.Client(), "").NewPage(context.Background())
	require.NoError(t, err)

	err = page.Navigate(context.Background(), srv.URL+"/blocked")
	assert.ErrorContains(t, err, "429")
	assert.Error(t, page.WaitForLoad(context.Background()))
}
