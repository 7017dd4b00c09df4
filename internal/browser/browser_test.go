package browser

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies-linkedin.json")
	data := `[
  {"name":"li_at","value":"token","domain":".linkedin.com","path":"/","expires":1893456000,"httpOnly":true,"secure":true,"sameSite":"None"},
  {"name":"lang","value":"v=2&lang=en-us","domain":".linkedin.com","sameSite":"Lax"}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	first := cookies[0]
	assert.Equal(t, "li_at", first.Name)
	assert.Equal(t, "token", first.Value)
	assert.Equal(t, ".linkedin.com", *first.Domain)
	assert.Equal(t, "/", *first.Path)
	assert.Equal(t, float64(1893456000), *first.Expires)
	assert.True(t, *first.HttpOnly)
	assert.True(t, *first.Secure)
	assert.Equal(t, playwright.SameSiteAttributeNone, first.SameSite)

	second := cookies[1]
	assert.Nil(t, second.Expires)
	assert.Nil(t, second.HttpOnly)
	assert.Equal(t, "/", *second.Path)
	assert.Equal(t, playwright.SameSiteAttributeLax, second.SameSite)
}

func TestLoadCookies_Errors(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadCookies(bad)
	assert.Error(t, err)
}

// integration test: needs the playwright driver and chromium installed
func TestPlaywrightManager_Page(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<ul class="jobs-search__results-list"><li><a href="/jobs/view/1">x</a></li></ul>`)
	})
	mux.HandleFunc("/jobs/view/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="top-card-layout__entity-info"><h1 class="top-card-layout__title"> Go
 Dev </h1></div>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	pm, err := NewPlaywright(Options{Headless: true, SelectorTimeout: 500 * time.Millisecond})
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	defer pm.Close()

	ctx := context.Background()
	page, err := pm.NewPage(ctx)
	require.NoError(t, err)
	defer page.Close()

	require.NoError(t, page.Navigate(ctx, srv.URL+"/list"))
	hrefs, err := page.Hrefs(ctx, "ul.jobs-search__results-list a")
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/jobs/view/1"}, hrefs)

	require.NoError(t, page.Navigate(ctx, hrefs[0]))
	require.NoError(t, page.WaitForLoad(ctx))
	text, err := page.Text(ctx, "div.top-card-layout__entity-info h1.top-card-layout__title")
	require.NoError(t, err)
	assert.Equal(t, " Go\n Dev ", text)

	_, err = page.Text(ctx, "span.topcard__flavor a")
	assert.ErrorIs(t, err, crawler.ErrElementNotFound)
}

func TestRandomDelay(t *testing.T) {
	start := time.Now()
	require.NoError(t, RandomDelay(context.Background(), 10, 20))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start = time.Now()
	err := RandomDelay(ctx, 5000, 6000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancelled context returns without sleeping")
}

func TestPage_NavigateCancelledDuringHumanDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := &Page{humanDelay: true}
	start := time.Now()
	err := page.Navigate(ctx, "https://www.linkedin.com/jobs/view/1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
