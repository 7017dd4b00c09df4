package export

import (
	"encoding/csv"
	"encoding/json"
	"linkedin-scraper/internal/scraper"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVPath(t *testing.T) {
	assert.Equal(t, "golang_jobs.csv", CSVPath("golang_jobs"))
	assert.Equal(t, "out/berlin.csv", CSVPath("out/berlin"))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jobs.csv")
	records := []scraper.JobRecord{
		{Title: "GoDeveloper", CompanyName: "Acme,Inc", PostedTime: "3daysago", URL: "https://www.linkedin.com/jobs/view/1"},
		{Title: `Say"Hi"`, CompanyName: "B", PostedTime: "1weekago", URL: "https://www.linkedin.com/jobs/view/2"},
	}

	require.NoError(t, WriteCSV(path, records))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "title,Company name,Time of posting,url\n")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"title", "Company name", "Time of posting", "url"},
		{"GoDeveloper", "Acme,Inc", "3daysago", "https://www.linkedin.com/jobs/view/1"},
		{`Say"Hi"`, "B", "1weekago", "https://www.linkedin.com/jobs/view/2"},
	}, rows)
}

func TestWriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "title,Company name,Time of posting,url\n", string(raw))
}

func TestSaveJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	records := []scraper.JobRecord{{Title: "GoDeveloper", CompanyName: "Acme", PostedTime: "1dayago", URL: "u"}}

	path, err := SaveJSON(dir, records, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "job-search-2026-10-19.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Acme", decoded[0]["Company name"])
	assert.Equal(t, "1dayago", decoded[0]["Time of posting"])
}
