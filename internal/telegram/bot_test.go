package telegram

import (
	"linkedin-scraper/internal/scraper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `Senior\-Go\.Dev \(Remote\)`, EscapeMarkdown("Senior-Go.Dev (Remote)"))
	assert.Equal(t, "plain", EscapeMarkdown("plain"))
}

func TestFormatJob(t *testing.T) {
	msg := FormatJob(scraper.JobRecord{
		Title:       "Go_Developer",
		CompanyName: "Acme.io",
		PostedTime:  "2daysago",
		URL:         "https://www.linkedin.com/jobs/view/1",
	})

	assert.Contains(t, msg, `*Go\_Developer*`)
	assert.Contains(t, msg, `Acme\.io`)
	assert.Contains(t, msg, "2daysago")
	assert.Contains(t, msg, "(https://www.linkedin.com/jobs/view/1)")
}

func TestFormatJob_NoPostedTime(t *testing.T) {
	msg := FormatJob(scraper.JobRecord{Title: "T", CompanyName: "C", URL: "u"})
	assert.NotContains(t, msg, "📅")
}
