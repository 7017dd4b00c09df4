package browser

import (
	"fmt"
	"linkedin-scraper/internal/crawler"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ScreenShotDebugger saves full-page screenshots of pages whose handler failed
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if dir == "" {
		dir = filepath.Join(".", "logs", "screenshots")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory: %v", err)
	}
	return &ScreenShotDebugger{
		outputDir: dir,
	}
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", unsafeName.ReplaceAllString(name, "_"), timestamp)
	path := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}

// OnFailure matches crawler.Options.OnFailure. Pages from other engines are ignored.
func (s *ScreenShotDebugger) OnFailure(page crawler.Page, req crawler.Request, err error) {
	pp, ok := page.(*Page)
	if !ok {
		return
	}
	name := fmt.Sprintf("%s-retry%d", req.Kind, req.RetryCount)
	_ = s.CaptureAndLog(pp.page, name, fmt.Sprintf("%s failed on %s: %v", req.Kind, req.URL, err))
}
