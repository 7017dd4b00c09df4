package browser

import (
	"context"
	"errors"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headless          bool
	UserAgent         string
	Cookies           []playwright.OptionalCookie
	NavigationTimeout time.Duration
	SelectorTimeout   time.Duration
	// HumanDelay sleeps a random 0.5-1.5s before each navigation.
	HumanDelay bool
}

// PlaywrightManager owns the driver, one Chromium instance and one shared browser context.
// Every crawler request gets its own tab in that context.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	bctx    playwright.BrowserContext
	opts    Options
}

func NewPlaywright(opts Options) (*PlaywrightManager, error) {
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = 30 * time.Second
	}
	if opts.SelectorTimeout <= 0 {
		opts.SelectorTimeout = 10 * time.Second
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}

	pm := &PlaywrightManager{pw: pw, browser: browser, opts: opts}
	bctx, err := pm.NewContext(opts.Cookies)
	if err != nil {
		pm.Close()
		return nil, err
	}
	pm.bctx = bctx
	return pm, nil
}

// NewContext creates a browser context carrying the configured user agent and cookies.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctxOpts := playwright.BrowserNewContextOptions{}
	if pm.opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(pm.opts.UserAgent)
	}

	bctx, err := pm.browser.NewContext(ctxOpts)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := bctx.AddCookies(cookies); err != nil {
			bctx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
		log.Printf("🍪 Added %d cookies to browser context", len(cookies))
	}
	return bctx, nil
}

func (pm *PlaywrightManager) NewPage(ctx context.Context) (crawler.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := pm.bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	return &Page{
		page:       page,
		navTimeout: float64(pm.opts.NavigationTimeout.Milliseconds()),
		selTimeout: float64(pm.opts.SelectorTimeout.Milliseconds()),
		humanDelay: pm.opts.HumanDelay,
	}, nil
}

func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.bctx != nil {
		errs = append(errs, pm.bctx.Close())
	}
	if pm.browser != nil {
		errs = append(errs, pm.browser.Close())
	}
	if pm.pw != nil {
		errs = append(errs, pm.pw.Stop())
	}
	return errors.Join(errs...)
}

// Page adapts a playwright tab to crawler.Page.
type Page struct {
	page       playwright.Page
	navTimeout float64
	selTimeout float64
	humanDelay bool
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	if p.humanDelay {
		if err := RandomDelay(ctx, 500, 1500); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(p.navTimeout),
	})
	return err
}

func (p *Page) WaitForLoad(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateLoad,
		Timeout: playwright.Float(p.navTimeout),
	})
}

// Hrefs reads the DOM href property, which the browser has already resolved to an absolute URL.
func (p *Page) Hrefs(ctx context.Context, selector string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := p.page.Locator(selector).EvaluateAll("links => links.map(link => link.href)")
	if err != nil {
		return nil, err
	}
	items, ok := result.([]interface{})
	if !ok {
		return nil, nil
	}
	hrefs := make([]string, 0, len(items))
	for _, item := range items {
		href, _ := item.(string)
		hrefs = append(hrefs, href)
	}
	return hrefs, nil
}

// Text waits up to the selector timeout for the first match to be attached, then reads its textContent.
func (p *Page) Text(ctx context.Context, selector string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	loc := p.page.Locator(selector).First()
	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(p.selTimeout),
	}); err != nil {
		return "", fmt.Errorf("%w: %s (%v)", crawler.ErrElementNotFound, selector, err)
	}
	return loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(p.selTimeout),
	})
}

func (p *Page) URL() string {
	return p.page.URL()
}

func (p *Page) Close() error {
	return p.page.Close()
}
