// Package browser wraps go-rod Chromium control for the scrape loop.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Options configures the Chromium instance and per-page behavior.
type Options struct {
	Headless          bool
	Bin               string // explicit Chromium binary; empty auto-detects
	UserAgent         string
	NavigationTimeout time.Duration
}

// Browser owns one Chromium instance, shared sequentially by all pages.
type Browser struct {
	browser *rod.Browser
	opts    Options
}

// Launch starts Chromium and connects to it. The --no-sandbox flag is
// required in the container images this runs in.
func Launch(opts Options) (*Browser, error) {
	l := launcher.New().
		Headless(opts.Headless).
		NoSandbox(true).
		Leakless(false)
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	return &Browser{browser: b, opts: opts}, nil
}

// NewPage opens a fresh blank page.
func (b *Browser) NewPage(ctx context.Context) (*Page, error) {
	pg, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if b.opts.UserAgent != "" {
		if err := pg.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.opts.UserAgent}); err != nil {
			_ = pg.Close()
			return nil, fmt.Errorf("set user agent: %w", err)
		}
	}
	return &Page{page: pg, navTimeout: b.opts.NavigationTimeout}, nil
}

// Close shuts down the Chromium instance.
func (b *Browser) Close() error {
	return b.browser.Close()
}

// Page is one controlled tab. Pages are reused sequentially across stores
// for a product and recreated per product.
type Page struct {
	page       *rod.Page
	navTimeout time.Duration
}

// Navigate loads url and waits for the DOM content to be ready, bounded
// by the configured navigation timeout. The full load event is not
// awaited; storefront pages keep loading ads and trackers long after
// the prices are in the DOM, and WaitSettled covers late rendering.
func (p *Page) Navigate(ctx context.Context, url string) error {
	pg := p.page.Context(ctx)
	if p.navTimeout > 0 {
		pg = pg.Timeout(p.navTimeout)
	}
	wait := pg.WaitEvent(&proto.PageDomContentEventFired{})
	if err := pg.Navigate(url); err != nil {
		return err
	}
	wait()
	return pg.GetContext().Err()
}

// WaitSettled pauses for the quiescence period that lets client-side
// rendering finish before extraction.
func (p *Page) WaitSettled(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// HTML returns the page's current serialized DOM.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// Close releases the tab.
func (p *Page) Close() error {
	return p.page.Close()
}
