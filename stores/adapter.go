// Package stores implements the per-retailer search adapters. An adapter
// knows how to build a search URL for a product query and which CSS
// selectors locate price elements on that retailer's results page.
package stores

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/khaledsamy810-cmd/pricelist/parser"
)

// maxCandidates caps how many price fragments are read per results page.
// Anything past the first screen of results is noise.
const maxCandidates = 30

// Page is the minimal rendered-page surface an adapter drives.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitSettled(ctx context.Context, d time.Duration) error
	HTML(ctx context.Context) (string, error)
}

// Adapter describes one retailer: its display name, search-URL template,
// and the selectors matching price elements in its results markup.
// Adapters are stateless values; the full set is fixed at process start.
type Adapter struct {
	Seller    string
	SearchURL string
	Selectors []string
}

// BuildQueryURL appends the query to the search-URL template, replacing
// spaces with '+'. No further escaping is applied; the retailers accept
// product names verbatim.
func (a Adapter) BuildQueryURL(query string) string {
	return a.SearchURL + strings.ReplaceAll(query, " ", "+")
}

// ExtractCandidates returns the text of up to maxCandidates elements
// matching the adapter's selectors, in document order.
func (a Adapter) ExtractCandidates(doc *goquery.Document) []string {
	var texts []string
	doc.Find(strings.Join(a.Selectors, ", ")).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		texts = append(texts, strings.TrimSpace(s.Text()))
		return len(texts) < maxCandidates
	})
	return texts
}

// SearchPrice navigates the page to the query's results, waits for the
// initial load plus the settle delay, and returns the lowest positive
// price found among the candidate elements. Every failure mode comes back
// as a miss error for the caller to record; nothing here aborts the wider
// run.
func (a Adapter) SearchPrice(ctx context.Context, pg Page, query string, settle time.Duration) (float64, error) {
	url := a.BuildQueryURL(query)
	if err := pg.Navigate(ctx, url); err != nil {
		return 0, &NavigationError{URL: url, Err: err}
	}
	if err := pg.WaitSettled(ctx, settle); err != nil {
		return 0, &NavigationError{URL: url, Err: err}
	}

	html, err := pg.HTML(ctx)
	if err != nil {
		return 0, &ExtractionError{Err: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, &ExtractionError{Err: err}
	}

	var best float64
	found := false
	for _, text := range a.ExtractCandidates(doc) {
		price, ok := parser.ParsePrice(text)
		if !ok || price <= 0 {
			continue
		}
		if !found || price < best {
			best = price
			found = true
		}
	}
	if !found {
		return 0, ErrNoPrice
	}
	return best, nil
}
