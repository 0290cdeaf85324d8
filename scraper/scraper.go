// Package scraper runs the price collection loop: for every catalog
// product it queries each store adapter in order and writes the
// resulting row, cheapest price included, to the pricelist sheet.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khaledsamy810-cmd/pricelist/catalog"
	"github.com/khaledsamy810-cmd/pricelist/config"
	"github.com/khaledsamy810-cmd/pricelist/models"
	"github.com/khaledsamy810-cmd/pricelist/sheet"
	"github.com/khaledsamy810-cmd/pricelist/stores"
)

// Page is one browser tab usable by store adapters.
type Page interface {
	stores.Page
	Close() error
}

// Pager opens fresh pages. Satisfied by the browser package; faked in
// tests.
type Pager interface {
	NewPage(ctx context.Context) (Page, error)
}

// Scraper drives one full pricing run.
type Scraper struct {
	cfg      *config.Config
	registry []stores.Adapter
	sheet    *sheet.Pricelist
	pages    Pager
	Metrics  *Metrics
}

// New constructs a scraper over the given sheet and page source.
func New(cfg *config.Config, registry []stores.Adapter, pricelist *sheet.Pricelist, pages Pager) *Scraper {
	return &Scraper{
		cfg:      cfg,
		registry: registry,
		sheet:    pricelist,
		pages:    pages,
	}
}

// Run prices every product and writes each row as soon as it is ready.
// A product whose row cannot be produced or written is logged and
// skipped; only setup failures and context cancellation abort the run.
func (s *Scraper) Run(ctx context.Context) (*models.RunResult, error) {
	result := &models.RunResult{StartTime: time.Now()}

	if err := s.sheet.EnsureHeader(ctx); err != nil {
		return nil, fmt.Errorf("ensure header: %w", err)
	}
	products, err := s.sheet.EnsureProducts(ctx, catalog.Default())
	if err != nil {
		return nil, fmt.Errorf("ensure products: %w", err)
	}
	result.Products = len(products)

	for i, product := range products {
		if err := ctx.Err(); err != nil {
			result.EndTime = time.Now()
			return result, err
		}

		slog.Info("fetching product",
			"index", i+1,
			"total", len(products),
			"product", product,
		)

		// Row 1 is the header, so product i lives on row i+2.
		row, lookups, misses, err := s.priceRow(ctx, product)
		result.Lookups += lookups
		result.Misses += misses
		if err == nil {
			if werr := s.sheet.WriteRow(ctx, i+2, row); werr != nil {
				err = fmt.Errorf("write row: %w", werr)
			}
		}
		if err != nil {
			result.ProductErrors++
			s.Metrics.IncProductError()
			slog.Error("product skipped", "product", product, "error", err)
			continue
		}
		result.RowsWritten++
		s.Metrics.IncRowWritten()
	}

	result.EndTime = time.Now()
	return result, nil
}

// priceRow queries every store for one product on a fresh page. Store
// misses are recorded, not fatal; the returned error covers only
// failures that prevent the row entirely.
func (s *Scraper) priceRow(ctx context.Context, product string) (models.PriceRow, int, int, error) {
	row := models.PriceRow{Product: product}

	page, err := s.pages.NewPage(ctx)
	if err != nil {
		return row, 0, 0, fmt.Errorf("open page: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			slog.Debug("close page", "error", err)
		}
	}()

	lookups, misses := 0, 0
	for _, adapter := range s.registry {
		start := time.Now()
		price, err := adapter.SearchPrice(ctx, page, product, s.cfg.SettleDelay)
		s.Metrics.ObserveLookup(time.Since(start))
		lookups++

		obs := models.PriceObservation{Seller: adapter.Seller}
		if err != nil {
			misses++
			s.Metrics.IncLookup(adapter.Seller, stores.MissLabel(err))
			slog.Debug("price lookup missed",
				"seller", adapter.Seller,
				"product", product,
				"error", err,
			)
			if ctx.Err() != nil {
				return row, lookups, misses, ctx.Err()
			}
		} else {
			obs.Price = price
			obs.Found = true
			s.Metrics.IncLookup(adapter.Seller, "ok")
		}
		row.Observations = append(row.Observations, obs)

		if err := sleep(ctx, s.cfg.StoreDelay); err != nil {
			return row, lookups, misses, err
		}
	}
	return row, lookups, misses, nil
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
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
