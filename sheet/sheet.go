// Package sheet persists price rows to the pricelist spreadsheet. The
// Backend interface isolates the Google Sheets client so the row logic is
// testable against an in-memory fake.
package sheet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/khaledsamy810-cmd/pricelist/models"
)

// summaryColumns follow the per-store columns in every row.
var summaryColumns = []string{"Cheapest Store", "Cheapest Price"}

// Backend is the minimal worksheet surface the pricelist needs. Rows and
// columns are 1-based.
type Backend interface {
	RowValues(ctx context.Context, row int) ([]string, error)
	ColumnValues(ctx context.Context, col int) ([]string, error)
	Clear(ctx context.Context) error
	AppendRow(ctx context.Context, values []string) error
	AppendRows(ctx context.Context, rows [][]string) error
	// UpdateRow writes values as one contiguous range starting at startCol.
	UpdateRow(ctx context.Context, row, startCol int, values []string) error
}

// Pricelist maps price rows onto the worksheet layout:
// Product | one column per seller | Cheapest Store | Cheapest Price.
type Pricelist struct {
	backend  Backend
	sellers  []string
	snapshot *Snapshot
}

// NewPricelist builds a pricelist over backend with the given seller
// column order.
func NewPricelist(backend Backend, sellers []string) *Pricelist {
	return &Pricelist{backend: backend, sellers: sellers}
}

// AttachSnapshot mirrors every written row to a local CSV snapshot.
func (p *Pricelist) AttachSnapshot(s *Snapshot) {
	p.snapshot = s
}

// Header returns the expected header row.
func (p *Pricelist) Header() []string {
	header := make([]string, 0, len(p.sellers)+3)
	header = append(header, "Product")
	header = append(header, p.sellers...)
	header = append(header, summaryColumns...)
	return header
}

// EnsureHeader validates the worksheet's header row against the expected
// column order. On any mismatch the whole sheet is cleared and the header
// rewritten; stale layouts are not worth migrating.
func (p *Pricelist) EnsureHeader(ctx context.Context) error {
	got, err := p.backend.RowValues(ctx, 1)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	want := p.Header()
	if equalRows(got, want) {
		return nil
	}
	if err := p.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}
	if err := p.backend.AppendRow(ctx, want); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// EnsureProducts returns the products to price this run. An already
// populated product column is reused in its existing row order, which is
// what makes re-runs reprice rather than re-seed; an empty column is
// bulk-seeded from defaults with blank value cells.
func (p *Pricelist) EnsureProducts(ctx context.Context, defaults []string) ([]string, error) {
	column, err := p.backend.ColumnValues(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("read product column: %w", err)
	}
	if len(column) > 1 {
		return column[1:], nil
	}

	width := len(p.Header())
	rows := make([][]string, len(defaults))
	for i, product := range defaults {
		row := make([]string, width)
		row[0] = product
		rows[i] = row
	}
	if err := p.backend.AppendRows(ctx, rows); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	return defaults, nil
}

// WriteRow persists one product's prices as a single contiguous range
// update starting at the second column (column 1 already holds the
// product name). Missing prices become blank cells.
func (p *Pricelist) WriteRow(ctx context.Context, rowIdx int, row models.PriceRow) error {
	byStore := make(map[string]float64, len(row.Observations))
	for _, obs := range row.Observations {
		if obs.Found {
			byStore[obs.Seller] = obs.Price
		}
	}

	values := make([]string, 0, len(p.sellers)+2)
	for _, seller := range p.sellers {
		if price, ok := byStore[seller]; ok {
			values = append(values, formatPrice(price))
		} else {
			values = append(values, "")
		}
	}
	if seller, price, ok := row.Cheapest(); ok {
		values = append(values, seller, formatPrice(price))
	} else {
		values = append(values, "", "")
	}

	if err := p.backend.UpdateRow(ctx, rowIdx, 2, values); err != nil {
		return fmt.Errorf("update row %d: %w", rowIdx, err)
	}

	if p.snapshot != nil {
		record := append([]string{row.Product}, values...)
		if err := p.snapshot.Append(record); err != nil {
			return fmt.Errorf("snapshot row %d: %w", rowIdx, err)
		}
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
