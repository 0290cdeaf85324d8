// Package models defines data structures for the price updater.
package models

import "time"

// PriceObservation is the result of querying one store for one product.
// Found is false when the store yielded no usable price.
type PriceObservation struct {
	Seller string
	Price  float64
	Found  bool
}

// PriceRow holds one product's observations across all stores, in
// registry order.
type PriceRow struct {
	Product      string
	Observations []PriceObservation
}

// Cheapest returns the lowest observed price and its seller. Ties resolve
// to the earliest observation, which is registry order.
func (r PriceRow) Cheapest() (seller string, price float64, ok bool) {
	for _, obs := range r.Observations {
		if !obs.Found {
			continue
		}
		if !ok || obs.Price < price {
			seller, price, ok = obs.Seller, obs.Price, true
		}
	}
	return seller, price, ok
}

// RunResult holds the overall result of one update cycle.
type RunResult struct {
	Products      int
	RowsWritten   int
	ProductErrors int
	Lookups       int
	Misses        int
	StartTime     time.Time
	EndTime       time.Time
}
