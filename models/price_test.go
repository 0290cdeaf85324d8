package models

import "testing"

func TestPriceRowCheapest(t *testing.T) {
	tests := []struct {
		name       string
		row        PriceRow
		wantSeller string
		wantPrice  float64
		wantOK     bool
	}{
		{
			name: "single observation",
			row: PriceRow{
				Product: "TV",
				Observations: []PriceObservation{
					{Seller: "Jumia", Price: 12000, Found: true},
				},
			},
			wantSeller: "Jumia",
			wantPrice:  12000,
			wantOK:     true,
		},
		{
			name: "lowest across stores",
			row: PriceRow{
				Observations: []PriceObservation{
					{Seller: "Jumia", Price: 12000, Found: true},
					{Seller: "2B", Price: 11500, Found: true},
					{Seller: "BTECH", Price: 11999, Found: true},
				},
			},
			wantSeller: "2B",
			wantPrice:  11500,
			wantOK:     true,
		},
		{
			name: "missing observations skipped",
			row: PriceRow{
				Observations: []PriceObservation{
					{Seller: "Jumia"},
					{Seller: "2B", Price: 9000, Found: true},
					{Seller: "BTECH"},
				},
			},
			wantSeller: "2B",
			wantPrice:  9000,
			wantOK:     true,
		},
		{
			name: "tie resolves to earlier seller",
			row: PriceRow{
				Observations: []PriceObservation{
					{Seller: "Jumia", Price: 9999, Found: true},
					{Seller: "Noon", Price: 9999, Found: true},
				},
			},
			wantSeller: "Jumia",
			wantPrice:  9999,
			wantOK:     true,
		},
		{
			name:   "no observations",
			row:    PriceRow{Product: "TV"},
			wantOK: false,
		},
		{
			name: "all missing",
			row: PriceRow{
				Observations: []PriceObservation{
					{Seller: "Jumia"},
					{Seller: "2B"},
				},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seller, price, ok := tt.row.Cheapest()
			if ok != tt.wantOK {
				t.Fatalf("Cheapest() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if seller != tt.wantSeller || price != tt.wantPrice {
				t.Errorf("Cheapest() = (%q, %v), want (%q, %v)", seller, price, tt.wantSeller, tt.wantPrice)
			}
		})
	}
}
