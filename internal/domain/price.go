package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PriceObservation is a raw price point received from a feed.
// It is not validated: the same currency may repeat and the price may be non-positive.
type PriceObservation struct {
	Currency   string          `json:"currency" yaml:"currency"`
	ObservedAt time.Time       `json:"date" yaml:"date"`
	Price      decimal.Decimal `json:"price" yaml:"price"`
}

// Valid reports whether the observation carries a usable price.
func (o PriceObservation) Valid() bool {
	return o.Price.IsPositive()
}

// ReconciledPriceRecord is the freshest valid observation kept for a currency.
type ReconciledPriceRecord struct {
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
	Price     decimal.Decimal `json:"price"`
	IconKey   string          `json:"icon_key"`
}

// PriceBook maps a currency symbol to its reconciled record.
type PriceBook map[string]ReconciledPriceRecord

// Get returns the record for the currency.
func (b PriceBook) Get(currency string) (ReconciledPriceRecord, bool) {
	r, ok := b[currency]
	return r, ok
}

// Currencies returns the currencies in the book in lexical order.
func (b PriceBook) Currencies() []string {
	out := make([]string, 0, len(b))
	for c := range b {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Records returns the records ordered by currency.
func (b PriceBook) Records() []ReconciledPriceRecord {
	out := make([]ReconciledPriceRecord, 0, len(b))
	for _, c := range b.Currencies() {
		out = append(out, b[c])
	}
	return out
}
