// Package reconciler folds a raw price feed into one freshest record per currency.
package reconciler

import "github.com/vadiminshakov/walletswap/internal/domain"

// IconKeyer resolves the icon key attached to a reconciled record.
type IconKeyer interface {
	IconKey(currency string) string
}

// Stats describes a single reconciliation pass.
type Stats struct {
	Observed   int
	Invalid    int
	Superseded int
	Currencies int
}

// Reconciler holds no state between calls and is safe for concurrent use.
type Reconciler struct {
	icons IconKeyer
}

// NewReconciler creates a reconciler. A nil icons resolver keeps the currency symbol as icon key.
func NewReconciler(icons IconKeyer) *Reconciler {
	return &Reconciler{icons: icons}
}

// Reconcile returns one record per currency with the latest valid observation.
// Observations with a non-positive price are dropped. On equal timestamps the first
// valid observation wins.
func (r *Reconciler) Reconcile(observations []domain.PriceObservation) domain.PriceBook {
	book, _ := r.ReconcileWithStats(observations)
	return book
}

// ReconcileWithStats is Reconcile that also reports what was dropped.
func (r *Reconciler) ReconcileWithStats(observations []domain.PriceObservation) (domain.PriceBook, Stats) {
	book := make(domain.PriceBook)
	stats := Stats{Observed: len(observations)}

	for _, o := range observations {
		if !o.Valid() {
			stats.Invalid++
			continue
		}

		if current, ok := book[o.Currency]; ok && !o.ObservedAt.After(current.UpdatedAt) {
			continue
		}

		book[o.Currency] = domain.ReconciledPriceRecord{
			Currency:  o.Currency,
			UpdatedAt: o.ObservedAt,
			Price:     o.Price,
			IconKey:   r.iconKey(o.Currency),
		}
	}
	stats.Currencies = len(book)
	// valid observations that did not end up as the currency record
	stats.Superseded = stats.Observed - stats.Invalid - stats.Currencies

	return book, stats
}

func (r *Reconciler) iconKey(currency string) string {
	if r.icons == nil {
		return currency
	}
	return r.icons.IconKey(currency)
}
