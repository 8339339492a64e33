// Package pricer collects raw price observations from files and exchanges.
// Sources only fetch and decode, reconciliation happens downstream.
package pricer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// Source produces raw price observations.
type Source interface {
	Name() string
	Observations(ctx context.Context) ([]domain.PriceObservation, error)
}

// tickerPrice is an exchange ticker reduced to what the pipeline needs.
type tickerPrice struct {
	Symbol string
	Price  string
}

// tickerObservations converts exchange tickers quoted in quote into observations of the base currency.
// Tickers quoted in other assets are skipped. Unparseable prices are kept as zero so that the
// reconciler counts them as invalid. When anchor is set the quote asset itself is emitted at price 1.
func tickerObservations(tickers []tickerPrice, quote string, anchor bool, observedAt time.Time) []domain.PriceObservation {
	out := make([]domain.PriceObservation, 0, len(tickers)+1)
	if anchor && quote != "" {
		out = append(out, domain.PriceObservation{Currency: quote, ObservedAt: observedAt, Price: decimal.NewFromInt(1)})
	}

	for _, t := range tickers {
		pair, ok := domain.PairFromSymbol(t.Symbol, quote)
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			price = decimal.Zero
		}
		out = append(out, domain.PriceObservation{Currency: pair.From, ObservedAt: observedAt, Price: price})
	}

	return out
}
