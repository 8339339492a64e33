package pricer

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// BinanceSource lists spot prices from the Binance public API.
type BinanceSource struct {
	client *binance.Client
	quote  string
	anchor bool
	now    func() time.Time
}

// NewBinanceSource creates a source emitting currencies quoted in quote (e.g. USDT).
func NewBinanceSource(client *binance.Client, quote string, anchor bool) *BinanceSource {
	return &BinanceSource{client: client, quote: quote, anchor: anchor, now: time.Now}
}

// Name returns the source name.
func (p *BinanceSource) Name() string {
	return "binance"
}

// Observations fetches all ticker prices.
func (p *BinanceSource) Observations(ctx context.Context) ([]domain.PriceObservation, error) {
	prices, err := p.client.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "binance list prices")
	}

	tickers := make([]tickerPrice, 0, len(prices))
	for _, price := range prices {
		if price == nil {
			continue
		}
		tickers = append(tickers, tickerPrice{Symbol: price.Symbol, Price: price.Price})
	}

	return tickerObservations(tickers, p.quote, p.anchor, p.now().UTC()), nil
}
