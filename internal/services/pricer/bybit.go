package pricer

import (
	"context"
	"time"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// BybitSource lists spot tickers from the Bybit V5 market API.
type BybitSource struct {
	client *bybit.Client
	quote  string
	anchor bool
	now    func() time.Time
}

// NewBybitSource creates a source emitting currencies quoted in quote (e.g. USDT).
func NewBybitSource(client *bybit.Client, quote string, anchor bool) *BybitSource {
	return &BybitSource{client: client, quote: quote, anchor: anchor, now: time.Now}
}

// Name returns the source name.
func (p *BybitSource) Name() string {
	return "bybit"
}

// Observations fetches all spot tickers. The SDK call does not take a context,
// so cancellation is only checked before the request.
func (p *BybitSource) Observations(ctx context.Context) ([]domain.PriceObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: "spot",
	})
	if err != nil {
		return nil, errors.Wrap(err, "bybit get tickers")
	}

	// a response for another category leaves Spot nil
	var tickers []tickerPrice
	if spot := result.Result.Spot; spot != nil {
		tickers = make([]tickerPrice, 0, len(spot.List))
		for _, item := range spot.List {
			tickers = append(tickers, tickerPrice{Symbol: string(item.Symbol), Price: item.LastPrice})
		}
	}

	return tickerObservations(tickers, p.quote, p.anchor, p.now().UTC()), nil
}
