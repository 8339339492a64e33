package pricer

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// MidsFetcher returns mid prices keyed by coin. *hyperliquid.Info implements it.
type MidsFetcher interface {
	AllMids(ctx context.Context) (map[string]string, error)
}

// HyperliquidSource reads mid prices from the Hyperliquid public Info API.
// Mids are keyed by coin and quoted in USDC.
type HyperliquidSource struct {
	info   MidsFetcher
	quote  string
	anchor bool
	now    func() time.Time
}

// NewHyperliquidSource creates a source. quote names the asset mids are quoted in.
func NewHyperliquidSource(info MidsFetcher, quote string, anchor bool) *HyperliquidSource {
	if quote == "" {
		quote = "USDC"
	}
	return &HyperliquidSource{info: info, quote: quote, anchor: anchor, now: time.Now}
}

// Name returns the source name.
func (p *HyperliquidSource) Name() string {
	return "hyperliquid"
}

// Observations fetches all mid prices.
func (p *HyperliquidSource) Observations(ctx context.Context) ([]domain.PriceObservation, error) {
	if p.info == nil {
		return nil, errors.New("hyperliquid info client is nil")
	}

	mids, err := p.info.AllMids(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hyperliquid all mids")
	}

	return midObservations(mids, p.quote, p.anchor, p.now().UTC()), nil
}

// midObservations turns coin mids into observations, ordered by coin for a stable feed order.
func midObservations(mids map[string]string, quote string, anchor bool, observedAt time.Time) []domain.PriceObservation {
	coins := make([]string, 0, len(mids))
	for coin := range mids {
		coins = append(coins, coin)
	}
	sort.Strings(coins)

	tickers := make([]tickerPrice, 0, len(coins))
	for _, coin := range coins {
		pair := domain.Pair{From: coin, To: quote}
		tickers = append(tickers, tickerPrice{Symbol: pair.Symbol(), Price: mids[coin]})
	}

	return tickerObservations(tickers, quote, anchor, observedAt)
}
