package internal

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/walletswap/config"
	"github.com/vadiminshakov/walletswap/internal/clients"
	"github.com/vadiminshakov/walletswap/internal/services/pricer"
)

const hyperliquidMainnetURL = "https://api.hyperliquid.xyz"

// newSource is the single point of truth for dispatching a source config to its implementation.
// Exchange credentials are optional and read from the environment.
func newSource(ctx context.Context, c config.SourceConfig) (pricer.Source, error) {
	switch c.Type {
	case config.SourceFile:
		return pricer.NewFileSource(c.Path), nil
	case config.SourceBinance:
		client := clients.NewBinanceClient(os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_API_SECRET"))
		return pricer.NewBinanceSource(client, c.Quote, c.Anchor), nil
	case config.SourceBybit:
		client := clients.NewBybitClient(os.Getenv("BYBIT_API_KEY"), os.Getenv("BYBIT_API_SECRET"))
		return pricer.NewBybitSource(client, c.Quote, c.Anchor), nil
	case config.SourceHyperliquid:
		url := c.URL
		if url == "" {
			url = hyperliquidMainnetURL
		}
		info, err := clients.NewHyperliquidInfo(ctx, os.Getenv("HYPERLIQUID_PRIVATE_KEY"), url)
		if err != nil {
			return nil, errors.Wrap(err, "create hyperliquid client")
		}
		return pricer.NewHyperliquidSource(info, c.Quote, c.Anchor), nil
	default:
		return nil, errors.Errorf("unsupported source type: %s", c.Type)
	}
}

// newFeed builds one source per config entry.
func newFeed(ctx context.Context, cfgs []config.SourceConfig, logger *zap.Logger) (*pricer.Feed, error) {
	sources := make([]pricer.Source, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := newSource(ctx, c)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return pricer.NewFeed(logger, sources...), nil
}
