package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/walletswap/config"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

const pricesFeed = `[
  {"currency": "USD", "date": "2023-08-29T07:10:30.000Z", "price": 1},
  {"currency": "ETH", "date": "2023-08-29T07:10:52.000Z", "price": 1645.93},
  {"currency": "ETH", "date": "2023-08-29T07:10:40.000Z", "price": 1645.95},
  {"currency": "STATOM", "date": "2023-08-29T07:10:40.000Z", "price": 8.5},
  {"currency": "OSMO", "date": "2023-08-29T07:10:40.000Z", "price": 0}
]`

const balancesFile = `
- currency: ETH
  blockchain: Ethereum
  amount: "2"
- currency: STATOM
  blockchain: Osmosis
  amount: "10.6"
- currency: DOGE
  blockchain: Dogechain
  amount: 0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(t *testing.T) config.Config {
	c := config.Default()
	c.IconBaseURL = "https://icons/"
	c.Sources = []config.SourceConfig{{Type: config.SourceFile, Path: writeFile(t, "prices.json", pricesFeed)}}
	c.BalancesPath = writeFile(t, "balances.yaml", balancesFile)
	return c
}

func TestWalletApp_Run(t *testing.T) {
	c := testConfig(t)
	c.Conversion = &domain.ConversionRequest{From: "ETH", To: "USD", Amount: mustDecimal(t, "0.5")}

	app, err := NewWalletApp(context.Background(), c, zap.NewNop())
	require.NoError(t, err)
	sub := app.Broadcaster().Subscribe()

	report, err := app.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Snapshot.Prices, 3)
	require.Len(t, report.Snapshot.Rows, 2)
	assert.Equal(t, "ETH", report.Snapshot.Rows[0].Currency)
	assert.Equal(t, "STATOM", report.Snapshot.Rows[1].Currency)
	assert.Equal(t, "11", report.Snapshot.Rows[1].Formatted)
	assert.Equal(t, "https://icons/stATOM.svg", report.Snapshot.Rows[1].IconURL)

	require.NotNil(t, report.Conversion)
	assert.NoError(t, report.ConversionErr)
	assert.Equal(t, "822.965000", report.Conversion.Formatted)

	// one snapshot for the balances, one for the refresh
	assert.Len(t, sub, 2)
}

func TestWalletApp_ConversionFailureIsReported(t *testing.T) {
	c := testConfig(t)
	c.Conversion = &domain.ConversionRequest{From: "ETH", To: "BTC", Amount: mustDecimal(t, "1")}

	app, err := NewWalletApp(context.Background(), c, zap.NewNop())
	require.NoError(t, err)

	report, err := app.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.Conversion)
	assert.ErrorIs(t, report.ConversionErr, domain.ErrMissingPriceRecord)
}

func TestNewWalletApp_InvalidPriorities(t *testing.T) {
	c := testConfig(t)
	c.Priorities = map[string]int{"Osmosis": -200}

	_, err := NewWalletApp(context.Background(), c, zap.NewNop())
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SourceConfig
		expected string
		errMsg   string
	}{
		{name: "file", cfg: config.SourceConfig{Type: config.SourceFile, Path: "p.json"}, expected: "file:p.json"},
		{name: "binance", cfg: config.SourceConfig{Type: config.SourceBinance, Quote: "USDT"}, expected: "binance"},
		{name: "bybit", cfg: config.SourceConfig{Type: config.SourceBybit, Quote: "USDT"}, expected: "bybit"},
		{name: "unsupported", cfg: config.SourceConfig{Type: "kraken"}, errMsg: "unsupported source type: kraken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := newSource(context.Background(), tt.cfg)
			if tt.errMsg != "" {
				assert.EqualError(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, src.Name())
		})
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestWalletApp_RefreshLoop(t *testing.T) {
	c := testConfig(t)
	app, err := NewWalletApp(context.Background(), c, zap.NewNop())
	require.NoError(t, err)
	sub := app.Broadcaster().Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.refreshLoop(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case snap := <-sub:
		assert.Len(t, snap.Prices, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published by the refresh loop")
	}

	cancel()
	<-done
}
