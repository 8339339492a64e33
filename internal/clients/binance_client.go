package clients

import (
	"github.com/adshao/go-binance/v2"
)

// NewBinanceClient creates a Binance client. Price listing is public, empty credentials are fine.
func NewBinanceClient(apiKey, apiSecret string) *binance.Client {
	client := binance.NewClient(apiKey, apiSecret)
	return client
}
