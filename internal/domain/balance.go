package domain

import "github.com/shopspring/decimal"

// WalletBalance amount of a currency held on a blockchain network.
// Amount may be zero or negative (dust or debt).
type WalletBalance struct {
	Currency   string          `json:"currency" yaml:"currency"`
	Blockchain string          `json:"blockchain" yaml:"blockchain"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
}

// FormattedWalletBalance is a balance with its display string.
type FormattedWalletBalance struct {
	WalletBalance
	Formatted string `json:"formatted"`
}

// WalletRow is a display-ready balance line. Rows are identified by Currency.
type WalletRow struct {
	FormattedWalletBalance
	// USDValue is Amount multiplied by the reconciled price, zero if Priced is false.
	USDValue decimal.Decimal `json:"usd_value"`
	Priced   bool            `json:"priced"`
	IconURL  string          `json:"icon_url,omitempty"`
}
