package balances

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// Format renders the amount as a whole number, rounding half away from zero.
// The amount itself is left untouched.
func Format(b domain.WalletBalance) domain.FormattedWalletBalance {
	return domain.FormattedWalletBalance{
		WalletBalance: b,
		Formatted:     b.Amount.StringFixed(0),
	}
}

// FormatAll formats every balance, preserving order.
func FormatAll(balances []domain.WalletBalance) []domain.FormattedWalletBalance {
	out := make([]domain.FormattedWalletBalance, len(balances))
	for i, b := range balances {
		out[i] = Format(b)
	}
	return out
}

// PriceLookup returns the reconciled record of a currency.
type PriceLookup interface {
	Get(currency string) (domain.ReconciledPriceRecord, bool)
}

// IconLocator returns the icon location of a currency.
type IconLocator interface {
	IconURL(currency string) string
}

// Rows builds display rows with the USD value of each balance.
// Balances whose currency has no price are marked unpriced with a zero value.
func Rows(balances []domain.FormattedWalletBalance, prices PriceLookup, icons IconLocator) []domain.WalletRow {
	rows := make([]domain.WalletRow, len(balances))
	for i, b := range balances {
		row := domain.WalletRow{FormattedWalletBalance: b, USDValue: decimal.Zero}
		if rec, ok := prices.Get(b.Currency); ok {
			row.USDValue = rec.Price.Mul(b.Amount)
			row.Priced = true
		}
		if icons != nil {
			row.IconURL = icons.IconURL(b.Currency)
		}
		rows[i] = row
	}
	return rows
}
