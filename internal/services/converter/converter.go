// Package converter computes cross-currency amounts from reconciled prices.
package converter

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// PriceLookup returns the reconciled record of a currency.
type PriceLookup interface {
	Get(currency string) (domain.ReconciledPriceRecord, bool)
}

// Convert returns req.Amount of req.From expressed in req.To:
//
//	output = amount * price(from) / price(to)
//
// rounded half away from zero to domain.ConversionPrecision places.
// A currency without a record yields a *domain.MissingPriceRecordError naming it.
func Convert(prices PriceLookup, req domain.ConversionRequest) (domain.ConversionResult, error) {
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" {
		return domain.ConversionResult{}, errors.Wrapf(domain.ErrMissingCurrency, "from %q, to %q", req.From, req.To)
	}
	if !req.Amount.IsPositive() {
		return domain.ConversionResult{}, errors.Wrapf(domain.ErrInvalidAmount, "got %s", req.Amount)
	}

	from, fromOK := prices.Get(req.From)
	to, toOK := prices.Get(req.To)
	if !fromOK || !toOK {
		missing := &domain.MissingPriceRecordError{}
		if !fromOK {
			missing.Currencies = append(missing.Currencies, req.From)
		}
		if !toOK && (req.To != req.From || fromOK) {
			missing.Currencies = append(missing.Currencies, req.To)
		}
		return domain.ConversionResult{}, missing
	}

	if !from.Price.IsPositive() {
		return domain.ConversionResult{}, errors.Wrapf(domain.ErrZeroPrice, "%s: %s", from.Currency, from.Price)
	}
	if !to.Price.IsPositive() {
		return domain.ConversionResult{}, errors.Wrapf(domain.ErrZeroPrice, "%s: %s", to.Currency, to.Price)
	}

	output := req.Amount.Mul(from.Price).DivRound(to.Price, domain.ConversionPrecision)

	return domain.ConversionResult{
		From:      req.From,
		To:        req.To,
		Input:     req.Amount,
		Output:    output,
		Rate:      from.Price.Div(to.Price),
		Formatted: output.StringFixed(domain.ConversionPrecision),
	}, nil
}
