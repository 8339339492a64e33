package converter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

func book(prices map[string]string) domain.PriceBook {
	b := make(domain.PriceBook, len(prices))
	for c, p := range prices {
		b[c] = domain.ReconciledPriceRecord{Currency: c, Price: decimal.RequireFromString(p), IconKey: c}
	}
	return b
}

func req(from, to, amount string) domain.ConversionRequest {
	return domain.ConversionRequest{From: from, To: to, Amount: decimal.RequireFromString(amount)}
}

func TestConvert_USDToETH(t *testing.T) {
	prices := book(map[string]string{"USD": "1", "ETH": "2000"})

	res, err := Convert(prices, req("USD", "ETH", "4000"))
	require.NoError(t, err)
	assert.True(t, res.Output.Equal(decimal.NewFromInt(2)), "got %s", res.Output)
	assert.Equal(t, "2.000000", res.Formatted)
	assert.Equal(t, "USD", res.From)
	assert.Equal(t, "ETH", res.To)
	assert.True(t, res.Rate.Equal(decimal.RequireFromString("0.0005")))
}

func TestConvert_Rounding(t *testing.T) {
	prices := book(map[string]string{
		"USD":  "1",
		"ATOM": "3",
		"HALF": "0.0000025",
		"NEG":  "2",
	})

	tests := []struct {
		name     string
		request  domain.ConversionRequest
		expected string
	}{
		{name: "repeating fraction", request: req("USD", "ATOM", "1"), expected: "0.333333"},
		{name: "repeating fraction rounds up", request: req("USD", "ATOM", "2"), expected: "0.666667"},
		{name: "half rounds away from zero", request: req("HALF", "USD", "1"), expected: "0.000003"},
		{name: "integral result", request: req("ATOM", "USD", "7"), expected: "21.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(prices, tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Formatted)
			assert.True(t, res.Output.Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestConvert_SameCurrency(t *testing.T) {
	prices := book(map[string]string{"OSMO": "0.377"})

	res, err := Convert(prices, req("OSMO", "OSMO", "123.4567891"))
	require.NoError(t, err)
	assert.Equal(t, "123.456789", res.Formatted)
}

func TestConvert_ScaleLinear(t *testing.T) {
	prices := book(map[string]string{"BLUR": "0.20811525423728813", "ETH": "1645.9337373737374"})
	// each side is rounded independently, allow two units in the last place
	tolerance := decimal.New(2, -domain.ConversionPrecision)

	single, err := Convert(prices, req("BLUR", "ETH", "1500"))
	require.NoError(t, err)
	double, err := Convert(prices, req("BLUR", "ETH", "3000"))
	require.NoError(t, err)

	diff := double.Output.Sub(single.Output.Mul(decimal.NewFromInt(2))).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "diff %s", diff)
}

func TestConvert_MissingPriceRecord(t *testing.T) {
	prices := book(map[string]string{"USD": "1"})

	tests := []struct {
		name    string
		request domain.ConversionRequest
		missing []string
	}{
		{name: "missing target", request: req("USD", "ETH", "1"), missing: []string{"ETH"}},
		{name: "missing source", request: req("BTC", "USD", "1"), missing: []string{"BTC"}},
		{name: "both missing", request: req("BTC", "ETH", "1"), missing: []string{"BTC", "ETH"}},
		{name: "same missing currency named once", request: req("BTC", "BTC", "1"), missing: []string{"BTC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(prices, tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingPriceRecord)

			var missing *domain.MissingPriceRecordError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.missing, missing.Currencies)
		})
	}
}

func TestConvert_EmptyBook(t *testing.T) {
	_, err := Convert(domain.PriceBook{}, req("USD", "ETH", "1"))
	assert.ErrorIs(t, err, domain.ErrMissingPriceRecord)
}

func TestConvert_InvalidRequest(t *testing.T) {
	prices := book(map[string]string{"USD": "1", "ETH": "2000"})

	for _, amount := range []string{"0", "-1"} {
		_, err := Convert(prices, req("USD", "ETH", amount))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}

	_, err := Convert(prices, req("", "ETH", "1"))
	assert.ErrorIs(t, err, domain.ErrMissingCurrency)
	assert.NotErrorIs(t, err, domain.ErrInvalidAmount)
	assert.EqualError(t, err, `from "", to "ETH": conversion currency is required`)

	_, err = Convert(prices, req("USD", " ", "1"))
	assert.ErrorIs(t, err, domain.ErrMissingCurrency)
}

func TestConvert_NonPositivePriceRecord(t *testing.T) {
	prices := domain.PriceBook{
		"USD": {Currency: "USD", Price: decimal.NewFromInt(1)},
		"BAD": {Currency: "BAD", Price: decimal.Zero},
	}

	_, err := Convert(prices, req("USD", "BAD", "1"))
	assert.ErrorIs(t, err, domain.ErrZeroPrice)

	_, err = Convert(prices, req("BAD", "USD", "1"))
	assert.ErrorIs(t, err, domain.ErrZeroPrice)
}
