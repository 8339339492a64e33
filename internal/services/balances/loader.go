package balances

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/walletswap/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a list of wallet balances from a YAML (or JSON) file.
func LoadFile(path string) ([]domain.WalletBalance, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read balances file")
	}
	return Parse(f)
}

// Parse decodes a YAML (or JSON) list of wallet balances.
func Parse(data []byte) ([]domain.WalletBalance, error) {
	var raw []struct {
		Currency   string `yaml:"currency"`
		Blockchain string `yaml:"blockchain"`
		Amount     string `yaml:"amount"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode balances")
	}

	out := make([]domain.WalletBalance, 0, len(raw))
	for i, r := range raw {
		if r.Currency == "" {
			return nil, errors.Errorf("balance #%d: currency is required", i)
		}
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "balance #%d (%s): incorrect amount %q", i, r.Currency, r.Amount)
		}
		out = append(out, domain.WalletBalance{
			Currency:   r.Currency,
			Blockchain: r.Blockchain,
			Amount:     amount,
		})
	}
	return out, nil
}
