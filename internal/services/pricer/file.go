package pricer

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

// FileSource reads observations from a JSON array of {currency, date, price} objects.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name.
func (p *FileSource) Name() string {
	return "file:" + p.path
}

// Observations reads and decodes the file.
func (p *FileSource) Observations(ctx context.Context) ([]domain.PriceObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, errors.Wrap(err, "read prices file")
	}

	return DecodeObservations(data)
}

// DecodeObservations decodes a JSON price feed. Prices may be numbers or strings.
func DecodeObservations(data []byte) ([]domain.PriceObservation, error) {
	var out []domain.PriceObservation
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "decode price feed")
	}
	if out == nil {
		out = []domain.PriceObservation{}
	}
	return out, nil
}
