package pricer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Feed fetches every source concurrently and concatenates their observations
// in source order. A failing source is logged and skipped; Feed fails only
// when every source fails.
type Feed struct {
	sources []Source
	logger  *zap.Logger
}

// NewFeed creates a feed over the sources.
func NewFeed(logger *zap.Logger, sources ...Source) *Feed {
	return &Feed{sources: sources, logger: logger}
}

// Name returns the names of the underlying sources.
func (f *Feed) Name() string {
	names := make([]string, len(f.sources))
	for i, s := range f.sources {
		names[i] = s.Name()
	}
	return "feed[" + strings.Join(names, ",") + "]"
}

// Observations implements Source.
func (f *Feed) Observations(ctx context.Context) ([]domain.PriceObservation, error) {
	if len(f.sources) == 0 {
		return []domain.PriceObservation{}, nil
	}

	results := make([][]domain.PriceObservation, len(f.sources))
	errs := make([]error, len(f.sources))

	var g errgroup.Group
	for i, s := range f.sources {
		g.Go(func() error {
			obs, err := s.Observations(ctx)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = obs
			return nil
		})
	}
	_ = g.Wait()

	var (
		out    []domain.PriceObservation
		failed []string
	)
	for i, s := range f.sources {
		if errs[i] != nil {
			f.logger.Warn("price source failed", zap.String("source", s.Name()), zap.Error(errs[i]))
			failed = append(failed, fmt.Sprintf("%s: %v", s.Name(), errs[i]))
			continue
		}
		f.logger.Debug("price source fetched", zap.String("source", s.Name()), zap.Int("observations", len(results[i])))
		out = append(out, results[i]...)
	}

	if len(failed) == len(f.sources) {
		return nil, errors.Errorf("all price sources failed: %s", strings.Join(failed, "; "))
	}
	if out == nil {
		out = []domain.PriceObservation{}
	}
	return out, nil
}
