// Package wallet keeps the latest reconciled prices and balances and recomputes
// the display rows whenever either changes.
package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/internal/domain"
	"github.com/vadiminshakov/walletswap/internal/events"
	"github.com/vadiminshakov/walletswap/internal/services/balances"
	"github.com/vadiminshakov/walletswap/internal/services/converter"
	"github.com/vadiminshakov/walletswap/internal/services/pricer"
	"github.com/vadiminshakov/walletswap/internal/services/reconciler"
	"go.uber.org/zap"
)

// IconLocator returns the icon location of a currency.
type IconLocator interface {
	IconURL(currency string) string
}

// Service is the stateful shell around the pure pipeline. Safe for concurrent use.
type Service struct {
	logger      *zap.Logger
	source      pricer.Source
	reconciler  *reconciler.Reconciler
	selector    *balances.Selector
	icons       IconLocator
	broadcaster *events.SnapshotBroadcaster

	mu       sync.RWMutex
	book     domain.PriceBook
	balances []domain.WalletBalance
	rows     []domain.WalletRow
	now      func() time.Time
}

// NewService creates a service. broadcaster may be nil.
func NewService(
	logger *zap.Logger,
	source pricer.Source,
	rec *reconciler.Reconciler,
	selector *balances.Selector,
	icons IconLocator,
	broadcaster *events.SnapshotBroadcaster,
) *Service {
	return &Service{
		logger:      logger,
		source:      source,
		reconciler:  rec,
		selector:    selector,
		icons:       icons,
		broadcaster: broadcaster,
		book:        domain.PriceBook{},
		rows:        []domain.WalletRow{},
		now:         time.Now,
	}
}

// Refresh pulls the price source, reconciles it and recomputes the rows.
// The previous book is kept when the source fails.
func (s *Service) Refresh(ctx context.Context) (domain.WalletSnapshot, error) {
	refreshID := uuid.NewString()

	observations, err := s.source.Observations(ctx)
	if err != nil {
		return domain.WalletSnapshot{}, errors.Wrapf(err, "refresh %s", refreshID)
	}

	book, stats := s.reconciler.ReconcileWithStats(observations)
	s.logger.Info("prices reconciled",
		zap.String("refresh_id", refreshID),
		zap.String("source", s.source.Name()),
		zap.Int("observed", stats.Observed),
		zap.Int("invalid", stats.Invalid),
		zap.Int("superseded", stats.Superseded),
		zap.Int("currencies", stats.Currencies),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.book = book
	s.rows = s.buildRows(s.balances, book)
	snapshot := s.snapshotLocked(refreshID)
	s.publish(snapshot)

	return snapshot, nil
}

// SetBalances replaces the wallet balances and recomputes the rows.
func (s *Service) SetBalances(bs []domain.WalletBalance) domain.WalletSnapshot {
	owned := make([]domain.WalletBalance, len(bs))
	copy(owned, bs)

	s.mu.Lock()
	s.balances = owned
	s.rows = s.buildRows(owned, s.book)
	snapshot := s.snapshotLocked(uuid.NewString())
	s.publish(snapshot)
	s.mu.Unlock()

	s.logger.Debug("balances updated", zap.Int("balances", len(owned)), zap.Int("rows", len(snapshot.Rows)))
	return snapshot
}

// Book returns a copy of the current price book.
func (s *Service) Book() domain.PriceBook {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.PriceBook, len(s.book))
	for c, r := range s.book {
		out[c] = r
	}
	return out
}

// Rows returns the current display rows.
func (s *Service) Rows() []domain.WalletRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WalletRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Convert converts against the current price book.
func (s *Service) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	s.mu.RLock()
	book := s.book
	s.mu.RUnlock()

	res, err := converter.Convert(book, req)
	if err != nil {
		s.logger.Warn("conversion failed",
			zap.String("from", req.From),
			zap.String("to", req.To),
			zap.String("amount", req.Amount.String()),
			zap.Error(err),
		)
		return domain.ConversionResult{}, err
	}

	s.logger.Info("conversion done",
		zap.String("from", res.From),
		zap.String("to", res.To),
		zap.String("input", res.Input.String()),
		zap.String("output", res.Formatted),
	)
	return res, nil
}

func (s *Service) buildRows(bs []domain.WalletBalance, book domain.PriceBook) []domain.WalletRow {
	selected := s.selector.Select(bs)
	return balances.Rows(balances.FormatAll(selected), book, s.icons)
}

func (s *Service) snapshotLocked(refreshID string) domain.WalletSnapshot {
	rows := make([]domain.WalletRow, len(s.rows))
	copy(rows, s.rows)
	return domain.WalletSnapshot{
		RefreshID: refreshID,
		Timestamp: s.now().UTC(),
		Prices:    s.book.Records(),
		Rows:      rows,
	}
}

// publish must be called with mu held so subscribers see snapshots in the order they were built.
// Publish never blocks, it drops snapshots for slow subscribers.
func (s *Service) publish(snapshot domain.WalletSnapshot) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Publish(snapshot)
}
