package internal

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/walletswap/config"
	"github.com/vadiminshakov/walletswap/internal/domain"
	"github.com/vadiminshakov/walletswap/internal/events"
	"github.com/vadiminshakov/walletswap/internal/services/balances"
	"github.com/vadiminshakov/walletswap/internal/services/icons"
	"github.com/vadiminshakov/walletswap/internal/services/priority"
	"github.com/vadiminshakov/walletswap/internal/services/reconciler"
	"github.com/vadiminshakov/walletswap/internal/services/wallet"
	"github.com/vadiminshakov/walletswap/internal/web"
)

// Report is the outcome of one run.
type Report struct {
	Snapshot domain.WalletSnapshot
	// Conversion is nil when none was requested or it failed.
	Conversion *domain.ConversionResult
	// ConversionErr is the conversion failure, shown to the user rather than aborting the run.
	ConversionErr error
}

// WalletApp wires the configuration into the wallet service.
type WalletApp struct {
	config      config.Config
	logger      *zap.Logger
	service     *wallet.Service
	broadcaster *events.SnapshotBroadcaster
}

// NewWalletApp constructs the pipeline components and price sources from the configuration.
func NewWalletApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*WalletApp, error) {
	classifier, err := priority.NewClassifier(cfg.Priorities, cfg.UnknownPriority)
	if err != nil {
		return nil, errors.Wrap(err, "create priority classifier")
	}

	feed, err := newFeed(ctx, cfg.Sources, logger)
	if err != nil {
		return nil, err
	}

	resolver := icons.NewResolver(cfg.IconBaseURL, cfg.IconExceptions)
	broadcaster := events.NewSnapshotBroadcaster(16)

	svc := wallet.NewService(
		logger,
		feed,
		reconciler.NewReconciler(resolver),
		balances.NewSelector(classifier),
		resolver,
		broadcaster,
	)

	return &WalletApp{config: cfg, logger: logger, service: svc, broadcaster: broadcaster}, nil
}

// Service returns the underlying wallet service.
func (a *WalletApp) Service() *wallet.Service {
	return a.service
}

// Broadcaster returns the snapshot broadcaster fed by the service.
func (a *WalletApp) Broadcaster() *events.SnapshotBroadcaster {
	return a.broadcaster
}

// Run loads balances, refreshes prices and performs the configured conversion.
func (a *WalletApp) Run(ctx context.Context) (Report, error) {
	if a.config.BalancesPath != "" {
		bs, err := balances.LoadFile(a.config.BalancesPath)
		if err != nil {
			return Report{}, err
		}
		a.service.SetBalances(bs)
		a.logger.Info("balances loaded", zap.String("path", a.config.BalancesPath), zap.Int("balances", len(bs)))
	}

	snapshot, err := a.service.Refresh(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{Snapshot: snapshot}
	if a.config.Conversion != nil {
		res, err := a.service.Convert(*a.config.Conversion)
		if err != nil {
			report.ConversionErr = err
		} else {
			report.Conversion = &res
		}
	}

	return report, nil
}

// Serve runs the HTTP API and refreshes prices every RefreshInterval until ctx is done.
// A failed refresh is logged and the previous prices stay in place.
func (a *WalletApp) Serve(ctx context.Context) error {
	if _, err := a.Run(ctx); err != nil {
		return err
	}

	server := web.NewServer(a.config.ServeAddr, a.service, a.broadcaster, a.logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx)
	})
	g.Go(func() error {
		a.refreshLoop(ctx, a.config.RefreshInterval)
		return nil
	})

	return g.Wait()
}

func (a *WalletApp) refreshLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.service.Refresh(ctx); err != nil {
				a.logger.Error("price refresh failed", zap.Error(err))
			}
		}
	}
}
