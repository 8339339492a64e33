// Command walletswap reconciles a price feed, shows wallet balances ordered by
// network priority and converts an amount between two currencies.
//
// Usage:
//
//	walletswap --config walletswap.yaml
//	walletswap --prices prices.json --balances balances.yaml --from USD --to ETH --amount 4000
//	walletswap --config walletswap.yaml --serve :8080 --refresh-interval 1m
//	walletswap --config walletswap.yaml --interactive
//
// Optional environment variables:
//
//	BINANCE_API_KEY, BINANCE_API_SECRET
//	BYBIT_API_KEY, BYBIT_API_SECRET
//	HYPERLIQUID_PRIVATE_KEY
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vadiminshakov/walletswap/config"
	"github.com/vadiminshakov/walletswap/internal"
	"github.com/vadiminshakov/walletswap/internal/render"
	"github.com/vadiminshakov/walletswap/internal/setup"
	"go.uber.org/zap"
)

const fetchTimeout = 30 * time.Second

func main() {
	conf, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := internal.NewWalletApp(ctx, conf, logger)
	if err != nil {
		logger.Fatal("failed to create wallet app", zap.Error(err))
	}

	if conf.ServeAddr != "" {
		if err := app.Serve(ctx); err != nil {
			logger.Fatal("serve failed", zap.Error(err))
		}
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	report, err := app.Run(runCtx)
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}

	if conf.Interactive {
		res, err := setup.RunConversionForm(app.Service().Book(), app.Service())
		report.Conversion, report.ConversionErr = nil, err
		if err == nil {
			report.Conversion = &res
		}
	}

	fmt.Println(render.Prices(report.Snapshot.Prices))
	fmt.Println(render.Rows(report.Snapshot.Rows))
	if out := render.Conversion(report.Conversion, report.ConversionErr); out != "" {
		fmt.Print(out)
	}
	if report.ConversionErr != nil {
		os.Exit(1)
	}
}
