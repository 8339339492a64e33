// Package web exposes the wallet pipeline over HTTP: JSON endpoints and an SSE snapshot stream.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/walletswap/internal/domain"
	"github.com/vadiminshakov/walletswap/internal/events"
)

type walletService interface {
	Book() domain.PriceBook
	Rows() []domain.WalletRow
	Convert(req domain.ConversionRequest) (domain.ConversionResult, error)
}

// Server exposes HTTP endpoints for prices, balances, conversions and a snapshot stream.
type Server struct {
	Addr        string
	Wallet      walletService
	Broadcaster *events.SnapshotBroadcaster
	Logger      *zap.Logger
}

// NewServer creates a new web server instance.
func NewServer(addr string, wallet walletService, broadcaster *events.SnapshotBroadcaster, logger *zap.Logger) *Server {
	return &Server{Addr: addr, Wallet: wallet, Broadcaster: broadcaster, Logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/prices", s.handlePrices)
	r.Get("/balances", s.handleBalances)
	r.Get("/convert", s.handleConvert)
	r.Get("/snapshots/stream", s.handleSnapshotStream)
	return r
}

// Start runs the HTTP server (blocking) and shuts it down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.Logger.Info("http server started", zap.String("addr", s.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Wallet.Book().Records())
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Wallet.Rows())
}

type conversionResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Rate   string `json:"rate"`
}

type errorResponse struct {
	Error      string   `json:"error"`
	Currencies []string `json:"currencies,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("incorrect amount %q", q.Get("amount"))})
		return
	}

	res, err := s.Wallet.Convert(domain.ConversionRequest{From: q.Get("from"), To: q.Get("to"), Amount: amount})
	if err != nil {
		var missing *domain.MissingPriceRecordError
		switch {
		case errors.As(err, &missing):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Currencies: missing.Currencies})
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrMissingCurrency):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, conversionResponse{
		From:   res.From,
		To:     res.To,
		Input:  res.Input.String(),
		Output: res.Formatted,
		Rate:   res.Rate.String(),
	})
}

func (s *Server) handleSnapshotStream(w http.ResponseWriter, r *http.Request) {
	if s.Broadcaster == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "snapshot stream not available")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := s.Broadcaster.Subscribe()
	defer s.Broadcaster.Unsubscribe(sub)

	// send a comment heartbeat every 30s so proxies keep connection
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		case snapshot, ok := <-sub:
			if !ok {
				return
			}
			payload, err := json.Marshal(snapshot)
			if err != nil {
				s.Logger.Error("encode snapshot", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: snapshot\n")
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
