// Package balances filters, orders and formats wallet balances for display.
package balances

import (
	"cmp"
	"slices"

	"github.com/vadiminshakov/walletswap/internal/domain"
)

// Classifier ranks blockchain networks.
type Classifier interface {
	PriorityOf(blockchain string) int
	Unknown() int
}

// Selector keeps the balances worth displaying and orders them by network priority.
type Selector struct {
	classifier Classifier
}

// NewSelector creates a selector backed by the classifier.
func NewSelector(classifier Classifier) *Selector {
	return &Selector{classifier: classifier}
}

// Keep reports whether a balance is retained: any positive amount, or a balance on a
// recognized network. Non-positive balances on unknown networks are noise.
func (s *Selector) Keep(b domain.WalletBalance) bool {
	return b.Amount.IsPositive() || s.classifier.PriorityOf(b.Blockchain) > s.classifier.Unknown()
}

// Select returns the retained balances ordered by ascending priority.
// Balances with equal priority keep their input order. The input is not modified.
func (s *Selector) Select(balances []domain.WalletBalance) []domain.WalletBalance {
	type ranked struct {
		balance  domain.WalletBalance
		priority int
	}

	kept := make([]ranked, 0, len(balances))
	for _, b := range balances {
		if s.Keep(b) {
			kept = append(kept, ranked{balance: b, priority: s.classifier.PriorityOf(b.Blockchain)})
		}
	}

	slices.SortStableFunc(kept, func(a, b ranked) int {
		return cmp.Compare(a.priority, b.priority)
	})

	out := make([]domain.WalletBalance, len(kept))
	for i, k := range kept {
		out[i] = k.balance
	}
	return out
}
