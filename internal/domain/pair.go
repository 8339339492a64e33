// Package domain defines core data structures used throughout the wallet pipeline.
package domain

import (
	"fmt"
	"strings"
)

// Pair exchange trading pair.
type Pair struct {
	// From base currency symbol.
	From string
	// To quote currency symbol.
	To string
}

// String returns the string representation.
func (p *Pair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}

// Symbol returns the concatenated symbol representation.
func (p *Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.From, p.To)
}

// PairFromSymbol splits a concatenated exchange symbol (BTCUSDT) using the known quote asset.
// Returns false when the symbol is not quoted in the given asset.
func PairFromSymbol(symbol, quote string) (Pair, bool) {
	if quote == "" || len(symbol) <= len(quote) || !strings.HasSuffix(symbol, quote) {
		return Pair{}, false
	}
	return Pair{From: strings.TrimSuffix(symbol, quote), To: quote}, true
}
