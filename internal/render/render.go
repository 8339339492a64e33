// Package render draws wallet snapshots and conversion results for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#E5484D", Dark: "#FF6369"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 1).
			Bold(true).
			MarginBottom(1)

	mutedStyle   = lipgloss.NewStyle().Foreground(subtle)
	successStyle = lipgloss.NewStyle().Foreground(special).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

// Rows renders the balance rows in their given order.
func Rows(rows []domain.WalletRow) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("BALANCES"))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("no balances to show"))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-10s %-12s %14s %18s\n", "CURRENCY", "NETWORK", "AMOUNT", "USD VALUE")
	for _, r := range rows {
		usd := mutedStyle.Render(fmt.Sprintf("%18s", "n/a"))
		if r.Priced {
			usd = fmt.Sprintf("%18s", r.USDValue.StringFixed(2))
		}
		fmt.Fprintf(&b, "%-10s %-12s %14s %s\n", r.Currency, r.Blockchain, r.Formatted, usd)
	}
	return b.String()
}

// Prices renders the reconciled price book.
func Prices(records []domain.ReconciledPriceRecord) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("PRICES"))
	b.WriteString("\n")

	for _, r := range records {
		fmt.Fprintf(&b, "%-10s %20s  %s\n", r.Currency, r.Price.String(),
			mutedStyle.Render("updated "+r.UpdatedAt.Format("2006-01-02 15:04:05")))
	}
	return b.String()
}

// Conversion renders a conversion outcome, success or failure.
func Conversion(res *domain.ConversionResult, err error) string {
	if err != nil {
		return failureStyle.Render("Convert asset unsuccessfully: "+err.Error()) + "\n"
	}
	if res == nil {
		return ""
	}
	return successStyle.Render(fmt.Sprintf("Converted %s %s = %s %s", res.Input.String(), res.From, res.Formatted, res.To)) + "\n"
}
