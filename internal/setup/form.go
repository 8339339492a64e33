// Package setup asks for a conversion in an interactive terminal form.
package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/walletswap/config"
	"github.com/vadiminshakov/walletswap/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

const updatedLayout = "2006-01-02 15:04 MST"

// Converter converts against the current price book.
type Converter interface {
	Convert(req domain.ConversionRequest) (domain.ConversionResult, error)
}

// CurrencyOptions lists the reconciled currencies ordered by name.
// Each label carries the price and the time it was last updated.
func CurrencyOptions(book domain.PriceBook) []huh.Option[string] {
	records := book.Records()
	opts := make([]huh.Option[string], 0, len(records))
	for _, r := range records {
		opts = append(opts, huh.NewOption(currencyLabel(r), r.Currency))
	}
	return opts
}

func currencyLabel(r domain.ReconciledPriceRecord) string {
	return fmt.Sprintf("%-8s rate %s • last updated %s", r.Currency, r.Price.String(), r.UpdatedAt.UTC().Format(updatedLayout))
}

// AmountValidator checks the typed amount against the currencies picked so far.
func AmountValidator(from, to *string) func(string) error {
	return func(s string) error {
		_, err := config.ParseConversionRequest(*from, *to, s)
		return err
	}
}

// RunConversionForm asks for the currencies and the amount, then converts.
func RunConversionForm(book domain.PriceBook, conv Converter) (domain.ConversionResult, error) {
	if len(book) == 0 {
		return domain.ConversionResult{}, errors.New("no reconciled prices to convert between")
	}

	var from, to, amount string
	opts := CurrencyOptions(book)

	showStep := func(step string) {
		fmt.Print("\033[H\033[2J")
		fmt.Println(headerStyle.Render("WALLETSWAP"))
		fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render(fmt.Sprintf("%d currencies priced", len(opts))))
		fmt.Println(stepStyle.Render(step))
	}

	showStep("STEP 1: FROM")
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Amount to send").
				Options(opts...).
				Value(&from),
		),
	).Run()
	if err != nil {
		return domain.ConversionResult{}, err
	}

	showStep("STEP 2: TO")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Amount to receive").
				Options(opts...).
				Value(&to),
		),
	).Run()
	if err != nil {
		return domain.ConversionResult{}, err
	}

	showStep("STEP 3: AMOUNT")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Amount of %s", from)).
				Description(fmt.Sprintf("Converted into %s at the latest rates", to)).
				Value(&amount).
				Validate(AmountValidator(&from, &to)),
		),
	).Run()
	if err != nil {
		return domain.ConversionResult{}, err
	}

	req, err := config.ParseConversionRequest(from, to, amount)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	return conv.Convert(*req)
}
