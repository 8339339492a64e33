package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidObservation marks a price observation with a non-positive price.
	ErrInvalidObservation = errors.New("invalid price observation")
	// ErrMissingPriceRecord is matched by MissingPriceRecordError.
	ErrMissingPriceRecord = errors.New("missing price record")
	// ErrInvalidAmount marks a conversion request with a non-positive amount.
	ErrInvalidAmount = errors.New("conversion amount must be greater than zero")
	// ErrMissingCurrency marks a conversion request without a source or target currency.
	ErrMissingCurrency = errors.New("conversion currency is required")
	// ErrZeroPrice marks a price record with a non-positive price.
	ErrZeroPrice = errors.New("price record has non-positive price")
)

// MissingPriceRecordError names the currencies without a reconciled record.
type MissingPriceRecordError struct {
	Currencies []string
}

func (e *MissingPriceRecordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingPriceRecord, strings.Join(e.Currencies, ", "))
}

// Is lets errors.Is match ErrMissingPriceRecord.
func (e *MissingPriceRecordError) Is(target error) bool {
	return target == ErrMissingPriceRecord
}
