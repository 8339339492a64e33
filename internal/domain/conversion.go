package domain

import "github.com/shopspring/decimal"

// ConversionPrecision is the number of decimal places kept in a conversion output.
const ConversionPrecision int32 = 6

// ConversionRequest asks to convert Amount of From into To.
type ConversionRequest struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// ConversionResult is a successful conversion.
type ConversionResult struct {
	From   string
	To     string
	Input  decimal.Decimal
	Output decimal.Decimal
	// Rate is the price of one unit of From expressed in To, unrounded.
	Rate decimal.Decimal
	// Formatted is Output with exactly ConversionPrecision fractional digits.
	Formatted string
}
