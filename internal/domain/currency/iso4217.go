// Package currency maps ISO 4217 alpha currency codes to the numeric
// codes the processor requires.
package currency

import (
	"fmt"
	"strings"

	"ecomm-gateway/internal/controller/apperror"
)

// numericByAlpha is the ISO 4217 alpha3 -> numeric table for the
// currencies the gateway accepts.
var numericByAlpha = map[string]string{
	"AED": "784",
	"AMD": "051",
	"AUD": "036",
	"AZN": "944",
	"BGN": "975",
	"BRL": "986",
	"BYN": "933",
	"CAD": "124",
	"CHF": "756",
	"CNY": "156",
	"CZK": "203",
	"DKK": "208",
	"EUR": "978",
	"GBP": "826",
	"GEL": "981",
	"HKD": "344",
	"HUF": "348",
	"ILS": "376",
	"INR": "356",
	"JPY": "392",
	"KRW": "410",
	"KZT": "398",
	"MDL": "498",
	"MXN": "484",
	"NOK": "578",
	"NZD": "554",
	"PLN": "985",
	"RON": "946",
	"RSD": "941",
	"RUB": "643",
	"SEK": "752",
	"SGD": "702",
	"TRY": "949",
	"UAH": "980",
	"USD": "840",
	"UZS": "860",
	"ZAR": "710",
}

// Lookup resolves alpha codes from the embedded ISO 4217 table.
type Lookup struct{}

func NewLookup() *Lookup {
	return &Lookup{}
}

// NumericCode returns the ISO 4217 numeric code for an alpha3 code,
// e.g. USD -> 840. The lookup is case-insensitive and deterministic.
func (l *Lookup) NumericCode(alpha string) (string, error) {
	numeric, ok := numericByAlpha[strings.ToUpper(alpha)]
	if !ok {
		return "", fmt.Errorf("%q: %w", alpha, apperror.ErrUnknownCurrency)
	}
	return numeric, nil
}
