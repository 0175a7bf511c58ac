package domain

// Currency is one of the closed set of currency codes the ledger accepts.
type Currency string

const (
	ARS Currency = "ARS"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// SupportedCurrencies lists every accepted code, in the order they are shown.
var SupportedCurrencies = []Currency{ARS, USD, EUR}

// IsValid reports whether c is one of the supported currency codes.
func (c Currency) IsValid() bool {
	for _, cur := range SupportedCurrencies {
		if c == cur {
			return true
		}
	}
	return false
}
