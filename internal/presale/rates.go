package presale

import (
	"fmt"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/shopspring/decimal"
)

// RateTable maps a currency to its USD unit price. It is injected by
// configuration; the calculator never hardcodes prices.
type RateTable map[Currency]decimal.Decimal

// DefaultRates returns the mocked prices of the reference deployment.
func DefaultRates() RateTable {
	return RateTable{
		ETH: decimal.NewFromInt(3500),
		BNB: decimal.NewFromInt(600),
		BTC: decimal.NewFromInt(65000),
	}
}

// DefaultTokenPrice is the USD price of one presale token in the reference
// deployment.
var DefaultTokenPrice = decimal.RequireFromString("0.005")

// USDPerUnit returns the rate for c or ErrUnsupportedCurrency.
func (r RateTable) USDPerUnit(c Currency) (decimal.Decimal, error) {
	rate, ok := r[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrUnsupportedCurrency, string(c))
	}
	return rate, nil
}

// ParseRates converts a ticker→price map as found in config files. Every
// ticker must be supported and every price strictly positive.
func ParseRates(raw map[string]string) (RateTable, error) {
	rates := make(RateTable, len(raw))
	for ticker, price := range raw {
		c, err := ParseCurrency(ticker)
		if err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("rate for %s: %w", c, err)
		}
		if !d.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive: %w", c, common.ErrorValidation)
		}
		rates[c] = d
	}
	return rates, nil
}
