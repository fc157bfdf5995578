package presale

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/shopspring/decimal"
)

// Quote is the USD value and token quantity shown to the user before a
// purchase is submitted. It is never persisted.
type Quote struct {
	USDValue      decimal.Decimal
	TokenQuantity decimal.Decimal
}

// TokenPrecision is the number of fractional digits kept in a token quantity,
// matching the 18 decimals of an ERC-20 token.
const TokenPrecision int32 = 18

// ZeroQuote is returned for blank or non-positive input.
var ZeroQuote = Quote{USDValue: decimal.Zero, TokenQuantity: decimal.Zero}

// IsZero reports whether q carries no value.
func (q Quote) IsZero() bool {
	return q.USDValue.IsZero() && q.TokenQuantity.IsZero()
}

// ParseAmount parses user-entered text as a crypto amount. ok is false when the
// text is blank, not a finite number, or not strictly positive.
func ParseAmount(text string) (amount decimal.Decimal, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// QuoteText quotes a raw form value. Blank or invalid amounts produce
// ZeroQuote without error; the amount is checked before the currency, so an
// empty form never fails.
func QuoteText(c Currency, amountText string, rates RateTable, tokenUnitPrice decimal.Decimal) (Quote, error) {
	amount, ok := ParseAmount(amountText)
	if !ok {
		return ZeroQuote, nil
	}
	return QuoteAmount(c, amount, rates, tokenUnitPrice)
}

// QuoteAmount computes
//
//	usdValue      = amount × rates[c]
//	tokenQuantity = usdValue / tokenUnitPrice
//
// The USD value is exact. The token quantity is rounded half up to
// TokenPrecision fractional digits. A non-positive amount yields ZeroQuote; an
// unknown currency yields ErrUnsupportedCurrency.
func QuoteAmount(c Currency, amount decimal.Decimal, rates RateTable, tokenUnitPrice decimal.Decimal) (Quote, error) {
	if !amount.IsPositive() {
		return ZeroQuote, nil
	}
	rate, err := rates.USDPerUnit(c)
	if err != nil {
		return ZeroQuote, err
	}
	if !tokenUnitPrice.IsPositive() {
		return ZeroQuote, fmt.Errorf("token price must be positive: %w", common.ErrorValidation)
	}

	usd := amount.Mul(rate)
	return Quote{USDValue: usd, TokenQuantity: usd.DivRound(tokenUnitPrice, TokenPrecision)}, nil
}
