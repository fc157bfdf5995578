package presale

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/presale/internal/common"
)

// Currency is the ticker of a crypto asset accepted by the presale.
type Currency string

const (
	ETH Currency = "ETH"
	BNB Currency = "BNB"
	BTC Currency = "BTC"
)

// Supported lists accepted currencies in display order.
var Supported = []Currency{ETH, BNB, BTC}

// ParseCurrency normalises s (case and surrounding blanks) and checks it is
// one of the Supported tickers.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Supported {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedCurrency, s)
}

func (c Currency) String() string { return string(c) }
