package presale

import (
	"fmt"

	"github.com/dmitrijs2005/presale/internal/common"
)

// AddressBook holds the static deposit address for each currency.
type AddressBook map[Currency]string

// DefaultAddresses returns the deposit addresses of the reference deployment.
func DefaultAddresses() AddressBook {
	return AddressBook{
		ETH: "0x6d17BBD5De076A5837A537caE1Ae49B07575427E",
		BNB: "0x6d17BBD5De076A5837A537caE1Ae49B07575427E",
		BTC: "bc1qf3gq85j3fpd5wvqjmzyeqw2auvg2uelvwg9v24",
	}
}

// Address returns the deposit address for c.
func (b AddressBook) Address(c Currency) (string, error) {
	addr, ok := b[c]
	if !ok || addr == "" {
		return "", fmt.Errorf("%w: no deposit address for %q", common.ErrUnsupportedCurrency, string(c))
	}
	return addr, nil
}
