package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/shopspring/decimal"
)

// Config holds runtime settings for the presale CLI.
//
// RequestTimeout bounds every backend call; zero means calls are only bounded
// by their context.
type Config struct {
	ServerURL        string
	DBPath           string
	TokenPrice       decimal.Decimal
	Rates            presale.RateTable
	DepositAddresses presale.AddressBook
	WalletRPCURL     string
	RequestTimeout   time.Duration
	LogLevel         string
}

// LoadDefaults populates c with the reference deployment's values.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8001"
	c.DBPath = "presale.db"
	c.TokenPrice = presale.DefaultTokenPrice
	c.Rates = presale.DefaultRates()
	c.DepositAddresses = presale.DefaultAddresses()
	c.WalletRPCURL = ""
	c.RequestTimeout = 0
	c.LogLevel = "warn"
}

// Validate checks the values a purchase depends on.
func (c *Config) Validate() error {
	if !c.TokenPrice.IsPositive() {
		return fmt.Errorf("token price must be positive, got %s", c.TokenPrice)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	for _, cur := range presale.Supported {
		if _, ok := c.Rates[cur]; !ok {
			continue
		}
		if _, err := c.DepositAddresses.Address(cur); err != nil {
			return fmt.Errorf("currency %s has a rate but no deposit address", cur)
		}
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (or CONFIG), then command-line flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
