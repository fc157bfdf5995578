package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/presale/internal/flagx"
	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/dmitrijs2005/presale/internal/timex"
	"github.com/shopspring/decimal"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell an
// absent key from an empty one.
type JsonConfig struct {
	ServerURL        *string           `json:"server_url"`
	DBPath           *string           `json:"db_path"`
	TokenPrice       *decimal.Decimal  `json:"token_price"`
	Rates            map[string]string `json:"rates"`
	DepositAddresses map[string]string `json:"deposit_addresses"`
	WalletRPCURL     *string           `json:"wallet_rpc_url"`
	RequestTimeout   *timex.Duration   `json:"request_timeout"`
	LogLevel         *string           `json:"log_level"`
}

// parseJSON overlays cfg with the file named on the command line. No file
// means no change.
func parseJSON(cfg *Config, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.TokenPrice != nil {
		cfg.TokenPrice = *jc.TokenPrice
	}
	if jc.WalletRPCURL != nil {
		cfg.WalletRPCURL = *jc.WalletRPCURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}

	if len(jc.Rates) > 0 {
		rates, err := presale.ParseRates(jc.Rates)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		if cfg.Rates == nil {
			cfg.Rates = presale.RateTable{}
		}
		for c, r := range rates {
			cfg.Rates[c] = r
		}
	}

	for ticker, addr := range jc.DepositAddresses {
		c, err := presale.ParseCurrency(ticker)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		if cfg.DepositAddresses == nil {
			cfg.DepositAddresses = presale.AddressBook{}
		}
		cfg.DepositAddresses[c] = addr
	}
	return nil
}
