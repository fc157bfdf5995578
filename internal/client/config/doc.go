// Package config loads runtime configuration for the presale CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config, or the CONFIG variable.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   backend base URL
//	-d string   path of the local SQLite database
//	-w string   wallet JSON-RPC endpoint
//	-p string   token unit price in USD
//	-t duration per-request timeout (0 disables)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Prices are strings so that no precision is lost; timeouts use timex.Duration:
//
//	{
//	  "server_url": "http://localhost:8001",
//	  "db_path": "presale.db",
//	  "token_price": "0.005",
//	  "rates": {"ETH": "3500", "BNB": "600", "BTC": "65000"},
//	  "deposit_addresses": {"BTC": "bc1q..."},
//	  "wallet_rpc_url": "http://127.0.0.1:1248",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
//
// Rates and deposit addresses given in JSON are merged over the defaults per
// currency.
package config
