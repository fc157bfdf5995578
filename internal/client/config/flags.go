package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/presale/internal/flagx"
	"github.com/shopspring/decimal"
)

var knownFlags = []string{"-s", "-d", "-w", "-p", "-t", "-l"}

// parseFlags overlays cfg with the flags in args (args[0] is the program
// name). Flags owned by other layers are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("presale", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.WalletRPCURL, "w", cfg.WalletRPCURL, "wallet JSON-RPC endpoint")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	price := fs.String("p", cfg.TokenPrice.String(), "token unit price in USD")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("invalid token price %q: %w", *price, err)
	}
	cfg.TokenPrice = p
	return nil
}
