package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/presale/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-s", "-t", "-m", "-l"}

// parseFlags overlays cfg with command-line flags (args[0] is the program
// name).
//
// Supported flags:
//
//	-a string   REST bind address (e.g. ":8001")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-m string   comma-separated admin emails
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	validity := fs.Int("t", int(cfg.AccessTokenValidity.Minutes()), "access token validity (in minutes)")
	admins := fs.String("m", strings.Join(cfg.AdminEmails, ","), "comma-separated admin emails")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// only explicit flags overwrite, so sub-minute values from other layers survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.AccessTokenValidity = time.Duration(*validity) * time.Minute
		case "m":
			cfg.AdminEmails = splitList(*admins)
		}
	})
	return nil
}
