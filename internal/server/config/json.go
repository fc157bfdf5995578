package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/presale/internal/flagx"
	"github.com/dmitrijs2005/presale/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations accept
// both strings such as "720h" and integer nanoseconds (see timex.Duration).
// Pointer fields tell an absent key from an empty one.
type JsonConfig struct {
	Address             *string         `json:"address"`
	DatabaseDSN         *string         `json:"database_dsn"`
	SecretKey           *string         `json:"secret_key"`
	AccessTokenValidity *timex.Duration `json:"access_token_validity"`
	AdminEmails         []string        `json:"admin_emails"`
	LogLevel            *string         `json:"log_level"`
	ShutdownTimeout     *timex.Duration `json:"shutdown_timeout"`
}

// parseJSON overlays cfg with the file named by -c/-config (or CONFIG).
// No file means no change.
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

	if jc.Address != nil {
		cfg.Address = *jc.Address
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.AccessTokenValidity != nil {
		cfg.AccessTokenValidity = jc.AccessTokenValidity.Duration
	}
	if jc.AdminEmails != nil {
		cfg.AdminEmails = jc.AdminEmails
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	return nil
}
