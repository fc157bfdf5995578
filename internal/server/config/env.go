package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvAddress             = "SERVER_ADDRESS"
	EnvDatabaseDSN         = "DATABASE_DSN"
	EnvSecretKey           = "SECRET_KEY"
	EnvAccessTokenValidity = "ACCESS_TOKEN_VALIDITY"
	EnvAdminEmails         = "ADMIN_EMAILS"
	EnvLogLevel            = "LOG_LEVEL"
)

type lookupFunc func(key string) (string, bool)

// newEnv returns a lookup over the process environment backed by the
// variables in path. Process variables win; a missing file is not an error.
func newEnv(path string) (lookupFunc, error) {
	file, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		file = map[string]string{}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

func parseEnv(cfg *Config, env lookupFunc) error {
	if v, ok := env(EnvAddress); ok && v != "" {
		cfg.Address = v
	}
	if v, ok := env(EnvDatabaseDSN); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := env(EnvSecretKey); ok && v != "" {
		cfg.SecretKey = v
	}
	if v, ok := env(EnvAccessTokenValidity); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAccessTokenValidity, err)
		}
		cfg.AccessTokenValidity = d
	}
	if v, ok := env(EnvAdminEmails); ok {
		cfg.AdminEmails = splitList(v)
	}
	if v, ok := env(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return nil
}
