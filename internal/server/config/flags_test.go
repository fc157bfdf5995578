package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"server", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "60", "-m", "a@x.io,b@x.io", "-l", "debug"},
			mutate: func(c *Config) {
				c.Address = "127.0.0.1:9090"
				c.DatabaseDSN = "db"
				c.SecretKey = "secret"
				c.AccessTokenValidity = time.Hour
				c.AdminEmails = []string{"a@x.io", "b@x.io"}
				c.LogLevel = "debug"
			},
		},
		{
			name:   "unknown flags are ignored",
			args:   []string{"server", "-c", "cfg.json", "-x", "1", "-a", ":1"},
			mutate: func(c *Config) { c.Address = ":1" },
		},
		{
			name:   "no flags",
			args:   []string{"server"},
			mutate: func(*Config) {},
		},
		{
			name:    "bad int",
			args:    []string{"server", "-t", "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.mutate(want)
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFlags_SubMinuteValidityKeptWithoutFlag(t *testing.T) {
	cfg := defaults()
	cfg.AccessTokenValidity = 90 * time.Second
	require.NoError(t, parseFlags(cfg, []string{"server", "-a", ":2"}))
	require.Equal(t, 90*time.Second, cfg.AccessTokenValidity)
}
