// Package wallet tracks whether the user has connected an external wallet.
//
// The connection is in-memory only and one-way: once connected it stays
// connected until the process exits.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/logging"
)

// Provider asks an external wallet for account access. Implementations return
// errors matching common.ErrProviderUnavailable when the wallet cannot be
// reached and common.ErrConnectionRejected when the user or wallet says no.
type Provider interface {
	RequestAccess(ctx context.Context) ([]string, error)
}

type Connector struct {
	provider Provider
	log      logging.Logger

	mu        sync.RWMutex
	connected bool
	accounts  []string
}

// NewConnector returns a disconnected Connector. provider may be nil, in which
// case every Connect fails with ErrProviderUnavailable.
func NewConnector(provider Provider, log logging.Logger) *Connector {
	return &Connector{provider: provider, log: log}
}

// Connect requests account access from the provider. On failure the state is
// left as it was.
func (c *Connector) Connect(ctx context.Context) error {
	if c.Connected() {
		return nil
	}
	if c.provider == nil {
		return fmt.Errorf("%w: no wallet configured", common.ErrProviderUnavailable)
	}

	accounts, err := c.provider.RequestAccess(ctx)
	switch {
	case err == nil && len(accounts) == 0:
		err = fmt.Errorf("%w: wallet returned no accounts", common.ErrConnectionRejected)
	case err == nil:
	case errors.Is(err, common.ErrProviderUnavailable), errors.Is(err, common.ErrConnectionRejected):
	default:
		err = fmt.Errorf("%w: %w", common.ErrConnectionRejected, err)
	}
	if err != nil {
		c.log.Warn(ctx, "wallet connection failed", "error", err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.accounts = slices.Clone(accounts)
	c.mu.Unlock()

	c.log.Info(ctx, "wallet connected", "account", accounts[0])
	return nil
}

func (c *Connector) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Accounts returns a copy of the accounts granted at connection time.
func (c *Connector) Accounts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.accounts)
}
