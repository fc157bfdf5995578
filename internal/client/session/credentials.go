package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/presale/internal/common"
)

// CredentialStore is the durable slot holding the bearer credential between
// runs. Load returns "" when nothing is stored.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MetadataCredentials keeps the credential in the local metadata table.
type MetadataCredentials struct {
	repo metadata.Repository
}

func NewMetadataCredentials(repo metadata.Repository) *MetadataCredentials {
	return &MetadataCredentials{repo: repo}
}

func (c *MetadataCredentials) Load(ctx context.Context) (string, error) {
	e, err := c.repo.Get(ctx, common.AccessTokenMetadataKey)
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	if e == nil {
		return "", nil
	}
	return string(e.Value), nil
}

func (c *MetadataCredentials) Save(ctx context.Context, token string) error {
	if err := c.repo.Set(ctx, common.AccessTokenMetadataKey, []byte(token)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (c *MetadataCredentials) Clear(ctx context.Context) error {
	if err := c.repo.Delete(ctx, common.AccessTokenMetadataKey); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
