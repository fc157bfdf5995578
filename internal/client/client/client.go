package client

import (
	"context"

	"github.com/dmitrijs2005/presale/internal/client/models"
)

// Client is the backend contract used by client services. Implementations keep
// the current credential and attach it to every request while it is set.
type Client interface {
	Close() error

	SetAccessToken(token string)
	ClearAccessToken()
	HasAccessToken() bool

	Register(ctx context.Context, email string, password []byte, fullName string) error
	Login(ctx context.Context, email string, password []byte) (string, *models.User, error)
	Profile(ctx context.Context) (*models.User, error)

	SubmitPurchase(ctx context.Context, req *models.PurchaseRequest) (*models.Purchase, error)
	Purchases(ctx context.Context) (*models.History, error)
	AdminDashboard(ctx context.Context) (*models.Dashboard, error)

	Ping(ctx context.Context) error
}
