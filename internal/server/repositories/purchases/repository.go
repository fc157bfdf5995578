package purchases

import (
	"context"

	"github.com/dmitrijs2005/presale/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Purchase, error)
	Totals(ctx context.Context) (*models.Totals, error)
	Recent(ctx context.Context, limit int) ([]models.AdminPurchase, error)
}
