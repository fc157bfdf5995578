package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/dbx"
	"github.com/dmitrijs2005/presale/internal/server/models"
	"github.com/dmitrijs2005/presale/internal/server/repositories/repomanager"
)

const (
	RecentUsersLimit     = 10
	RecentPurchasesLimit = 20
)

// DashboardService builds the platform-wide admin summary. Access control is
// the caller's job.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Dashboard reads every figure inside one read-only transaction.
func (s *DashboardService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	d := &models.Dashboard{}

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		purchases := s.repomanager.Purchases(tx)

		var err error
		if d.TotalUsers, err = users.Count(ctx); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		totals, err := purchases.Totals(ctx)
		if err != nil {
			return fmt.Errorf("purchase totals: %w", err)
		}
		d.Totals = *totals
		if d.RecentUsers, err = users.Recent(ctx, RecentUsersLimit); err != nil {
			return fmt.Errorf("recent users: %w", err)
		}
		if d.RecentPurchases, err = purchases.Recent(ctx, RecentPurchasesLimit); err != nil {
			return fmt.Errorf("recent purchases: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
