package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/common"
)

// AdminService fetches the platform summary. The server makes the access
// decision; a non-admin session is refused locally without a request.
type AdminService interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

type adminService struct {
	client   client.Client
	identity Identity
}

func NewAdminService(c client.Client, identity Identity) AdminService {
	return &adminService{client: c, identity: identity}
}

func (s *adminService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	user, err := s.identity.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	d, err := s.client.AdminDashboard(ctx)
	if errors.Is(err, client.ErrForbidden) {
		return nil, fmt.Errorf("%w: %w", common.ErrorForbidden, err)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch dashboard: %w", err)
	}
	return d, nil
}
