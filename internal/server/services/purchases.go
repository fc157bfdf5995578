package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/dmitrijs2005/presale/internal/server/models"
	"github.com/dmitrijs2005/presale/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// HistoryLimit caps how many purchases a history request returns.
const HistoryLimit = 1000

// PurchaseService records purchases and reports a user's history. Amounts are
// stored exactly as submitted; nothing is recomputed or verified on-chain.
type PurchaseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPurchaseService(db *sql.DB, m repomanager.RepositoryManager) *PurchaseService {
	return &PurchaseService{db: db, repomanager: m}
}

// Create stores a pending purchase for userID. Every call creates a new
// record. Malformed input yields an error wrapping common.ErrorValidation.
func (s *PurchaseService) Create(ctx context.Context, userID string, in *models.PurchaseInput) (*models.Purchase, error) {
	cur, err := presale.ParseCurrency(in.CryptoType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	if !in.AmountCrypto.IsPositive() {
		return nil, fmt.Errorf("%w: amount_crypto must be positive", common.ErrorValidation)
	}
	if in.AmountUSD.IsNegative() || in.TokensPurchased.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", common.ErrorValidation)
	}
	address := strings.TrimSpace(in.WalletAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: wallet_address is required", common.ErrorValidation)
	}

	p := &models.Purchase{
		ID:              uuid.NewString(),
		UserID:          userID,
		CryptoType:      cur.String(),
		AmountCrypto:    in.AmountCrypto,
		AmountUSD:       in.AmountUSD,
		TokensPurchased: in.TokensPurchased,
		WalletAddress:   address,
		Status:          common.PurchaseStatusPending,
	}

	repo := s.repomanager.Purchases(s.db)
	created, err := repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error creating purchase: %w", err)
	}
	return created, nil
}

// History returns the user's purchases, newest first, with totals summed over
// exactly the returned records.
func (s *PurchaseService) History(ctx context.Context, userID string) (*models.History, error) {
	repo := s.repomanager.Purchases(s.db)
	list, err := repo.ListByUser(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %w", err)
	}

	h := &models.History{Purchases: list}
	for i := range list {
		h.Totals.Add(&list[i])
	}
	return h, nil
}
