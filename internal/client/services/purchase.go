package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/logging"
	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/shopspring/decimal"
)

// Identity yields the signed-in user or common.ErrAuthenticationRequired.
type Identity interface {
	RequireIdentity() (*models.User, error)
}

// WalletState reports whether a wallet has been connected.
type WalletState interface {
	Connected() bool
}

// Pricing is the injected market data: USD rates, the token unit price and
// where each currency is to be sent.
type Pricing struct {
	Rates      presale.RateTable
	TokenPrice decimal.Decimal
	Addresses  presale.AddressBook
}

// PurchaseService turns a purchase form into a backend record and lists the
// user's past purchases.
//
// Submit carries no idempotency key. Submitting the same intent twice records
// two purchases.
type PurchaseService interface {
	Quote(intent *models.Intent) (presale.Quote, error)
	Submit(ctx context.Context, intent *models.Intent) (*models.Confirmation, error)
	History(ctx context.Context) (*models.History, error)
}

type purchaseService struct {
	client   client.Client
	identity Identity
	wallet   WalletState
	pricing  Pricing
	log      logging.Logger
}

func NewPurchaseService(c client.Client, identity Identity, wallet WalletState, pricing Pricing, log logging.Logger) PurchaseService {
	return &purchaseService{client: c, identity: identity, wallet: wallet, pricing: pricing, log: log}
}

// Quote is the live preview of the form. Blank or invalid amounts quote zero.
func (s *purchaseService) Quote(intent *models.Intent) (presale.Quote, error) {
	return presale.QuoteText(intent.Currency, intent.Amount, s.pricing.Rates, s.pricing.TokenPrice)
}

// Submit validates the intent, in order: session, wallet, amount, currency.
// Validation failures never reach the network. On success the intent's amount
// is cleared; on failure the intent is left as it was.
func (s *purchaseService) Submit(ctx context.Context, intent *models.Intent) (*models.Confirmation, error) {
	if _, err := s.identity.RequireIdentity(); err != nil {
		return nil, err
	}
	if !s.wallet.Connected() {
		return nil, common.ErrWalletNotConnected
	}

	amount, ok := presale.ParseAmount(intent.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidAmount, intent.Amount)
	}
	q, err := presale.QuoteAmount(intent.Currency, amount, s.pricing.Rates, s.pricing.TokenPrice)
	if err != nil {
		return nil, err
	}
	address, err := s.pricing.Addresses.Address(intent.Currency)
	if err != nil {
		return nil, err
	}

	req := &models.PurchaseRequest{
		Currency:           intent.Currency,
		AmountCrypto:       amount,
		AmountUSD:          q.USDValue,
		TokenQuantity:      q.TokenQuantity,
		DestinationAddress: address,
	}

	record, err := s.client.SubmitPurchase(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "purchase submission failed", "currency", intent.Currency, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrSubmissionFailed, err)
	}

	intent.Amount = ""
	s.log.Info(ctx, "purchase recorded", "id", record.ID, "currency", intent.Currency,
		"amount", amount.String(), "tokens", q.TokenQuantity.String())

	return &models.Confirmation{
		Record:         record,
		Currency:       intent.Currency,
		Amount:         amount,
		DepositAddress: address,
	}, nil
}

// History returns the user's purchases as the backend reports them.
func (s *purchaseService) History(ctx context.Context) (*models.History, error) {
	if _, err := s.identity.RequireIdentity(); err != nil {
		return nil, err
	}
	h, err := s.client.Purchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch purchases: %w", err)
	}
	return h, nil
}
