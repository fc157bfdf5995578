package models

import (
	"time"

	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/shopspring/decimal"
)

// Intent is the purchase form as the user is filling it in. Amount is the raw
// text typed by the user.
type Intent struct {
	Currency presale.Currency
	Amount   string
}

// PurchaseRequest is the record the client asks the backend to create.
type PurchaseRequest struct {
	Currency           presale.Currency
	AmountCrypto       decimal.Decimal
	AmountUSD          decimal.Decimal
	TokenQuantity      decimal.Decimal
	DestinationAddress string
}

// Purchase is a backend-owned record. The client never mutates it.
type Purchase struct {
	ID                 string
	UserID             string
	Currency           presale.Currency
	AmountCrypto       decimal.Decimal
	AmountUSD          decimal.Decimal
	TokenQuantity      decimal.Decimal
	DestinationAddress string
	Status             string
	CreatedAt          time.Time
}

// Confirmation is what the user is told after a successful submission: which
// amount to send and where.
type Confirmation struct {
	Record         *Purchase
	Currency       presale.Currency
	Amount         decimal.Decimal
	DepositAddress string
}

// Stats are the backend-computed aggregates over a user's purchases.
type Stats struct {
	TotalTokens   decimal.Decimal
	TotalInvested decimal.Decimal
	PurchaseCount int
}

// History is a user's purchases, newest first, with backend stats passed
// through unchanged.
type History struct {
	Records []Purchase
	Stats   Stats
}

// Reconciles reports whether Stats agree with the sums over Records.
func (h *History) Reconciles() bool {
	tokens, invested := decimal.Zero, decimal.Zero
	for _, r := range h.Records {
		tokens = tokens.Add(r.TokenQuantity)
		invested = invested.Add(r.AmountUSD)
	}
	return h.Stats.PurchaseCount == len(h.Records) &&
		h.Stats.TotalTokens.Equal(tokens) &&
		h.Stats.TotalInvested.Equal(invested)
}

// AdminPurchase is a purchase annotated with its owner's email.
type AdminPurchase struct {
	Purchase
	UserEmail string
}

// Dashboard is the platform-wide summary shown to admins.
type Dashboard struct {
	TotalUsers      int
	TotalPurchases  int
	TotalFunds      decimal.Decimal
	TotalTokens     decimal.Decimal
	RecentUsers     []User
	RecentPurchases []AdminPurchase
}
