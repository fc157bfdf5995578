package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an immutable purchase record. Amounts are stored as submitted.
type Purchase struct {
	ID              string
	UserID          string
	CryptoType      string
	AmountCrypto    decimal.Decimal
	AmountUSD       decimal.Decimal
	TokensPurchased decimal.Decimal
	WalletAddress   string
	Status          string
	CreatedAt       time.Time
}

// PurchaseInput is what a client submits; the server fills in the rest.
type PurchaseInput struct {
	CryptoType      string
	AmountCrypto    decimal.Decimal
	AmountUSD       decimal.Decimal
	TokensPurchased decimal.Decimal
	WalletAddress   string
}

// Totals aggregates a set of purchases.
type Totals struct {
	Count     int
	AmountUSD decimal.Decimal
	Tokens    decimal.Decimal
}

// Add folds p into t.
func (t *Totals) Add(p *Purchase) {
	t.Count++
	t.AmountUSD = t.AmountUSD.Add(p.AmountUSD)
	t.Tokens = t.Tokens.Add(p.TokensPurchased)
}

// History is one user's purchases, newest first, with their totals.
type History struct {
	Purchases []Purchase
	Totals    Totals
}

// AdminPurchase is a purchase with its owner's email, "Unknown" when the
// owner no longer exists.
type AdminPurchase struct {
	Purchase
	UserEmail string
}

type Dashboard struct {
	TotalUsers      int
	Totals          Totals
	RecentUsers     []User
	RecentPurchases []AdminPurchase
}
