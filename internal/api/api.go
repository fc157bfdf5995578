// Package api defines the JSON request and response bodies exchanged between
// the presale client and server, together with the REST paths.
//
// Monetary fields are decimal.Decimal and travel as plain JSON numbers.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are JSON numbers on the wire, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	PathRoot           = "/api/"
	PathHealth         = "/api/health"
	PathRegister       = "/api/auth/register"
	PathLogin          = "/api/auth/login"
	PathProfile        = "/api/user/profile"
	PathPurchase       = "/api/presale/purchase"
	PathPurchases      = "/api/presale/purchases"
	PathAdminDashboard = "/api/admin/dashboard"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	IsVerified bool      `json:"is_verified"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type PurchaseRequest struct {
	CryptoType      string          `json:"crypto_type"`
	AmountCrypto    decimal.Decimal `json:"amount_crypto"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	TokensPurchased decimal.Decimal `json:"tokens_purchased"`
	WalletAddress   string          `json:"wallet_address"`
}

type Purchase struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	CryptoType      string          `json:"crypto_type"`
	AmountCrypto    decimal.Decimal `json:"amount_crypto"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	TokensPurchased decimal.Decimal `json:"tokens_purchased"`
	WalletAddress   string          `json:"wallet_address"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Stats struct {
	TotalTokens   decimal.Decimal `json:"totalTokens"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	PurchaseCount int             `json:"purchaseCount"`
}

type PurchasesResponse struct {
	Purchases []Purchase `json:"purchases"`
	Stats     Stats      `json:"stats"`
}

// AdminPurchase is a purchase annotated with its owner's email.
type AdminPurchase struct {
	Purchase
	UserEmail string `json:"user_email"`
}

type Dashboard struct {
	TotalUsers      int             `json:"totalUsers"`
	TotalPurchases  int             `json:"totalPurchases"`
	TotalFunds      decimal.Decimal `json:"totalFunds"`
	TotalTokens     decimal.Decimal `json:"totalTokens"`
	RecentUsers     []User          `json:"recentUsers"`
	RecentPurchases []AdminPurchase `json:"recentPurchases"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
