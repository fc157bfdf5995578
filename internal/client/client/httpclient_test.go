package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/presale/internal/api"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/presale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com", 0)
	require.Error(t, err)

	_, err = NewHTTPClient("://", 0)
	require.Error(t, err)

	c, err := NewHTTPClient("http://localhost:8001", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, c.http.Timeout)
}

func TestHTTPClient_AccessTokenLifecycle(t *testing.T) {
	var gotAuth []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get(common.AuthorizationHeaderName))
		writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy"})
	}))
	ctx := context.Background()

	assert.False(t, c.HasAccessToken())
	require.NoError(t, c.Ping(ctx))

	c.SetAccessToken("tok")
	assert.True(t, c.HasAccessToken())
	require.NoError(t, c.Ping(ctx))

	c.ClearAccessToken()
	assert.False(t, c.HasAccessToken())
	require.NoError(t, c.Ping(ctx))

	assert.Equal(t, []string{"", "Bearer tok", ""}, gotAuth)
}

func TestHTTPClient_Login_Success(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, api.PathLogin, r.URL.Path)

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)
		assert.Equal(t, "secret", req.Password)

		writeJSON(w, http.StatusOK, api.LoginResponse{
			AccessToken: "jwt",
			TokenType:   "bearer",
			User:        api.User{ID: "u1", Email: "a@b.c", FullName: "Alice", Role: "user", CreatedAt: created},
		})
	}))

	token, user, err := c.Login(context.Background(), "a@b.c", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
	assert.Equal(t, &models.User{ID: "u1", Email: "a@b.c", FullName: "Alice", Role: "user", CreatedAt: created}, user)
}

func TestHTTPClient_Login_DetailSurfaced(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Detail: "Incorrect email or password"})
	}))

	_, _, err := c.Login(context.Background(), "a@b.c", []byte("bad"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, common.ErrNetwork)
	assert.Equal(t, "Incorrect email or password", Message(err, "fallback"))
}

func TestHTTPClient_Login_EmptyTokenIsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.LoginResponse{})
	}))

	_, _, err := c.Login(context.Background(), "a@b.c", []byte("x"))
	require.Error(t, err)
}

func TestHTTPClient_Register(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "taken@b.c" {
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Detail: "Email already registered"})
			return
		}
		assert.Equal(t, "Bob", req.FullName)
		writeJSON(w, http.StatusOK, api.RegisterResponse{Message: "User registered successfully", UserID: "u2"})
	}))
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "bob@b.c", []byte("pw"), "Bob"))

	err := c.Register(ctx, "taken@b.c", []byte("pw"), "Bob")
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Error())
}

func TestHTTPClient_SubmitPurchase_SendsWireFields(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.PathPurchase, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get(common.AuthorizationHeaderName))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "ETH", raw["crypto_type"])
		assert.Equal(t, 1.5, raw["amount_crypto"])
		assert.Equal(t, 5250.0, raw["amount_usd"])
		assert.Equal(t, 1050000.0, raw["tokens_purchased"])
		assert.Equal(t, "0xabc", raw["wallet_address"])

		writeJSON(w, http.StatusOK, api.Purchase{
			ID:              "p1",
			UserID:          "u1",
			CryptoType:      "ETH",
			AmountCrypto:    decimal.RequireFromString("1.5"),
			AmountUSD:       decimal.NewFromInt(5250),
			TokensPurchased: decimal.NewFromInt(1050000),
			WalletAddress:   "0xabc",
			Status:          common.PurchaseStatusPending,
		})
	}))
	c.SetAccessToken("tok")

	p, err := c.SubmitPurchase(context.Background(), &models.PurchaseRequest{
		Currency:           presale.ETH,
		AmountCrypto:       decimal.RequireFromString("1.5"),
		AmountUSD:          decimal.NewFromInt(5250),
		TokenQuantity:      decimal.NewFromInt(1050000),
		DestinationAddress: "0xabc",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, presale.ETH, p.Currency)
	assert.True(t, p.TokenQuantity.Equal(decimal.NewFromInt(1050000)))
	assert.Equal(t, common.PurchaseStatusPending, p.Status)
}

func TestHTTPClient_Purchases_PassesStatsThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.PurchasesResponse{
			Purchases: []api.Purchase{
				{ID: "p2", CryptoType: "BNB", AmountUSD: decimal.NewFromInt(600), TokensPurchased: decimal.NewFromInt(120000)},
				{ID: "p1", CryptoType: "ETH", AmountUSD: decimal.NewFromInt(3500), TokensPurchased: decimal.NewFromInt(700000)},
			},
			// deliberately inconsistent: the client must not correct it
			Stats: api.Stats{TotalTokens: decimal.NewFromInt(1), TotalInvested: decimal.NewFromInt(2), PurchaseCount: 7},
		})
	}))

	h, err := c.Purchases(context.Background())
	require.NoError(t, err)
	require.Len(t, h.Records, 2)
	assert.Equal(t, "p2", h.Records[0].ID)
	assert.Equal(t, presale.BNB, h.Records[0].Currency)
	assert.Equal(t, 7, h.Stats.PurchaseCount)
	assert.True(t, h.Stats.TotalTokens.Equal(decimal.NewFromInt(1)))
	assert.False(t, h.Reconciles())
}

func TestHTTPClient_AdminDashboard(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.AuthorizationHeaderName) != "Bearer admin" {
			writeJSON(w, http.StatusForbidden, api.ErrorResponse{Detail: "Admin access required"})
			return
		}
		writeJSON(w, http.StatusOK, api.Dashboard{
			TotalUsers:      2,
			TotalPurchases:  1,
			TotalFunds:      decimal.NewFromInt(600),
			TotalTokens:     decimal.NewFromInt(120000),
			RecentUsers:     []api.User{{ID: "u1", Email: "a@b.c"}},
			RecentPurchases: []api.AdminPurchase{{Purchase: api.Purchase{ID: "p1", CryptoType: "BNB"}, UserEmail: "a@b.c"}},
		})
	}))
	ctx := context.Background()

	c.SetAccessToken("user")
	_, err := c.AdminDashboard(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)

	c.SetAccessToken("admin")
	d, err := c.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TotalUsers)
	require.Len(t, d.RecentPurchases, 1)
	assert.Equal(t, "a@b.c", d.RecentPurchases[0].UserEmail)
	assert.Equal(t, presale.BNB, d.RecentPurchases[0].Currency)
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		is     error
		detail string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`, ErrUnauthorized, "Could not validate credentials"},
		{"forbidden", http.StatusForbidden, `{"detail":"nope"}`, ErrForbidden, "nope"},
		{"bad gateway", http.StatusBadGateway, `<html>`, ErrUnavailable, ""},
		{"server error", http.StatusInternalServerError, `{}`, common.ErrNetwork, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := c.Profile(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, tt.detail, Message(err, ""))
		})
	}
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := c.Profile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestHTTPClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, time.Second)
	require.NoError(t, err)

	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, common.ErrNetwork)

	var te *TransportError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestHTTPClient_Ping_Unhealthy(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.HealthResponse{Status: "degraded"})
	}))
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy"})
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
