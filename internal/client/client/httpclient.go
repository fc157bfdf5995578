package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/presale/internal/api"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/presale"
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

// NewHTTPClient builds a client for the backend at baseURL. timeout bounds each
// request; zero means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{baseURL: u, http: &http.Client{Timeout: timeout}}, nil
}

func (c *HTTPClient) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *HTTPClient) ClearAccessToken() {
	c.SetAccessToken("")
}

func (c *HTTPClient) HasAccessToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != ""
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email string, password []byte, fullName string) error {
	req := api.RegisterRequest{Email: email, Password: string(password), FullName: fullName}
	return c.do(ctx, http.MethodPost, api.PathRegister, req, &api.RegisterResponse{})
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, *models.User, error) {
	req := api.LoginRequest{Email: email, Password: string(password)}

	var resp api.LoginResponse
	if err := c.do(ctx, http.MethodPost, api.PathLogin, req, &resp); err != nil {
		return "", nil, err
	}
	if resp.AccessToken == "" {
		return "", nil, &APIError{Status: http.StatusOK, Detail: "login response carries no access token"}
	}
	return resp.AccessToken, userFromAPI(resp.User), nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var resp api.User
	if err := c.do(ctx, http.MethodGet, api.PathProfile, nil, &resp); err != nil {
		return nil, err
	}
	return userFromAPI(resp), nil
}

func (c *HTTPClient) SubmitPurchase(ctx context.Context, r *models.PurchaseRequest) (*models.Purchase, error) {
	req := api.PurchaseRequest{
		CryptoType:      r.Currency.String(),
		AmountCrypto:    r.AmountCrypto,
		AmountUSD:       r.AmountUSD,
		TokensPurchased: r.TokenQuantity,
		WalletAddress:   r.DestinationAddress,
	}

	var resp api.Purchase
	if err := c.do(ctx, http.MethodPost, api.PathPurchase, req, &resp); err != nil {
		return nil, err
	}
	return purchaseFromAPI(resp), nil
}

func (c *HTTPClient) Purchases(ctx context.Context) (*models.History, error) {
	var resp api.PurchasesResponse
	if err := c.do(ctx, http.MethodGet, api.PathPurchases, nil, &resp); err != nil {
		return nil, err
	}

	h := &models.History{
		Records: make([]models.Purchase, 0, len(resp.Purchases)),
		Stats: models.Stats{
			TotalTokens:   resp.Stats.TotalTokens,
			TotalInvested: resp.Stats.TotalInvested,
			PurchaseCount: resp.Stats.PurchaseCount,
		},
	}
	for _, p := range resp.Purchases {
		h.Records = append(h.Records, *purchaseFromAPI(p))
	}
	return h, nil
}

func (c *HTTPClient) AdminDashboard(ctx context.Context) (*models.Dashboard, error) {
	var resp api.Dashboard
	if err := c.do(ctx, http.MethodGet, api.PathAdminDashboard, nil, &resp); err != nil {
		return nil, err
	}

	d := &models.Dashboard{
		TotalUsers:     resp.TotalUsers,
		TotalPurchases: resp.TotalPurchases,
		TotalFunds:     resp.TotalFunds,
		TotalTokens:    resp.TotalTokens,
	}
	for _, u := range resp.RecentUsers {
		d.RecentUsers = append(d.RecentUsers, *userFromAPI(u))
	}
	for _, p := range resp.RecentPurchases {
		d.RecentPurchases = append(d.RecentPurchases, models.AdminPurchase{
			Purchase:  *purchaseFromAPI(p.Purchase),
			UserEmail: p.UserEmail,
		})
	}
	return d, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.do(ctx, http.MethodGet, api.PathHealth, nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return ErrUnavailable
	}
	return nil
}

// do sends in (when non-nil) as JSON and decodes a 2xx body into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	if c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.accessToken)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Detail: "malformed response: " + err.Error()}
	}
	return nil
}

// mapError turns a non-2xx response into an *APIError, keeping the backend's
// "detail" text when the body has one.
func mapError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var er api.ErrorResponse
	if json.Unmarshal(b, &er) == nil {
		apiErr.Detail = strings.TrimSpace(er.Detail)
	}
	return apiErr
}

func userFromAPI(u api.User) *models.User {
	return &models.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func purchaseFromAPI(p api.Purchase) *models.Purchase {
	return &models.Purchase{
		ID:                 p.ID,
		UserID:             p.UserID,
		Currency:           presale.Currency(p.CryptoType),
		AmountCrypto:       p.AmountCrypto,
		AmountUSD:          p.AmountUSD,
		TokenQuantity:      p.TokensPurchased,
		DestinationAddress: p.WalletAddress,
		Status:             p.Status,
		CreatedAt:          p.CreatedAt,
	}
}
