package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/shopspring/decimal"
)

// fakeClient is an in-memory client.Client that records purchases like the
// backend does.
type fakeClient struct {
	mu sync.Mutex

	token string

	RegisterErr error
	LoginToken  string
	LoginUser   *models.User
	LoginErr    error
	ProfileUser *models.User
	ProfileErr  error
	SubmitErr   error
	HistoryErr  error
	Dashboard   *models.Dashboard
	DashErr     error
	PingErr     error

	// submitGate, when set, blocks SubmitPurchase until it is closed.
	submitGate chan struct{}
	submitted  chan struct{}

	LastRegister []string
	Requests     []*models.PurchaseRequest
	records      []models.Purchase
	calls        map[string]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeClient) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SetAccessToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) ClearAccessToken() { f.SetAccessToken("") }

func (f *fakeClient) HasAccessToken() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token != ""
}

func (f *fakeClient) Register(ctx context.Context, email string, password []byte, fullName string) error {
	f.hit("Register")
	f.LastRegister = []string{email, string(password), fullName}
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (string, *models.User, error) {
	f.hit("Login")
	if f.LoginErr != nil {
		return "", nil, f.LoginErr
	}
	return f.LoginToken, f.LoginUser, nil
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	f.hit("Profile")
	return f.ProfileUser, f.ProfileErr
}

func (f *fakeClient) SubmitPurchase(ctx context.Context, req *models.PurchaseRequest) (*models.Purchase, error) {
	f.hit("SubmitPurchase")
	if f.submitted != nil {
		f.submitted <- struct{}{}
	}
	if f.submitGate != nil {
		<-f.submitGate
	}
	if f.SubmitErr != nil {
		return nil, f.SubmitErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	p := models.Purchase{
		ID:                 fmt.Sprintf("p%d", len(f.records)+1),
		UserID:             "u1",
		Currency:           req.Currency,
		AmountCrypto:       req.AmountCrypto,
		AmountUSD:          req.AmountUSD,
		TokenQuantity:      req.TokenQuantity,
		DestinationAddress: req.DestinationAddress,
		Status:             "pending",
	}
	f.records = append(f.records, p)
	return &p, nil
}

func (f *fakeClient) Purchases(ctx context.Context) (*models.History, error) {
	f.hit("Purchases")
	if f.HistoryErr != nil {
		return nil, f.HistoryErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	h := &models.History{Records: slices.Clone(f.records)}
	slices.Reverse(h.Records)
	h.Stats.TotalTokens, h.Stats.TotalInvested = decimal.Zero, decimal.Zero
	for _, r := range h.Records {
		h.Stats.TotalTokens = h.Stats.TotalTokens.Add(r.TokenQuantity)
		h.Stats.TotalInvested = h.Stats.TotalInvested.Add(r.AmountUSD)
	}
	h.Stats.PurchaseCount = len(h.Records)
	return h, nil
}

func (f *fakeClient) AdminDashboard(ctx context.Context) (*models.Dashboard, error) {
	f.hit("AdminDashboard")
	return f.Dashboard, f.DashErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }
