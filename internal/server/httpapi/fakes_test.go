package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/logging"
	"github.com/dmitrijs2005/presale/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var (
	alice = &models.User{ID: "u-alice", Email: "alice@example.com", FullName: "Alice", PasswordHash: "secret-hash", IsVerified: true, Role: common.RoleUser, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	admin = &models.User{ID: "u-admin", Email: "admin@presale.io", FullName: "Ops", IsVerified: true, Role: common.RoleAdmin, CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
)

// fakeUsers accepts "tok-<id>" tokens for the accounts in byID.
type fakeUsers struct {
	byID map[string]*models.User

	regOut   *models.User
	regErr   error
	loginErr error
	authErr  error

	gotPassword string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*models.User{alice.ID: alice, admin.ID: admin}}
}

func (f *fakeUsers) Register(_ context.Context, email string, password []byte, fullName string) (*models.User, error) {
	f.gotPassword = string(password)
	if f.regErr != nil {
		return nil, f.regErr
	}
	if f.regOut != nil {
		return f.regOut, nil
	}
	return &models.User{ID: "u-new", Email: email, FullName: fullName}, nil
}

func (f *fakeUsers) Login(_ context.Context, email string, password []byte) (string, *models.User, error) {
	f.gotPassword = string(password)
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return "tok-" + u.ID, u, nil
		}
	}
	return "", nil, common.ErrorUnauthorized
}

func (f *fakeUsers) Authenticate(_ context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	for id, u := range f.byID {
		if token == "tok-"+id {
			return u, nil
		}
	}
	return nil, common.ErrorUnauthorized
}

// fakePurchases keeps records in memory, newest last.
type fakePurchases struct {
	mu      sync.Mutex
	records []models.Purchase
	err     error
}

func (f *fakePurchases) Create(_ context.Context, userID string, in *models.PurchaseInput) (*models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p := models.Purchase{
		ID:              "p-" + string(rune('a'+len(f.records))),
		UserID:          userID,
		CryptoType:      in.CryptoType,
		AmountCrypto:    in.AmountCrypto,
		AmountUSD:       in.AmountUSD,
		TokensPurchased: in.TokensPurchased,
		WalletAddress:   in.WalletAddress,
		Status:          common.PurchaseStatusPending,
		CreatedAt:       time.Date(2025, 3, 1, 0, 0, len(f.records), 0, time.UTC),
	}
	f.records = append(f.records, p)
	return &p, nil
}

func (f *fakePurchases) History(_ context.Context, userID string) (*models.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	h := &models.History{Purchases: []models.Purchase{}}
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			h.Purchases = append(h.Purchases, f.records[i])
			h.Totals.Add(&f.records[i])
		}
	}
	return h, nil
}

type fakeDashboard struct {
	out   *models.Dashboard
	err   error
	calls int
}

func (f *fakeDashboard) Dashboard(context.Context) (*models.Dashboard, error) {
	f.calls++
	return f.out, f.err
}

type fixture struct {
	users     *fakeUsers
	purchases *fakePurchases
	dashboard *fakeDashboard
	server    *Server
}

func newFixture() *fixture {
	f := &fixture{
		users:     newFakeUsers(),
		purchases: &fakePurchases{},
		dashboard: &fakeDashboard{out: &models.Dashboard{}},
	}
	f.server = NewServer("127.0.0.1:0", nopLogger{}, f.users, f.purchases, f.dashboard, time.Second)
	f.server.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}
