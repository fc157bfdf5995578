package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/dbx"
	"github.com/dmitrijs2005/presale/internal/server/config"
	"github.com/dmitrijs2005/presale/internal/server/models"
	"github.com/dmitrijs2005/presale/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/presale/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"
	cfg.AccessTokenValidity = time.Hour
	cfg.AdminEmails = []string{"admin@presale.io"}
	return cfg
}

// fakeUsersRepo is an in-memory users.Repository. Setting err makes every
// call fail.
type fakeUsersRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	clock time.Time
	err   error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.clock = f.clock.Add(time.Second)
	u.CreatedAt = f.clock
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.byID), nil
}

func (f *fakeUsersRepo) Recent(_ context.Context, limit int) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.User{}
	for _, u := range f.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakePurchasesRepo is an in-memory purchases.Repository that resolves owner
// emails through users.
type fakePurchasesRepo struct {
	mu    sync.Mutex
	list  []models.Purchase
	users *fakeUsersRepo
	clock time.Time
	err   error
}

func newFakePurchasesRepo(users *fakeUsersRepo) *fakePurchasesRepo {
	return &fakePurchasesRepo{users: users, clock: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakePurchasesRepo) Create(_ context.Context, p *models.Purchase) (*models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.clock = f.clock.Add(time.Second)
	p.CreatedAt = f.clock
	f.list = append(f.list, *p)
	return p, nil
}

func (f *fakePurchasesRepo) newestFirst() []models.Purchase {
	out := append([]models.Purchase(nil), f.list...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakePurchasesRepo) ListByUser(_ context.Context, userID string, limit int) ([]models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Purchase{}
	for _, p := range f.newestFirst() {
		if p.UserID == userID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePurchasesRepo) Totals(context.Context) (*models.Totals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := &models.Totals{}
	for i := range f.list {
		t.Add(&f.list[i])
	}
	return t, nil
}

func (f *fakePurchasesRepo) Recent(ctx context.Context, limit int) ([]models.AdminPurchase, error) {
	f.mu.Lock()
	list := f.newestFirst()
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []models.AdminPurchase{}
	for _, p := range list {
		if len(out) == limit {
			break
		}
		ap := models.AdminPurchase{Purchase: p, UserEmail: purchases.UnknownEmail}
		if u, err := f.users.GetByID(ctx, p.UserID); err == nil {
			ap.UserEmail = u.Email
		}
		out = append(out, ap)
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakePurchasesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	u := newFakeUsersRepo()
	return &fakeRepoManager{u: u, p: newFakePurchasesRepo(u)}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Purchases(db dbx.DBTX) purchases.Repository   { return m.p }
