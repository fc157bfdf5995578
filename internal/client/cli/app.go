package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/client/config"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/presale/internal/client/services"
	"github.com/dmitrijs2005/presale/internal/client/session"
	"github.com/dmitrijs2005/presale/internal/client/wallet"
	"github.com/dmitrijs2005/presale/internal/logging"
	"github.com/dmitrijs2005/presale/internal/presale"
)

// sessionView is the read side of the session store.
type sessionView interface {
	Identity() *models.User
}

type walletConn interface {
	Connect(ctx context.Context) error
	Connected() bool
	Accounts() []string
}

type App struct {
	config *config.Config
	log    logging.Logger

	db  *sql.DB
	api client.Client

	session         sessionView
	wallet          walletConn
	authService     services.AuthService
	purchaseService services.PurchaseService
	adminService    services.AdminService

	// intent is the purchase form being filled in.
	intent *models.Intent

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and wires the client stack from c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	creds := session.NewMetadataCredentials(metadata.NewSQLiteRepository(db))
	store := session.NewStore(api, creds, log.With("component", "session"))

	var provider wallet.Provider
	if c.WalletRPCURL != "" {
		provider = wallet.NewRPCProvider(c.WalletRPCURL, c.RequestTimeout)
	}
	w := wallet.NewConnector(provider, log.With("component", "wallet"))

	pricing := services.Pricing{Rates: c.Rates, TokenPrice: c.TokenPrice, Addresses: c.DepositAddresses}

	return &App{
		config:          c,
		log:             log,
		db:              db,
		api:             api,
		session:         store,
		wallet:          w,
		authService:     services.NewAuthService(api, store, log),
		purchaseService: services.NewPurchaseService(api, store, w, pricing, log),
		adminService:    services.NewAdminService(api, store),
		intent:          &models.Intent{Currency: presale.ETH},
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}, nil
}

// Run restores the previous session and serves commands until exit or end of
// input.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Presale CLI (type 'help' for commands)")
	a.println("Checking session...")
	if s := a.authService.Resolve(ctx); s.Identity != nil {
		a.println("Welcome back,", displayName(s.Identity))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.api != nil {
		_ = a.api.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Identity() != nil
}

func (a *App) isAdmin() bool {
	return a.session.Identity().IsAdmin()
}

// status is shown in the prompt: who is signed in, the wallet state and the
// selected currency.
func (a *App) status() string {
	parts := make([]string, 0, 3)
	if u := a.session.Identity(); u != nil {
		parts = append(parts, u.Email)
	} else {
		parts = append(parts, "guest")
	}
	if a.wallet.Connected() {
		parts = append(parts, "wallet")
	}
	parts = append(parts, a.intent.Currency.String())
	return strings.Join(parts, " ")
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func displayName(u *models.User) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
