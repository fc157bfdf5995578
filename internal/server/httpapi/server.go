// Package httpapi exposes the presale backend over REST: account
// registration and login, the caller's profile, purchase submission and
// history, and the admin summary.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/presale/internal/logging"
	"github.com/dmitrijs2005/presale/internal/server/models"
	"github.com/gorilla/mux"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

type UserService interface {
	Register(ctx context.Context, email string, password []byte, fullName string) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (string, *models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type PurchaseService interface {
	Create(ctx context.Context, userID string, in *models.PurchaseInput) (*models.Purchase, error)
	History(ctx context.Context, userID string) (*models.History, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

type Server struct {
	address         string
	logger          logging.Logger
	users           UserService
	purchases       PurchaseService
	dashboard       DashboardService
	shutdownTimeout time.Duration
	now             func() time.Time
}

func NewServer(address string, l logging.Logger, us UserService, ps PurchaseService, ds DashboardService, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		logger:          l.With("module", "http_server"),
		users:           us,
		purchases:       ps,
		dashboard:       ds,
		shutdownTimeout: shutdownTimeout,
		now:             time.Now,
	}
}

// Handler returns the routed API with request logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	s.routes(r)
	return r
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully, giving in-flight requests shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
