// Package services contains application services for the presale client.
// This file defines the authentication service: register, login, logout and
// session restore on top of the API client and the session store.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/client/session"
	"github.com/dmitrijs2005/presale/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Resolve: restore a stored session once per process.
//   - Register: create an account on the server; does not sign in.
//   - Login: authenticate and make the result the current session.
//   - Logout: forget the session locally.
//   - Ping: check server liveness.
type AuthService interface {
	Resolve(ctx context.Context) session.Session
	Register(ctx context.Context, email string, password []byte, fullName string) error
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
}

func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	return &authService{client: c, session: s, log: log}
}

func (a *authService) Resolve(ctx context.Context) session.Session {
	return a.session.Resolve(ctx)
}

func (a *authService) Register(ctx context.Context, email string, password []byte, fullName string) error {
	if err := a.client.Register(ctx, email, password, fullName); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "account registered", "email", email)
	return nil
}

// Login authenticates against the server and stores the issued credential. A
// failed login leaves any existing session untouched.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	token, user, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := a.session.Login(ctx, token, user); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
