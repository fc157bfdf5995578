// Package services contains server-side business logic. This file implements
// UserService: registration, login and bearer-token authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/server/auth"
	"github.com/dmitrijs2005/presale/internal/server/config"
	"github.com/dmitrijs2005/presale/internal/server/models"
	"github.com/dmitrijs2005/presale/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type UserService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	jwtSecret           []byte
	accessTokenValidity time.Duration
	isAdminEmail        func(string) bool
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                  db,
		repomanager:         m,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
		isAdminEmail:        cfg.IsAdminEmail,
	}
}

// Register creates a verified account. Emails listed as admin emails get the
// admin role. A taken email yields common.ErrorAlreadyExists; bad input
// yields an error wrapping common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, email string, password []byte, fullName string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	role := common.RoleUser
	if s.isAdminEmail(email) {
		role = common.RoleAdmin
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		IsVerified:   true,
		Role:         role,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and returns a fresh access token with the
// account. Unknown email or wrong password yield common.ErrorUnauthorized; an
// unverified account yields common.ErrorNotVerified.
func (s *UserService) Login(ctx context.Context, email string, password []byte) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	if !ok {
		return "", nil, common.ErrorUnauthorized
	}
	if !user.IsVerified {
		return "", nil, common.ErrorNotVerified
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to its account. The returned user's
// role comes from storage, not from the token. Any token or lookup problem
// other than a storage failure yields common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
