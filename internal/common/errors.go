// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")
	ErrorNotVerified  = errors.New("account not verified")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Presale pipeline errors. Validation errors block an action locally and
	// never mutate state.
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrWalletNotConnected     = errors.New("wallet not connected")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnsupportedCurrency    = errors.New("unsupported currency")

	// Wallet provider errors.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	ErrConnectionRejected  = errors.New("wallet connection rejected")

	// Transport errors.
	ErrSubmissionFailed = errors.New("purchase submission failed")
	ErrNetwork          = errors.New("network error")
)
