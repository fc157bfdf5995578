package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/presale/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// APIError is a non-2xx response. Detail holds the backend's human-readable
// "detail" field when there was one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("unexpected status %d %s", e.Status, http.StatusText(e.Status))
}

// Is lets callers match an APIError against the transport sentinels. Every
// APIError is also a common.ErrNetwork.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrNetwork:
		return true
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}

// TransportError wraps a failure to reach the backend at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "server unavailable: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == common.ErrNetwork || target == ErrUnavailable
}

// Message returns the backend's detail for err when it has one and fallback
// otherwise. It is what the CLI shows the user.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
