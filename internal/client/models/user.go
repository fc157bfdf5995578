// Package models defines client-side data models used by the presale CLI.
package models

import (
	"time"

	"github.com/dmitrijs2005/presale/internal/common"
)

// User is the read-only copy of the backend's user obtained at login or
// profile fetch.
type User struct {
	ID        string
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}

// IsAdmin reports whether the backend granted the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == common.RoleAdmin
}
