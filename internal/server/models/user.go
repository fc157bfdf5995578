// Package models holds the server's persistent records.
package models

import (
	"time"

	"github.com/dmitrijs2005/presale/internal/common"
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	IsVerified   bool
	Role         string
	CreatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == common.RoleAdmin
}
