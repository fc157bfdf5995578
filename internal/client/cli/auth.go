package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/client/session"
	"github.com/dmitrijs2005/presale/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, full name and password and creates an account.
// It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		a.println("Email and password are required")
		return common.ErrorValidation
	}

	if err := a.authService.Register(ctx, email, password, fullName); err != nil {
		a.println(client.Message(err, "Registration failed"))
		return err
	}

	a.println("Registration successful! Please login.")
	return nil
}

// Login prompts for credentials and makes the result the current session. A
// failed attempt keeps whatever session existed before.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.println(client.Message(err, "Login failed"))
		return err
	}

	a.println("Logged in as", displayName(user))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	if errors.Is(err, session.ErrCredentialNotCleared) {
		a.log.Warn(ctx, "logout did not clear the stored credential", "error", err)
		a.println("Logged out for this run only: the saved login could not be removed")
		return err
	}
	if err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
	}
	a.println("Logged out")
	return err
}

func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Identity()
	if u == nil {
		a.println("Not logged in")
		return common.ErrAuthenticationRequired
	}

	a.printf("%s <%s>\n", displayName(u), u.Email)
	if u.IsAdmin() {
		a.println("Role: admin")
	}
	if !u.CreatedAt.IsZero() {
		a.println("Member since", u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// reportAuth prints the standard hint for errors that need the user to log in
// again, and reports whether it handled err.
func (a *App) reportAuth(err error) bool {
	switch {
	case errors.Is(err, common.ErrAuthenticationRequired):
		a.println("Please login first")
	case errors.Is(err, client.ErrUnauthorized):
		a.println(client.Message(err, "Session expired, please login again"))
	default:
		return false
	}
	return true
}
