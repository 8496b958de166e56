package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/streamtube/internal/client/models"
	"github.com/dmitrijs2005/streamtube/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the account fields and creates the account. It does
// not log in; the user is asked to do that next.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter full name", &req.FullName},
		{"Enter username", &req.Username},
		{"Enter email", &req.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if err := a.authService.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Now log in with 'login'.")
	return nil
}

// Login prompts for credentials, logs in and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.log.Info(ctx, "login successful", "user_id", u.ID)
	fmt.Fprintf(a.out, "Logged in as %s\n", displayName(u))
	return nil
}

// Logout forgets the session locally. The in-memory session is cleared even
// when the store fails to delete the token.
func (a *App) Logout(ctx context.Context) error {
	a.lastVideo = nil
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.WhoAmI()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:       %s\n", u.ID)
	if u.Username != "" {
		fmt.Fprintf(a.out, "username: %s\n", u.Username)
	}
	if u.Email != "" {
		fmt.Fprintf(a.out, "email:    %s\n", u.Email)
	}
	if u.ExpiresAt != nil {
		fmt.Fprintf(a.out, "token expires: %s\n", u.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
