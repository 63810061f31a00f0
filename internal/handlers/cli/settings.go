package cli

import (
	"context"
	"fmt"

	authService "github.com/quadrosga/dndapp/internal/services/auth"
)

// settingsScreen shows the logged-in identity and offers logout. Logging
// out returns to the login screen so a different user can sign in.
func (a *App) settingsScreen(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Settings ===")
	fmt.Fprintf(a.out, "Logged in as %s (%s), role %s\n", a.user.Name, a.user.Email, a.user.Role)

	logout, err := promptYesNo(a.reader, "Log out?", a.out)
	if err != nil {
		return err
	}
	if !logout {
		return nil
	}

	if _, err := a.auth.Logout(ctx, &authService.LogoutInput{}); err != nil {
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out.")

	return a.loginScreen(ctx)
}
