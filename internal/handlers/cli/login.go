package cli

import (
	"context"
	"errors"
	"fmt"

	authService "github.com/quadrosga/dndapp/internal/services/auth"
)

// loginScreen asks for credentials until a login succeeds. A remembered
// login name from a previous run is offered as the default email
func (a *App) loginScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== D&D Group Login ===")

	saved, err := a.auth.SavedUsername(ctx, &authService.SavedUsernameInput{})
	if err != nil {
		return err
	}

	for {
		prompt := "Email: "
		if saved.Username != "" {
			prompt = fmt.Sprintf("Email [%s]: ", saved.Username)
		}

		email, err := promptLine(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if email == "" {
			email = saved.Username
		}

		password, err := promptPassword("Password: ", a.out)
		if err != nil {
			return err
		}

		result, err := a.auth.Login(ctx, &authService.LoginInput{
			Email:    email,
			Password: password,
		})
		if err != nil {
			if errors.Is(err, authService.ErrInvalidCredentials) {
				fmt.Fprintln(a.out, "Invalid email or password, try again.")
				continue
			}
			return err
		}

		remember, err := promptYesNo(a.reader, "Remember this email?", a.out)
		if err != nil {
			return err
		}
		if remember {
			if _, err := a.auth.RememberUsername(ctx, &authService.RememberUsernameInput{Username: email}); err != nil {
				return err
			}
		} else {
			if _, err := a.auth.ForgetUsername(ctx, &authService.ForgetUsernameInput{}); err != nil {
				return err
			}
		}

		a.user = result.User
		fmt.Fprintf(a.out, "Welcome, %s!\n", a.user.Name)
		return nil
	}
}
