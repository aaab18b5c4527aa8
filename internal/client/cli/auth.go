package cli

import (
	"context"
	"errors"
	"os"

	"github.com/influeapp/influe-cli/internal/client/api"
	"github.com/influeapp/influe-cli/internal/client/services"
	"github.com/influeapp/influe-cli/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	release, ok := a.beginOp()
	if !ok {
		return nil
	}
	defer release()

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		a.reportAuthError(err)
		return err
	}

	a.email = email
	a.view.Success("Logged in.")
	a.refreshCredits(ctx)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	emailConfirm, err := getSimpleText(a.reader, "Confirm email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password (min 6 characters)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	passwordConfirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passwordConfirm)

	release, ok := a.beginOp()
	if !ok {
		return nil
	}
	defer release()

	if err := a.auth.Register(ctx, email, string(password), emailConfirm, string(passwordConfirm)); err != nil {
		a.reportAuthError(err)
		return err
	}

	a.email = email
	a.view.Success("Account created, you are now logged in.")
	a.refreshCredits(ctx)
	return nil
}

// Logout drops the token and reverts to guest state. No network call; the
// following credit refresh reflects anonymous session credits only.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.view.Error(err.Error())
		return err
	}
	a.email = ""
	a.view.Info("Logged out.")
	a.refreshCredits(ctx)
	return nil
}

// reportAuthError converts auth failures into one user-facing line.
func (a *App) reportAuthError(err error) {
	switch {
	case services.IsValidationError(err):
		a.view.Error(err.Error())
	case errors.Is(err, api.ErrUnauthorized):
		a.view.Error("invalid email or password")
	case errors.Is(err, api.ErrEmailTaken):
		a.view.Error("this email is already registered")
	case errors.Is(err, api.ErrServer):
		a.view.Error("server unavailable, try again later")
	case errors.Is(err, api.ErrUnavailable):
		a.view.Error("network error, check your connection and try again")
	default:
		a.view.Error(err.Error())
	}
}
