// Package services contains the application services behind the CLI: the
// auth flow (login, register, logout, token persistence) and the credit-gated
// submission workflow.
package services

import (
	"context"
	"fmt"

	"github.com/influeapp/influe-cli/internal/client/api"
	"github.com/influeapp/influe-cli/internal/client/repositories/metadata"
	"github.com/influeapp/influe-cli/internal/common"
)

// AuthService drives the login/register/logout flow.
//
// Credentials are validated client-side before any network call; validation
// failures are *ValidationError and never reach the server. On success the
// bearer token is set on the API client and persisted locally under a fixed
// key, so the next run starts logged in. The token is opaque: it is stored
// and attached, never inspected or verified locally.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, emailConfirm, passwordConfirm string) error
	// Logout drops the token locally. Unconditional; no network call.
	Logout(ctx context.Context) error
	// Restore loads a previously persisted token into the API client.
	// Returns the stored account email, or "" when no token is held.
	Restore(ctx context.Context) (string, error)
}

type authService struct {
	client api.Client
	meta   metadata.Repository
}

func NewAuthService(client api.Client, meta metadata.Repository) AuthService {
	return &authService{client: client, meta: meta}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return a.adopt(ctx, token, email)
}

func (a *authService) Register(ctx context.Context, email, password, emailConfirm, passwordConfirm string) error {
	if err := validateRegistration(email, password, emailConfirm, passwordConfirm); err != nil {
		return err
	}

	token, err := a.client.Register(ctx, email, password)
	if err != nil {
		return err
	}

	return a.adopt(ctx, token, email)
}

// adopt makes a freshly issued token the one active token: attached to the
// client for subsequent requests and persisted for the next run.
func (a *authService) adopt(ctx context.Context, token, email string) error {
	a.client.SetToken(token)

	err := a.meta.SetMany(ctx, map[string][]byte{
		common.TokenMetadataKey: []byte(token),
		common.EmailMetadataKey: []byte(email),
	})
	if err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.ClearToken()
	return a.meta.Clear(ctx)
}

func (a *authService) Restore(ctx context.Context) (string, error) {
	token, err := a.meta.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	if len(token) == 0 {
		return "", nil
	}
	a.client.SetToken(string(token))

	email, err := a.meta.Get(ctx, common.EmailMetadataKey)
	if err != nil {
		return "", err
	}
	return string(email), nil
}
