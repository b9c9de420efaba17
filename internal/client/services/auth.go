// Package services holds the thin domain services the UI layer consumes.
// They delegate to the API client one to one; the indirection exists so
// screens depend on small stable interfaces that are trivial to fake in
// tests.
package services

import (
	"context"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
	"github.com/attendmark/attendmark/internal/client/session"
)

// AuthService covers account and session lifecycle.
//
// Contract:
//   - SignUp: create an account; true iff the server accepted it.
//   - Login: password login; the client persists the token as a side effect.
//   - Authenticate: Google id-token login; persists the returned token.
//   - Logout: drop the stored session token.
type AuthService interface {
	SignUp(ctx context.Context, user models.User) bool
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Authenticate(ctx context.Context, idToken string) (string, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	tokens *session.TokenStore
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(c client.Client, tokens *session.TokenStore) AuthService {
	return &authService{client: c, tokens: tokens}
}

func (a *authService) SignUp(ctx context.Context, user models.User) bool {
	return a.client.SignUp(ctx, user)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return a.client.Login(ctx, req)
}

// Authenticate exchanges the Google id-token and persists the resulting
// bearer token, so watchers of the session store route to the
// authenticated state.
func (a *authService) Authenticate(ctx context.Context, idToken string) (string, error) {
	token, err := a.client.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return "", err
	}
	if err := a.tokens.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}
