package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
	"github.com/attendmark/attendmark/internal/client/session"
	"github.com/attendmark/attendmark/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for the registration fields and attempts to create an
// account. The service reports a bare boolean; both refusal and transport
// failure surface as the same message here.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	organisation, err := getSimpleText(a.reader, "Enter organisation", os.Stdout)
	if err != nil {
		return err
	}
	leadName, err := getSimpleText(a.reader, "Enter lead name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user := models.User{
		Email:        email,
		Organisation: organisation,
		LeadName:     leadName,
		Password:     string(password),
		Events:       []string{},
	}

	if !a.auth.SignUp(ctx, user) {
		printlnFn("Sign-up failed. Check the details and try again.")
		return nil
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the token
// is already persisted by the API client; only the routing state needs
// updating here.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.auth.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Invalid email or password.")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return nil
	}

	a.setState(session.StateAuthenticated)
	printlnFn("Logged in.")
	return nil
}

// Google authenticates with a Google id-token obtained out of band.
func (a *App) Google(ctx context.Context) error {
	idToken, err := getSimpleText(a.reader, "Paste Google id-token", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.Authenticate(ctx, idToken); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Google authentication failed:", err.Error())
		}
		return nil
	}

	a.setState(session.StateAuthenticated)
	printlnFn("Logged in via Google.")
	return nil
}

// Logout drops the stored session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setState(session.StateUnauthenticated)
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the unverified claims of the stored token: the token stays
// opaque to the wire layer, but a JWT-shaped one can still be displayed
// for the user's benefit.
func (a *App) Whoami(ctx context.Context) error {
	tok, err := a.tokens.Current(ctx)
	if err != nil {
		return err
	}
	if !tok.Present || tok.Value == "" {
		printlnFn("No session token stored.")
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.Value, claims); err != nil {
		printlnFn("Session token stored (not a JWT).")
		return nil
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		printlnFn("Subject:", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		printlnFn(fmt.Sprintf("Expires: %s", exp.Format(time.RFC3339)))
	}
	return nil
}
