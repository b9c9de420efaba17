package client

import (
	"context"

	"github.com/attendmark/attendmark/internal/client/models"
)

// Client is the typed facade over the attendance API: one method per
// remote capability. Error policy differs per method and is part of the
// contract:
//
//   - SignUp, UploadParticipants and SendQR absorb every failure into a
//     boolean; they log the cause and never return an error.
//   - All other methods propagate failures as wrapped error kinds
//     (ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrServer, ErrDecode).
//
// Login additionally persists the issued token into the session store
// before returning.
type Client interface {
	SignUp(ctx context.Context, user models.User) bool
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, idToken string) (string, error)
	GetEvents(ctx context.Context) ([]models.Event, error)
	AddEventToUser(ctx context.Context, event models.Event) (bool, error)
	UploadParticipants(ctx context.Context, eventID string, fileBytes []byte, fileName string) bool
	SendQR(ctx context.Context, eventID string) bool
	FindEventByID(ctx context.Context, eventID string) (models.Event, error)
	MarkAttendance(ctx context.Context, rawQR string) (bool, error)
}
