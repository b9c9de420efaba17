package services

import (
	"context"

	"github.com/attendmark/attendmark/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	SignUpRet bool

	LoginRet models.LoginResponse
	LoginErr error

	GoogleRet string
	GoogleErr error

	GetEventsRet []models.Event
	GetEventsErr error

	AddEventRet bool
	AddEventErr error

	UploadRet bool
	SendQRRet bool

	FindEventRet models.Event
	FindEventErr error

	MarkRet bool
	MarkErr error

	// argument capture
	LastUser     models.User
	LastLogin    models.LoginRequest
	LastIDToken  string
	LastEvent    models.Event
	LastEventID  string
	LastFile     []byte
	LastFileName string
	LastRawQR    string
}

func (f *fakeClient) SignUp(ctx context.Context, user models.User) bool {
	f.LastUser = user
	return f.SignUpRet
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	f.LastIDToken = idToken
	return f.GoogleRet, f.GoogleErr
}

func (f *fakeClient) GetEvents(ctx context.Context) ([]models.Event, error) {
	return f.GetEventsRet, f.GetEventsErr
}

func (f *fakeClient) AddEventToUser(ctx context.Context, event models.Event) (bool, error) {
	f.LastEvent = event
	return f.AddEventRet, f.AddEventErr
}

func (f *fakeClient) UploadParticipants(ctx context.Context, eventID string, fileBytes []byte, fileName string) bool {
	f.LastEventID = eventID
	f.LastFile = append([]byte(nil), fileBytes...)
	f.LastFileName = fileName
	return f.UploadRet
}

func (f *fakeClient) SendQR(ctx context.Context, eventID string) bool {
	f.LastEventID = eventID
	return f.SendQRRet
}

func (f *fakeClient) FindEventByID(ctx context.Context, eventID string) (models.Event, error) {
	f.LastEventID = eventID
	return f.FindEventRet, f.FindEventErr
}

func (f *fakeClient) MarkAttendance(ctx context.Context, rawQR string) (bool, error) {
	f.LastRawQR = rawQR
	return f.MarkRet, f.MarkErr
}
