package services

import (
	"context"
	"encoding/json"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
)

// AttendanceService marks attendance against the server. Scanned QR
// payloads stay opaque: MarkAttendanceRaw forwards them untouched.
// MarkAttendance is for locally built requests; it serializes the
// structured form onto the same raw path.
type AttendanceService interface {
	MarkAttendanceRaw(ctx context.Context, rawQR string) (bool, error)
	MarkAttendance(ctx context.Context, req models.AttendanceRequest) (bool, error)
}

type attendanceService struct {
	client client.Client
}

func NewAttendanceService(c client.Client) AttendanceService {
	return &attendanceService{client: c}
}

func (a *attendanceService) MarkAttendanceRaw(ctx context.Context, rawQR string) (bool, error) {
	return a.client.MarkAttendance(ctx, rawQR)
}

func (a *attendanceService) MarkAttendance(ctx context.Context, req models.AttendanceRequest) (bool, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return false, err
	}
	return a.client.MarkAttendance(ctx, string(b))
}
