package cli

import (
	"context"
	"errors"
	"os"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
)

// Mark forwards a scanned QR payload to the server. The payload is pasted
// as one line and never reinterpreted locally.
func (a *App) Mark(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Paste QR payload", os.Stdout)
	if err != nil {
		return err
	}
	if raw == "" {
		printlnFn("Nothing to mark.")
		return nil
	}

	ok, err := a.attendance.MarkAttendanceRaw(ctx, raw)
	return a.reportMark(ok, err)
}

// MarkManual builds an attendance request from typed fields, for the case
// where a participant has no scannable code at hand.
func (a *App) MarkManual(ctx context.Context) error {
	eventID, err := getSimpleText(a.reader, "Event id", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Participant email", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.attendance.MarkAttendance(ctx, models.AttendanceRequest{
		EventID:          eventID,
		Date:             date,
		ParticipantEmail: email,
	})
	return a.reportMark(ok, err)
}

func (a *App) reportMark(ok bool, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Session expired, please log in again.")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Marking attendance failed:", err.Error())
		}
		return nil
	}
	if !ok {
		printlnFn("The server did not accept this attendance mark.")
		return nil
	}
	printlnFn("Attendance marked.")
	return nil
}
