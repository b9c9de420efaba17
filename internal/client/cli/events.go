package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
	"github.com/attendmark/attendmark/internal/filex"
)

// Events lists the user's events.
func (a *App) Events(ctx context.Context) error {
	events, err := a.events.GetEvents(ctx)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Session expired, please log in again.")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Failed to load events:", err.Error())
		}
		return nil
	}

	if len(events) == 0 {
		printlnFn("No events yet. Use 'add' to create one.")
		return nil
	}

	for _, e := range events {
		printlnFn(fmt.Sprintf("%s  %s  (%s .. %s, %d registered)",
			e.ID, e.Name, e.StartDate, e.EndDate, len(e.RegisteredUsers)))
	}
	return nil
}

// Show fetches one event and prints its per-day attendance.
func (a *App) Show(ctx context.Context, id string) error {
	event, err := a.events.GetEventByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			printlnFn("No such event:", id)
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Failed to load event:", err.Error())
		}
		return nil
	}

	printlnFn(fmt.Sprintf("%s (%s)", event.Name, event.ID))
	printlnFn(event.Description)
	printlnFn(fmt.Sprintf("Registered: %s", strings.Join(event.RegisteredUsers, ", ")))

	for _, day := range event.Days() {
		present := event.PresentOn(day)
		printlnFn(fmt.Sprintf("%s: %d/%d present", day, len(present), len(event.RegisteredUsers)))
		for _, email := range present {
			printlnFn("  " + email)
		}
	}
	return nil
}

// Add prompts for the event fields and creates it.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Event name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	endDate, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	event := models.Event{
		Name:            name,
		Description:     description,
		StartDate:       startDate,
		EndDate:         endDate,
		RegisteredUsers: []string{},
	}

	ok, err := a.events.AddEvent(ctx, event)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
			return nil
		}
		return err
	}
	if !ok {
		printlnFn("The server rejected the event.")
		return nil
	}
	printlnFn("Event created.")
	return nil
}

// Upload reads a participant list from disk and posts it to the event.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: upload <event-id> <file>")
		return nil
	}
	eventID, path := args[0], args[1]

	data, name, err := filex.ReadParticipantsFile(path)
	if err != nil {
		printlnFn("Cannot read file:", err.Error())
		return nil
	}

	if !a.events.UploadParticipants(ctx, eventID, data, name) {
		printlnFn("Upload failed!")
		return nil
	}
	printlnFn("Participants uploaded.")
	return nil
}

// SendQR triggers QR-code delivery for an event's participants.
func (a *App) SendQR(ctx context.Context, id string) error {
	if !a.events.SendQR(ctx, id) {
		printlnFn("Sending QR codes failed!")
		return nil
	}
	printlnFn("QR codes are on their way.")
	return nil
}
