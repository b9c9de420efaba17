package services

import (
	"context"

	"github.com/attendmark/attendmark/internal/client/client"
	"github.com/attendmark/attendmark/internal/client/models"
)

// EventService covers event listing, creation, participant upload and QR
// delivery.
type EventService interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	AddEvent(ctx context.Context, event models.Event) (bool, error)
	GetEventByID(ctx context.Context, eventID string) (models.Event, error)
	UploadParticipants(ctx context.Context, eventID string, fileBytes []byte, fileName string) bool
	SendQR(ctx context.Context, eventID string) bool
}

type eventService struct {
	client client.Client
}

func NewEventService(c client.Client) EventService {
	return &eventService{client: c}
}

func (e *eventService) GetEvents(ctx context.Context) ([]models.Event, error) {
	return e.client.GetEvents(ctx)
}

func (e *eventService) AddEvent(ctx context.Context, event models.Event) (bool, error) {
	return e.client.AddEventToUser(ctx, event)
}

func (e *eventService) GetEventByID(ctx context.Context, eventID string) (models.Event, error) {
	return e.client.FindEventByID(ctx, eventID)
}

func (e *eventService) UploadParticipants(ctx context.Context, eventID string, fileBytes []byte, fileName string) bool {
	return e.client.UploadParticipants(ctx, eventID, fileBytes, fileName)
}

func (e *eventService) SendQR(ctx context.Context, eventID string) bool {
	return e.client.SendQR(ctx, eventID)
}
