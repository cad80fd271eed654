package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/validator"
)

// EventService covers community events: creation, registration and the
// admin verification of payment proofs.
type EventService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewEventService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *EventService {
	return &EventService{api: client, endpoints: endpoints, logger: logger}
}

// EventInput creates a new event. The banner goes up as a multipart file
// part alongside the text fields.
type EventInput struct {
	Name        string `validate:"required,max=200"`
	Date        string `validate:"required"`
	Time        string `validate:"required"`
	Venue       string `validate:"required,max=300"`
	UpiID       string `validate:"max=100"`
	Description string `validate:"max=2000"`
	Banner      Upload
}

// EventRegistrationInput registers a member for an event with a payment
// screenshot as proof.
type EventRegistrationInput struct {
	EventID    string `validate:"required"`
	UserID     string `validate:"required"`
	Screenshot Upload
}

// List returns all events.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.fetchEvents(ctx, s.endpoints.Events())
}

// Upcoming returns events that have not happened yet.
func (s *EventService) Upcoming(ctx context.Context) ([]domain.Event, error) {
	return s.fetchEvents(ctx, s.endpoints.UpcomingEvents())
}

// Completed returns past events.
func (s *EventService) Completed(ctx context.Context) ([]domain.Event, error) {
	return s.fetchEvents(ctx, s.endpoints.CompletedEvents())
}

// Get returns a single event by id.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("event id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.Event(id), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load event"); err != nil {
		return nil, err
	}
	var event domain.Event
	if err := env.DecodeData(&event); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &event, nil
}

// Create publishes a new event.
func (s *EventService) Create(ctx context.Context, input EventInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	form := new(api.Form).
		AddField("name", input.Name).
		AddField("date", input.Date).
		AddField("time", input.Time).
		AddField("venue", input.Venue).
		AddField("upiId", input.UpiID).
		AddField("description", input.Description)
	if input.Banner.Content != nil {
		form.AddFile("banner", input.Banner.Filename, input.Banner.Content)
	}
	env, err := s.api.PostForm(ctx, s.endpoints.CreateEvent(), form)
	if err != nil {
		return err
	}
	return check(env, "could not create event")
}

// Register signs a member up for an event.
func (s *EventService) Register(ctx context.Context, input EventRegistrationInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if input.Screenshot.Content == nil {
		return apperrors.InvalidInput("payment screenshot is required")
	}
	form := new(api.Form).
		AddField("eventId", input.EventID).
		AddField("userId", input.UserID).
		AddFile("screenshot", input.Screenshot.Filename, input.Screenshot.Content)
	env, err := s.api.PostForm(ctx, s.endpoints.RegisterEvent(), form)
	if err != nil {
		return err
	}
	return check(env, "could not register for event")
}

// Registrations returns the registrations for an event.
func (s *EventService) Registrations(ctx context.Context, eventID string) ([]domain.EventRegistration, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, apperrors.InvalidInput("event id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.EventRegistrations(eventID), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load registrations"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var regs []domain.EventRegistration
	if err := env.DecodeData(&regs); err != nil {
		return nil, apperrors.Internal(err)
	}
	return regs, nil
}

// VerifyRegistration confirms a registration's payment proof.
func (s *EventService) VerifyRegistration(ctx context.Context, registrationID string) error {
	if strings.TrimSpace(registrationID) == "" {
		return apperrors.InvalidInput("registration id is required")
	}
	env, err := s.api.Put(ctx, s.endpoints.VerifyEventRegistration(registrationID), nil)
	if err != nil {
		return err
	}
	return check(env, "could not verify registration")
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	if strings.TrimSpace(eventID) == "" {
		return apperrors.InvalidInput("event id is required")
	}
	env, err := s.api.Delete(ctx, s.endpoints.DeleteEvent(eventID))
	if err != nil {
		return err
	}
	return check(env, "could not delete event")
}

func (s *EventService) fetchEvents(ctx context.Context, rawURL string) ([]domain.Event, error) {
	env, err := s.api.Get(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load events"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var events []domain.Event
	if err := env.DecodeData(&events); err != nil {
		return nil, apperrors.Internal(err)
	}
	return events, nil
}
