package service

import (
	"context"

	"event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/event/dto"
	"event-admin-api/modules/event/entity"
	"event-admin-api/modules/event/repository"

	"github.com/google/uuid"
)

// EventService handles event business logic.
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract.
type EventServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	Get(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// List returns the caller's events ordered by date ascending. On failure
// nothing partial is returned.
func (s *EventService) List(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	return dto.ToEventResponseList(events), nil
}

func (s *EventService) Get(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.ownedEvent(ctx, userID, eventID)
	if appErr != nil {
		return nil, appErr
	}

	return dto.ToEventResponse(event), nil
}

// Create inserts one event tagged with the caller's ID. The date field is
// normalized to a canonical UTC timestamp.
func (s *EventService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	date, err := utils.NormalizeTimestamp(req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date format", err)
	}

	event := &entity.Event{
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
		Date:     date,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

// Update edits the record in place by identifier. Re-submitting the
// pre-filled form never creates a second row.
func (s *EventService) Update(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.ownedEvent(ctx, userID, eventID)
	if appErr != nil {
		return nil, appErr
	}

	date, err := utils.NormalizeTimestamp(req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date format", err)
	}

	event.Name = req.Name
	event.Location = req.Location
	event.Date = date
	if req.Description != "" {
		event.Description = &req.Description
	} else {
		event.Description = nil
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}

// Delete removes the event by identifier. Deletion is blocked while tasks
// still reference the event.
func (s *EventService) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedEvent(ctx, userID, eventID); appErr != nil {
		return appErr
	}

	count, err := s.repo.CountTasksByEventID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to check task references", err)
	}
	if count > 0 {
		return errors.NewAppError(errors.ErrConflict, "Event is referenced by existing tasks", nil)
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	return nil
}

func (s *EventService) ownedEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	return event, nil
}
