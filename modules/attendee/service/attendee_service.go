package service

import (
	"context"

	"event-admin-api/core/errors"
	"event-admin-api/modules/attendee/dto"
	"event-admin-api/modules/attendee/entity"
	"event-admin-api/modules/attendee/repository"

	"github.com/google/uuid"
)

// AttendeeService handles attendee business logic.
type AttendeeService struct {
	repo repository.AttendeeRepositoryInterface
}

// AttendeeServiceInterface defines the service contract.
type AttendeeServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.AttendeeResponse, *errors.AppError)
	Get(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID) (*dto.AttendeeResponse, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID, req *dto.UpdateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError)
	Delete(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID) *errors.AppError
}

func NewAttendeeService(repo repository.AttendeeRepositoryInterface) AttendeeServiceInterface {
	return &AttendeeService{repo: repo}
}

// List returns the caller's attendees ordered by name ascending.
func (s *AttendeeService) List(ctx context.Context, userID uuid.UUID) ([]dto.AttendeeResponse, *errors.AppError) {
	attendees, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendees", err)
	}

	return dto.ToAttendeeResponseList(attendees), nil
}

func (s *AttendeeService) Get(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID) (*dto.AttendeeResponse, *errors.AppError) {
	attendee, appErr := s.ownedAttendee(ctx, userID, attendeeID)
	if appErr != nil {
		return nil, appErr
	}

	return dto.ToAttendeeResponse(attendee), nil
}

func (s *AttendeeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError) {
	attendee := &entity.Attendee{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	}
	if req.TaskLabel != "" {
		attendee.TaskLabel = &req.TaskLabel
	}

	created, err := s.repo.Create(ctx, attendee)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create attendee", err)
	}

	return dto.ToAttendeeResponse(created), nil
}

// Update edits the record in place by identifier, never through the insert
// path.
func (s *AttendeeService) Update(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID, req *dto.UpdateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError) {
	attendee, appErr := s.ownedAttendee(ctx, userID, attendeeID)
	if appErr != nil {
		return nil, appErr
	}

	attendee.Name = req.Name
	attendee.Email = req.Email
	if req.TaskLabel != "" {
		attendee.TaskLabel = &req.TaskLabel
	} else {
		attendee.TaskLabel = nil
	}

	if err := s.repo.Update(ctx, attendee); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update attendee", err)
	}

	return dto.ToAttendeeResponse(attendee), nil
}

// Delete removes the attendee. Tasks holding the optional reference are
// detached rather than blocking the delete; detach and delete commit
// together, so a failure leaves both the attendee and its task references
// intact.
func (s *AttendeeService) Delete(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedAttendee(ctx, userID, attendeeID); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, attendeeID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete attendee", err)
	}

	return nil
}

func (s *AttendeeService) ownedAttendee(ctx context.Context, userID uuid.UUID, attendeeID uuid.UUID) (*entity.Attendee, *errors.AppError) {
	attendee, err := s.repo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendee", err)
	}
	if attendee == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Attendee not found", nil)
	}
	if attendee.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	return attendee, nil
}
