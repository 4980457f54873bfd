package service

import (
	"context"

	"event-admin-api/core/errors"
	"event-admin-api/core/utils"
	"event-admin-api/modules/task/dto"
	"event-admin-api/modules/task/entity"
	"event-admin-api/modules/task/repository"

	"github.com/google/uuid"
)

// TaskService handles task business logic.
type TaskService struct {
	repo repository.TaskRepositoryInterface
}

// TaskServiceInterface defines the service contract. Tasks have no edit
// operation: the event reference is immutable and status changes go through
// ToggleStatus.
type TaskServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.TaskResponse, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError)
	ToggleStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	Delete(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) *errors.AppError
}

func NewTaskService(repo repository.TaskRepositoryInterface) TaskServiceInterface {
	return &TaskService{repo: repo}
}

// List returns the caller's tasks ordered by deadline ascending with the
// referenced event and attendee names joined in.
func (s *TaskService) List(ctx context.Context, userID uuid.UUID) ([]dto.TaskResponse, *errors.AppError) {
	tasks, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tasks", err)
	}

	return dto.ToTaskDetailResponseList(tasks), nil
}

// Create inserts one task with status defaulting to pending. The referenced
// event must exist and belong to the caller; the attendee reference is
// optional but owner-checked when present.
func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError) {
	deadline, err := utils.NormalizeTimestamp(req.Deadline)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid deadline format", err)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
	}

	eventOK, err := s.repo.EventExistsForUser(ctx, eventID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check event", err)
	}
	if !eventOK {
		return nil, errors.NewAppError(errors.ErrNotFound, "Referenced event not found", nil)
	}

	task := &entity.Task{
		UserID:   userID,
		Name:     req.Name,
		Deadline: deadline,
		Status:   entity.TaskStatusPending,
		EventID:  eventID,
	}

	if req.AttendeeID != "" {
		attendeeID, err := uuid.Parse(req.AttendeeID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid attendee ID", err)
		}

		attendeeOK, err := s.repo.AttendeeExistsForUser(ctx, attendeeID, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check attendee", err)
		}
		if !attendeeOK {
			return nil, errors.NewAppError(errors.ErrNotFound, "Referenced attendee not found", nil)
		}

		task.AttendeeID = &attendeeID
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create task", err)
	}

	return dto.ToTaskResponse(created), nil
}

// ToggleStatus flips the task between pending and completed by identifier.
func (s *TaskService) ToggleStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	task, appErr := s.ownedTask(ctx, userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	task.Status = task.Status.Toggled()
	if err := s.repo.UpdateStatus(ctx, taskID, task.Status); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update task status", err)
	}

	return dto.ToTaskResponse(task), nil
}

// Delete removes the task by identifier.
func (s *TaskService) Delete(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedTask(ctx, userID, taskID); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete task", err)
	}

	return nil
}

func (s *TaskService) ownedTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*entity.Task, *errors.AppError) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get task", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	if task.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	return task, nil
}
