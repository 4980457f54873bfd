package repository

import (
	"context"
	"database/sql"

	"event-admin-api/core/database"
	"event-admin-api/core/logger"
	"event-admin-api/modules/task/entity"

	"github.com/google/uuid"
)

// TaskRepository handles task database operations.
type TaskRepository struct {
	DB database.Database
}

func NewTaskRepository(db database.Database) *TaskRepository {
	return &TaskRepository{DB: db}
}

// TaskRepositoryInterface defines the repository contract.
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.TaskDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	EventExistsForUser(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (bool, error)
	AttendeeExistsForUser(ctx context.Context, attendeeID uuid.UUID, userID uuid.UUID) (bool, error)
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `
		INSERT INTO tasks (user_id, name, deadline, status, event_id, attendee_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, deadline, status, event_id, attendee_id, created_at, updated_at
	`

	var created entity.Task
	err := r.DB.GetContext(ctx, &created, query,
		task.UserID, task.Name, task.Deadline, task.Status, task.EventID, task.AttendeeID)
	if err != nil {
		logger.Error("TaskRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	query := `
		SELECT id, user_id, name, deadline, status, event_id, attendee_id, created_at, updated_at
		FROM tasks WHERE id = $1
	`

	var task entity.Task
	err := r.DB.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetByID", err)
		return nil, err
	}

	return &task, nil
}

// ListByUserID returns the owning user's tasks ordered by deadline ascending,
// joining the referenced event's and attendee's names for display.
func (r *TaskRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.TaskDetail, error) {
	query := `
		SELECT t.id, t.user_id, t.name, t.deadline, t.status, t.event_id, t.attendee_id,
		       t.created_at, t.updated_at,
		       e.name AS event_name, a.name AS attendee_name
		FROM tasks t
		JOIN events e ON e.id = t.event_id
		LEFT JOIN attendees a ON a.id = t.attendee_id
		WHERE t.user_id = $1
		ORDER BY t.deadline ASC
	`

	var tasks []entity.TaskDetail
	err := r.DB.SelectContext(ctx, &tasks, query, userID)
	if err != nil {
		logger.Error("TaskRepository:ListByUserID", err)
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error {
	query := `UPDATE tasks SET status = $2, updated_at = NOW() WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("TaskRepository:UpdateStatus", err)
		return err
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TaskRepository:Delete", err)
		return err
	}

	return nil
}

func (r *TaskRepository) EventExistsForUser(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := r.DB.GetContext(ctx, &exists, query, eventID, userID)
	if err != nil {
		logger.Error("TaskRepository:EventExistsForUser", err)
		return false, err
	}

	return exists, nil
}

func (r *TaskRepository) AttendeeExistsForUser(ctx context.Context, attendeeID uuid.UUID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendees WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := r.DB.GetContext(ctx, &exists, query, attendeeID, userID)
	if err != nil {
		logger.Error("TaskRepository:AttendeeExistsForUser", err)
		return false, err
	}

	return exists, nil
}
