package repository

import (
	"context"
	"database/sql"

	"event-admin-api/core/database"
	"event-admin-api/core/logger"
	"event-admin-api/modules/attendee/entity"

	"github.com/google/uuid"
)

// AttendeeRepository handles attendee database operations.
type AttendeeRepository struct {
	DB database.Database
}

func NewAttendeeRepository(db database.Database) *AttendeeRepository {
	return &AttendeeRepository{DB: db}
}

// AttendeeRepositoryInterface defines the repository contract.
type AttendeeRepositoryInterface interface {
	Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendee, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Attendee, error)
	Update(ctx context.Context, attendee *entity.Attendee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error) {
	query := `
		INSERT INTO attendees (user_id, name, email, task_label)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, email, task_label, created_at, updated_at
	`

	var created entity.Attendee
	err := r.DB.GetContext(ctx, &created, query,
		attendee.UserID, attendee.Name, attendee.Email, attendee.TaskLabel)
	if err != nil {
		logger.Error("AttendeeRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendee, error) {
	query := `
		SELECT id, user_id, name, email, task_label, created_at, updated_at
		FROM attendees WHERE id = $1
	`

	var attendee entity.Attendee
	err := r.DB.GetContext(ctx, &attendee, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AttendeeRepository:GetByID", err)
		return nil, err
	}

	return &attendee, nil
}

// ListByUserID returns the owning user's attendees ordered by name ascending.
func (r *AttendeeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Attendee, error) {
	query := `
		SELECT id, user_id, name, email, task_label, created_at, updated_at
		FROM attendees
		WHERE user_id = $1
		ORDER BY name ASC
	`

	var attendees []entity.Attendee
	err := r.DB.SelectContext(ctx, &attendees, query, userID)
	if err != nil {
		logger.Error("AttendeeRepository:ListByUserID", err)
		return nil, err
	}

	return attendees, nil
}

func (r *AttendeeRepository) Update(ctx context.Context, attendee *entity.Attendee) error {
	query := `
		UPDATE attendees
		SET name = $2, email = $3, task_label = $4, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		attendee.ID, attendee.Name, attendee.Email, attendee.TaskLabel)
	if err != nil {
		logger.Error("AttendeeRepository:Update", err)
		return err
	}

	return nil
}

// Delete removes the attendee and detaches referencing tasks in a single
// transaction. Tasks keep their rows; only the attendee reference is nulled.
// A failure on either statement rolls back both.
func (r *AttendeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AttendeeRepository:Delete - BeginTx", err)
		return err
	}
	defer tx.Rollback()

	detach := `UPDATE tasks SET attendee_id = NULL, updated_at = NOW() WHERE attendee_id = $1`
	if _, err := tx.ExecContext(ctx, detach, id); err != nil {
		logger.Error("AttendeeRepository:Delete - DetachTasks", err)
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM attendees WHERE id = $1`, id); err != nil {
		logger.Error("AttendeeRepository:Delete", err)
		return err
	}

	return tx.Commit()
}
