package repository

import (
	"context"
	"database/sql"

	"event-admin-api/core/database"
	"event-admin-api/core/logger"
	"event-admin-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event database operations.
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTasksByEventID(ctx context.Context, eventID uuid.UUID) (int, error)
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (user_id, name, description, location, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, description, location, date, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.UserID, event.Name, event.Description, event.Location, event.Date)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, user_id, name, description, location, date, created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}

	return &event, nil
}

// ListByUserID returns the owning user's events ordered by date ascending,
// the page's fixed sort key.
func (r *EventRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, user_id, name, description, location, date, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY date ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("EventRepository:ListByUserID", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, location = $4, date = $5, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.Description, event.Location, event.Date)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}

	return nil
}

// CountTasksByEventID reports how many tasks still reference the event.
func (r *EventRepository) CountTasksByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE event_id = $1`

	var count int
	err := r.DB.GetContext(ctx, &count, query, eventID)
	if err != nil {
		logger.Error("EventRepository:CountTasksByEventID", err)
		return 0, err
	}

	return count, nil
}
