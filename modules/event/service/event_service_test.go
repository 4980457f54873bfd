package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "event-admin-api/core/errors"
	"event-admin-api/modules/event/dto"
	"event-admin-api/modules/event/entity"

	"github.com/google/uuid"
)

var errDB = errors.New("db failure")

type fakeEventRepo struct {
	events      map[uuid.UUID]*entity.Event
	taskCounts  map[uuid.UUID]int
	insertCalls int
	failList    bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:     make(map[uuid.UUID]*entity.Event),
		taskCounts: make(map[uuid.UUID]int),
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	f.insertCalls++
	created := *event
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.events[created.ID] = &created
	return &created, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	if f.failList {
		return nil, errDB
	}
	var out []entity.Event
	for _, event := range f.events {
		if event.UserID == userID {
			out = append(out, *event)
		}
	}
	// date ascending, the repository's fixed sort
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.Before(out[i].Date) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error {
	stored, ok := f.events[event.ID]
	if !ok {
		return errDB
	}
	stored.Name = event.Name
	stored.Description = event.Description
	stored.Location = event.Location
	stored.Date = event.Date
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) CountTasksByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	return f.taskCounts[eventID], nil
}

func seedEvent(t *testing.T, repo *fakeEventRepo, userID uuid.UUID, name string, date time.Time) *entity.Event {
	t.Helper()
	event := &entity.Event{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Location: "Main hall",
		Date:     date,
	}
	repo.events[event.ID] = event
	return event
}

func TestEventCreateAndList(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	userID := uuid.New()

	_, appErr := svc.Create(context.Background(), userID, &dto.CreateEventRequest{
		Name:     "Launch party",
		Location: "Rooftop",
		Date:     "2026-09-20T18:00",
	})
	if appErr != nil {
		t.Fatalf("Create returned error: %v", appErr)
	}

	seedEvent(t, repo, userID, "Earlier meetup", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	list, appErr := svc.List(context.Background(), userID)
	if appErr != nil {
		t.Fatalf("List returned error: %v", appErr)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 events, got %d", len(list))
	}
	if list[0].Name != "Earlier meetup" {
		t.Errorf("expected date-ascending order, first was %q", list[0].Name)
	}
}

func TestEventCreateInvalidDate(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Name:     "Bad date",
		Location: "Nowhere",
		Date:     "next tuesday",
	})
	if appErr == nil {
		t.Fatal("expected error for unparseable date")
	}
	if appErr.Code != apperrors.ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %s", appErr.Code)
	}
	if repo.insertCalls != 0 {
		t.Errorf("expected no insert on invalid input, got %d", repo.insertCalls)
	}
}

func TestEventUpdateEditsInPlace(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	userID := uuid.New()
	event := seedEvent(t, repo, userID, "Original", time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))

	updated, appErr := svc.Update(context.Background(), userID, event.ID, &dto.UpdateEventRequest{
		Name:     "Renamed",
		Location: "Annex",
		Date:     "2026-10-02T09:00",
	})
	if appErr != nil {
		t.Fatalf("Update returned error: %v", appErr)
	}
	if updated.Name != "Renamed" {
		t.Errorf("expected name Renamed, got %q", updated.Name)
	}
	if repo.insertCalls != 0 {
		t.Errorf("update must not insert, saw %d inserts", repo.insertCalls)
	}
	if len(repo.events) != 1 {
		t.Errorf("expected 1 stored event after update, got %d", len(repo.events))
	}
	if repo.events[event.ID].Name != "Renamed" {
		t.Errorf("stored row not updated, name is %q", repo.events[event.ID].Name)
	}
}

func TestEventUpdateNotOwned(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	event := seedEvent(t, repo, uuid.New(), "Theirs", time.Now())

	_, appErr := svc.Update(context.Background(), uuid.New(), event.ID, &dto.UpdateEventRequest{
		Name:     "Hijack",
		Location: "X",
		Date:     "2026-01-01",
	})
	if appErr == nil || appErr.Code != apperrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", appErr)
	}
}

func TestEventDeleteBlockedByTasks(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	userID := uuid.New()
	event := seedEvent(t, repo, userID, "Referenced", time.Now())
	repo.taskCounts[event.ID] = 2

	appErr := svc.Delete(context.Background(), userID, event.ID)
	if appErr == nil || appErr.Code != apperrors.ErrConflict {
		t.Fatalf("expected ErrConflict while tasks reference the event, got %v", appErr)
	}
	if _, ok := repo.events[event.ID]; !ok {
		t.Error("event must survive a blocked delete")
	}

	repo.taskCounts[event.ID] = 0
	if appErr := svc.Delete(context.Background(), userID, event.ID); appErr != nil {
		t.Fatalf("Delete returned error: %v", appErr)
	}
	if _, ok := repo.events[event.ID]; ok {
		t.Error("event not removed")
	}
}

func TestEventDeleteNotFound(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	appErr := svc.Delete(context.Background(), uuid.New(), uuid.New())
	if appErr == nil || appErr.Code != apperrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", appErr)
	}
}

func TestEventListFailureReturnsNothing(t *testing.T) {
	repo := newFakeEventRepo()
	repo.failList = true
	svc := NewEventService(repo)

	list, appErr := svc.List(context.Background(), uuid.New())
	if appErr == nil {
		t.Fatal("expected error from failing repository")
	}
	if list != nil {
		t.Error("no partial data on failure")
	}
}
