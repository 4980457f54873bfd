package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	apperrors "event-admin-api/core/errors"
	"event-admin-api/modules/attendee/dto"
	"event-admin-api/modules/attendee/entity"

	"github.com/google/uuid"
)

type fakeAttendeeRepo struct {
	attendees   map[uuid.UUID]*entity.Attendee
	clearedRefs []uuid.UUID
	insertCalls int
	failDelete  bool
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{attendees: make(map[uuid.UUID]*entity.Attendee)}
}

func (f *fakeAttendeeRepo) Create(ctx context.Context, attendee *entity.Attendee) (*entity.Attendee, error) {
	f.insertCalls++
	created := *attendee
	created.ID = uuid.New()
	f.attendees[created.ID] = &created
	return &created, nil
}

func (f *fakeAttendeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendee, error) {
	attendee, ok := f.attendees[id]
	if !ok {
		return nil, nil
	}
	copied := *attendee
	return &copied, nil
}

func (f *fakeAttendeeRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Attendee, error) {
	var out []entity.Attendee
	for _, attendee := range f.attendees {
		if attendee.UserID == userID {
			out = append(out, *attendee)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeAttendeeRepo) Update(ctx context.Context, attendee *entity.Attendee) error {
	stored, ok := f.attendees[attendee.ID]
	if !ok {
		return nil
	}
	stored.Name = attendee.Name
	stored.Email = attendee.Email
	stored.TaskLabel = attendee.TaskLabel
	return nil
}

// Delete mirrors the transactional repository: detach and delete land
// together or not at all.
func (f *fakeAttendeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.failDelete {
		return errors.New("delete failed")
	}
	f.clearedRefs = append(f.clearedRefs, id)
	delete(f.attendees, id)
	return nil
}

func seedAttendee(t *testing.T, repo *fakeAttendeeRepo, userID uuid.UUID, name string) *entity.Attendee {
	t.Helper()
	attendee := &entity.Attendee{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Email:  name + "@example.com",
	}
	repo.attendees[attendee.ID] = attendee
	return attendee
}

func TestAttendeeListSortedByName(t *testing.T) {
	repo := newFakeAttendeeRepo()
	svc := NewAttendeeService(repo)
	userID := uuid.New()

	seedAttendee(t, repo, userID, "Zoe")
	seedAttendee(t, repo, userID, "Alice")
	seedAttendee(t, repo, uuid.New(), "Bob") // another user's record

	list, appErr := svc.List(context.Background(), userID)
	if appErr != nil {
		t.Fatalf("List returned error: %v", appErr)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 attendees, got %d", len(list))
	}
	if list[0].Name != "Alice" || list[1].Name != "Zoe" {
		t.Errorf("expected name-ascending order, got %q then %q", list[0].Name, list[1].Name)
	}
}

func TestAttendeeUpdateEditsInPlace(t *testing.T) {
	repo := newFakeAttendeeRepo()
	svc := NewAttendeeService(repo)
	userID := uuid.New()
	attendee := seedAttendee(t, repo, userID, "Original")

	updated, appErr := svc.Update(context.Background(), userID, attendee.ID, &dto.UpdateAttendeeRequest{
		Name:  "Renamed",
		Email: "renamed@example.com",
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
	if len(repo.attendees) != 1 {
		t.Errorf("expected 1 stored attendee, got %d", len(repo.attendees))
	}
}

func TestAttendeeDeleteClearsTaskReferences(t *testing.T) {
	repo := newFakeAttendeeRepo()
	svc := NewAttendeeService(repo)
	userID := uuid.New()
	attendee := seedAttendee(t, repo, userID, "Helper")

	if appErr := svc.Delete(context.Background(), userID, attendee.ID); appErr != nil {
		t.Fatalf("Delete returned error: %v", appErr)
	}
	if len(repo.clearedRefs) != 1 || repo.clearedRefs[0] != attendee.ID {
		t.Error("expected task references cleared before delete")
	}
	if _, ok := repo.attendees[attendee.ID]; ok {
		t.Error("attendee not removed")
	}
}

func TestAttendeeDeleteFailureLeavesReferences(t *testing.T) {
	repo := newFakeAttendeeRepo()
	repo.failDelete = true
	svc := NewAttendeeService(repo)
	userID := uuid.New()
	attendee := seedAttendee(t, repo, userID, "Helper")

	appErr := svc.Delete(context.Background(), userID, attendee.ID)
	if appErr == nil {
		t.Fatal("expected error from failing delete")
	}
	if len(repo.clearedRefs) != 0 {
		t.Errorf("task references were cleared (%d) even though the delete failed", len(repo.clearedRefs))
	}
	if _, ok := repo.attendees[attendee.ID]; !ok {
		t.Error("attendee must survive a failed delete")
	}
}

func TestAttendeeDeleteNotOwned(t *testing.T) {
	repo := newFakeAttendeeRepo()
	svc := NewAttendeeService(repo)
	attendee := seedAttendee(t, repo, uuid.New(), "Theirs")

	appErr := svc.Delete(context.Background(), uuid.New(), attendee.ID)
	if appErr == nil || appErr.Code != apperrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", appErr)
	}
	if len(repo.clearedRefs) != 0 {
		t.Error("no references cleared on a refused delete")
	}
}

func TestAttendeeGetNotFound(t *testing.T) {
	repo := newFakeAttendeeRepo()
	svc := NewAttendeeService(repo)

	_, appErr := svc.Get(context.Background(), uuid.New(), uuid.New())
	if appErr == nil || appErr.Code != apperrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", appErr)
	}
}
