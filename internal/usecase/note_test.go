package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/repository"
	"github.com/stickynotes/sticky-notes-api/internal/usecase"
)

type fakeNoteRepo struct {
	create     func(ctx context.Context, note *domain.StickyNote) (*domain.StickyNote, error)
	listByUser func(ctx context.Context, userID string) ([]*domain.StickyNote, error)
	getByID    func(ctx context.Context, id, userID string) (*domain.StickyNote, error)
	update     func(ctx context.Context, id, userID string, input repository.UpdateNoteInput) (*domain.StickyNote, error)
	delete     func(ctx context.Context, id, userID string) error
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *domain.StickyNote) (*domain.StickyNote, error) {
	return r.create(ctx, note)
}

func (r *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]*domain.StickyNote, error) {
	return r.listByUser(ctx, userID)
}

func (r *fakeNoteRepo) GetByID(ctx context.Context, id, userID string) (*domain.StickyNote, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeNoteRepo) Update(ctx context.Context, id, userID string, input repository.UpdateNoteInput) (*domain.StickyNote, error) {
	return r.update(ctx, id, userID, input)
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}

const (
	noteOwnerID = "7b7e2f10-5f52-4f0e-9c11-3a8d5e0b2c21"
	someNoteID  = "c1f5a9d2-8f3b-4e6a-b7c8-9d0e1f2a3b4c"
)

func TestListNotes_AnonymousGetsEmptySetWithoutStorageCall(t *testing.T) {
	repo := &fakeNoteRepo{
		listByUser: func(_ context.Context, _ string) ([]*domain.StickyNote, error) {
			t.Fatal("repo called for anonymous list")
			return nil, nil
		},
	}

	notes, err := usecase.NewNoteUsecase(repo).List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Errorf("want empty non-nil slice, got %v", notes)
	}
}

func TestCreateNote_AnonymousEchoesWithoutPersisting(t *testing.T) {
	repo := &fakeNoteRepo{
		create: func(_ context.Context, _ *domain.StickyNote) (*domain.StickyNote, error) {
			t.Fatal("repo called for anonymous create")
			return nil, nil
		},
	}

	note, err := usecase.NewNoteUsecase(repo).Create(context.Background(), "", usecase.CreateNoteInput{
		Content: "guest note",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.ID != "" {
		t.Errorf("anonymous note got an id: %q", note.ID)
	}
	if note.Content != "guest note" {
		t.Errorf("content = %q, want %q", note.Content, "guest note")
	}
	if note.Color != domain.DefaultNoteColor {
		t.Errorf("color = %q, want default %q", note.Color, domain.DefaultNoteColor)
	}
}

func TestCreateNote_AuthenticatedPersistsWithOwnerAndDefaults(t *testing.T) {
	var captured *domain.StickyNote
	repo := &fakeNoteRepo{
		create: func(_ context.Context, note *domain.StickyNote) (*domain.StickyNote, error) {
			captured = note
			created := *note
			created.ID = someNoteID
			return &created, nil
		},
	}

	note, err := usecase.NewNoteUsecase(repo).Create(context.Background(), noteOwnerID, usecase.CreateNoteInput{
		Content:   "todo",
		PositionX: 12,
		PositionY: 34,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.UserID != noteOwnerID {
		t.Errorf("owner = %q, want %q", captured.UserID, noteOwnerID)
	}
	if captured.TextColor != domain.DefaultNoteTextColor {
		t.Errorf("text color = %q, want default", captured.TextColor)
	}
	if captured.Height != domain.DefaultNoteHeight {
		t.Errorf("height = %v, want default", captured.Height)
	}
	if note.ID != someNoteID {
		t.Errorf("id = %q, want %q", note.ID, someNoteID)
	}
}

func TestGetNote_AnonymousSeesNotFound(t *testing.T) {
	repo := &fakeNoteRepo{
		getByID: func(_ context.Context, _, _ string) (*domain.StickyNote, error) {
			t.Fatal("repo called for anonymous get")
			return nil, nil
		},
	}

	_, err := usecase.NewNoteUsecase(repo).Get(context.Background(), someNoteID, "")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Errorf("want ErrNoteNotFound, got %v", err)
	}
}

func TestGetNote_NonUUIDIDSeesNotFound(t *testing.T) {
	repo := &fakeNoteRepo{
		getByID: func(_ context.Context, _, _ string) (*domain.StickyNote, error) {
			t.Fatal("repo called for malformed id")
			return nil, nil
		},
	}

	_, err := usecase.NewNoteUsecase(repo).Get(context.Background(), "42", noteOwnerID)
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Errorf("want ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNote_ScopesLookupToOwner(t *testing.T) {
	var gotID, gotUserID string
	repo := &fakeNoteRepo{
		update: func(_ context.Context, id, userID string, _ repository.UpdateNoteInput) (*domain.StickyNote, error) {
			gotID, gotUserID = id, userID
			return &domain.StickyNote{ID: id, UserID: userID}, nil
		},
	}

	_, err := usecase.NewNoteUsecase(repo).Update(context.Background(), someNoteID, noteOwnerID, repository.UpdateNoteInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != someNoteID || gotUserID != noteOwnerID {
		t.Errorf("scoped to (%q, %q), want (%q, %q)", gotID, gotUserID, someNoteID, noteOwnerID)
	}
}

func TestDeleteNote_MismatchIsNotFound(t *testing.T) {
	repo := &fakeNoteRepo{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrNoteNotFound
		},
	}

	err := usecase.NewNoteUsecase(repo).Delete(context.Background(), someNoteID, noteOwnerID)
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Errorf("want ErrNoteNotFound, got %v", err)
	}
}
