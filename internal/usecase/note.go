package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/metrics"
	"github.com/stickynotes/sticky-notes-api/internal/repository"
)

type NoteUsecase struct {
	notes repository.NoteRepository
}

func NewNoteUsecase(notes repository.NoteRepository) *NoteUsecase {
	return &NoteUsecase{notes: notes}
}

type CreateNoteInput struct {
	Content    string
	Color      string
	TextColor  string
	PositionX  float64
	PositionY  float64
	IsExpanded bool
	Height     float64
}

// List returns the caller's notes. Anonymous callers get an empty set, not
// an error.
func (u *NoteUsecase) List(ctx context.Context, userID string) ([]*domain.StickyNote, error) {
	if userID == "" {
		return []*domain.StickyNote{}, nil
	}
	notes, err := u.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create persists a note for an authenticated caller. For an anonymous
// caller the validated note is returned without touching storage — guests
// keep their notes client-side only. The returned note then has no id or
// timestamps.
func (u *NoteUsecase) Create(ctx context.Context, userID string, input CreateNoteInput) (*domain.StickyNote, error) {
	if input.Color == "" {
		input.Color = domain.DefaultNoteColor
	}
	if input.TextColor == "" {
		input.TextColor = domain.DefaultNoteTextColor
	}
	if input.Height == 0 {
		input.Height = domain.DefaultNoteHeight
	}

	note := &domain.StickyNote{
		Content:    input.Content,
		Color:      input.Color,
		TextColor:  input.TextColor,
		PositionX:  input.PositionX,
		PositionY:  input.PositionY,
		IsExpanded: input.IsExpanded,
		Height:     input.Height,
	}

	if userID == "" {
		metrics.NotesCreatedTotal.WithLabelValues("ephemeral").Inc()
		return note, nil
	}

	note.UserID = userID
	created, err := u.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	metrics.NotesCreatedTotal.WithLabelValues("persisted").Inc()
	return created, nil
}

func (u *NoteUsecase) Get(ctx context.Context, id, userID string) (*domain.StickyNote, error) {
	if err := checkNoteScope(id, userID); err != nil {
		return nil, err
	}
	note, err := u.notes.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) Update(ctx context.Context, id, userID string, input repository.UpdateNoteInput) (*domain.StickyNote, error) {
	if err := checkNoteScope(id, userID); err != nil {
		return nil, err
	}
	note, err := u.notes.Update(ctx, id, userID, input)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (u *NoteUsecase) Delete(ctx context.Context, id, userID string) error {
	if err := checkNoteScope(id, userID); err != nil {
		return err
	}
	if err := u.notes.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// checkNoteScope rejects anonymous callers and non-UUID ids with the same
// not-found shape an ownership mismatch produces.
func checkNoteScope(id, userID string) error {
	if userID == "" {
		return domain.ErrNoteNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNoteNotFound
	}
	return nil
}
