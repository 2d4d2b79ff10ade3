package repository

import (
	"context"

	"github.com/stickynotes/sticky-notes-api/internal/domain"
)

// UpdateNoteInput carries a partial field set; nil means "leave unchanged".
type UpdateNoteInput struct {
	Content    *string
	Color      *string
	TextColor  *string
	PositionX  *float64
	PositionY  *float64
	IsExpanded *bool
	Height     *float64
}

// Usecases depend on the interface, not the pgx implementation, so tests
// can pass a fake and the DB can be swapped without touching them.
// Every read/write on a single note takes (id, userID) so ownership is
// enforced inside the query predicate itself.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.StickyNote) (*domain.StickyNote, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.StickyNote, error)
	GetByID(ctx context.Context, id, userID string) (*domain.StickyNote, error)
	Update(ctx context.Context, id, userID string, input UpdateNoteInput) (*domain.StickyNote, error)
	Delete(ctx context.Context, id, userID string) error
}
