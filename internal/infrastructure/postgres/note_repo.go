package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/repository"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.StickyNote) (*domain.StickyNote, error) {
	query := `
		INSERT INTO sticky_notes (
			user_id, content, color, text_color,
			position_x, position_y, is_expanded, height
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, content, color, text_color,
		          position_x, position_y, is_expanded, height,
		          created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		note.UserID,
		note.Content,
		note.Color,
		note.TextColor,
		note.PositionX,
		note.PositionY,
		note.IsExpanded,
		note.Height,
	)

	return scanNote(row)
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.StickyNote, error) {
	query := `
		SELECT id, user_id, content, color, text_color,
		       position_x, position_y, is_expanded, height,
		       created_at, updated_at
		FROM sticky_notes
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*domain.StickyNote, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) GetByID(ctx context.Context, id, userID string) (*domain.StickyNote, error) {
	query := `
		SELECT id, user_id, content, color, text_color,
		       position_x, position_y, is_expanded, height,
		       created_at, updated_at
		FROM sticky_notes
		WHERE id = $1 AND user_id = $2`

	return scanNote(r.pool.QueryRow(ctx, query, id, userID))
}

// Update applies a partial field set in a single statement. COALESCE keeps
// unset fields intact while the (id AND user_id) predicate stays atomic.
func (r *NoteRepository) Update(ctx context.Context, id, userID string, input repository.UpdateNoteInput) (*domain.StickyNote, error) {
	query := `
		UPDATE sticky_notes
		SET    content     = COALESCE($3, content),
		       color       = COALESCE($4, color),
		       text_color  = COALESCE($5, text_color),
		       position_x  = COALESCE($6, position_x),
		       position_y  = COALESCE($7, position_y),
		       is_expanded = COALESCE($8, is_expanded),
		       height      = COALESCE($9, height),
		       updated_at  = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, content, color, text_color,
		          position_x, position_y, is_expanded, height,
		          created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, id, userID,
		input.Content,
		input.Color,
		input.TextColor,
		input.PositionX,
		input.PositionY,
		input.IsExpanded,
		input.Height,
	)

	return scanNote(row)
}

func (r *NoteRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM sticky_notes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.StickyNote, error) {
	var n domain.StickyNote
	err := row.Scan(
		&n.ID, &n.UserID, &n.Content, &n.Color, &n.TextColor,
		&n.PositionX, &n.PositionY, &n.IsExpanded, &n.Height,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &n, nil
}
