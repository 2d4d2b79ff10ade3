package domain

import (
	"errors"
	"time"
)

// ErrNoteNotFound covers both true absence and ownership mismatch so the
// two cases are indistinguishable to the caller.
var ErrNoteNotFound = errors.New("note not found")

const (
	DefaultNoteColor     = "#feff9c"
	DefaultNoteTextColor = "#000000"
	DefaultNoteHeight    = 150
)

type StickyNote struct {
	ID         string
	UserID     string
	Content    string
	Color      string
	TextColor  string
	PositionX  float64
	PositionY  float64
	IsExpanded bool
	Height     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
