package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/repository"
	"github.com/stickynotes/sticky-notes-api/internal/usecase"
)

type noteUsecaser interface {
	List(ctx context.Context, userID string) ([]*domain.StickyNote, error)
	Create(ctx context.Context, userID string, input usecase.CreateNoteInput) (*domain.StickyNote, error)
	Get(ctx context.Context, id, userID string) (*domain.StickyNote, error)
	Update(ctx context.Context, id, userID string, input repository.UpdateNoteInput) (*domain.StickyNote, error)
	Delete(ctx context.Context, id, userID string) error
}

type NoteHandler struct {
	noteUsecase noteUsecaser
	logger      *slog.Logger
}

func NewNoteHandler(noteUsecase noteUsecaser, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{noteUsecase: noteUsecase, logger: logger.With("component", "note_handler")}
}

type createNoteRequest struct {
	Content    string  `json:"content"     binding:"required"`
	Color      string  `json:"color"`
	TextColor  string  `json:"text_color"`
	PositionX  float64 `json:"position_x"`
	PositionY  float64 `json:"position_y"`
	IsExpanded bool    `json:"is_expanded"`
	Height     float64 `json:"height"`
}

type updateNoteRequest struct {
	Content    *string  `json:"content"`
	Color      *string  `json:"color"`
	TextColor  *string  `json:"text_color"`
	PositionX  *float64 `json:"position_x"`
	PositionY  *float64 `json:"position_y"`
	IsExpanded *bool    `json:"is_expanded"`
	Height     *float64 `json:"height"`
}

type noteResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Color      string    `json:"color"`
	TextColor  string    `json:"text_color"`
	PositionX  float64   `json:"position_x"`
	PositionY  float64   `json:"position_y"`
	IsExpanded bool      `json:"is_expanded"`
	Height     float64   `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ephemeralNoteResponse echoes a guest note that was validated but never
// persisted, so it carries no id or timestamps.
type ephemeralNoteResponse struct {
	Content    string  `json:"content"`
	Color      string  `json:"color"`
	TextColor  string  `json:"text_color"`
	PositionX  float64 `json:"position_x"`
	PositionY  float64 `json:"position_y"`
	IsExpanded bool    `json:"is_expanded"`
	Height     float64 `json:"height"`
}

func toNoteResponse(n *domain.StickyNote) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Content:    n.Content,
		Color:      n.Color,
		TextColor:  n.TextColor,
		PositionX:  n.PositionX,
		PositionY:  n.PositionY,
		IsExpanded: n.IsExpanded,
		Height:     n.Height,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// GET /sticky-notes/
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteUsecase.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.logger.Error("list notes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

// POST /sticky-notes/
// Authenticated callers get a persisted note back with 201. Anonymous
// callers get their validated fields echoed with 200 and nothing stored.
func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	note, err := h.noteUsecase.Create(c.Request.Context(), userID, usecase.CreateNoteInput{
		Content:    req.Content,
		Color:      req.Color,
		TextColor:  req.TextColor,
		PositionX:  req.PositionX,
		PositionY:  req.PositionY,
		IsExpanded: req.IsExpanded,
		Height:     req.Height,
	})
	if err != nil {
		h.logger.Error("create note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	if userID == "" {
		c.JSON(http.StatusOK, ephemeralNoteResponse{
			Content:    note.Content,
			Color:      note.Color,
			TextColor:  note.TextColor,
			PositionX:  note.PositionX,
			PositionY:  note.PositionY,
			IsExpanded: note.IsExpanded,
			Height:     note.Height,
		})
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

// GET /sticky-notes/:id/
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.noteUsecase.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		h.respondNoteError(c, "get note", err)
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(note))
}

// PUT and PATCH /sticky-notes/:id/
// Both apply partial semantics; a full entity supplied via PUT updates
// every field and is therefore equivalent.
func (h *NoteHandler) Update(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteUsecase.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"),
		repository.UpdateNoteInput{
			Content:    req.Content,
			Color:      req.Color,
			TextColor:  req.TextColor,
			PositionX:  req.PositionX,
			PositionY:  req.PositionY,
			IsExpanded: req.IsExpanded,
			Height:     req.Height,
		})
	if err != nil {
		h.respondNoteError(c, "update note", err)
		return
	}
	c.JSON(http.StatusOK, toNoteResponse(note))
}

// DELETE /sticky-notes/:id/
func (h *NoteHandler) Delete(c *gin.Context) {
	err := h.noteUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		h.respondNoteError(c, "delete note", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) respondNoteError(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrNoteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFound})
		return
	}
	h.logger.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
}
