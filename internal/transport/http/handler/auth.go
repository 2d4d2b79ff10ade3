package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/token"
	"github.com/stickynotes/sticky-notes-api/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, userID, resetToken, newPassword string) error
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// POST /register/
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrDuplicateEmail.Error()})
			return
		}
		h.logger.Error("register", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /login/ and POST /token/
// Both mint the same pair; the access token carries the custom
// email/username claims.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": errInvalidCredentials})
			return
		}
		h.logger.Error("login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// POST /token/refresh/
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := h.authUsecase.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": errTokenInvalid})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// POST /logout/
// Tokens are stateless, so nothing is revoked server-side; previously
// issued tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"detail": detailLoggedOut})
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /password-reset/
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authUsecase.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailUnknownEmail})
			return
		}
		if errors.Is(err, domain.ErrEmailDelivery) {
			h.logger.Error("password reset email", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": detailResetFailed})
			return
		}
		h.logger.Error("password reset request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": detailResetSent})
}

type passwordResetConfirmRequest struct {
	NewPassword string `json:"new_password"`
}

// POST /password-reset-confirm/:userID/:token/
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req passwordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": detailPasswordMissing})
		return
	}

	err := h.authUsecase.ConfirmPasswordReset(
		c.Request.Context(),
		c.Param("userID"),
		c.Param("token"),
		req.NewPassword,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailUserNotFound})
		case errors.Is(err, domain.ErrTokenInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailInvalidToken})
		default:
			h.logger.Error("password reset confirm", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": detailResetDone})
}

// GET /test-protected/
func (h *AuthHandler) TestProtected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have accessed a protected view!"})
}
