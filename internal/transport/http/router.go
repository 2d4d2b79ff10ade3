package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/stickynotes/sticky-notes-api/internal/token"
	"github.com/stickynotes/sticky-notes-api/internal/transport/http/handler"
	"github.com/stickynotes/sticky-notes-api/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

// NewRouter wires all routes. Paths keep their trailing slashes because the
// existing frontend calls them that way.
func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, noteHandler *handler.NoteHandler, tokens *token.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Auth flows, open to anonymous callers
	r.POST("/register/", authHandler.Register)
	r.POST("/login/", authHandler.Login)
	r.POST("/logout/", authHandler.Logout)
	r.POST("/token/", authHandler.Login)
	r.POST("/token/refresh/", authHandler.Refresh)
	r.POST("/password-reset/", authHandler.RequestPasswordReset)
	r.POST("/password-reset-confirm/:userID/:token/", authHandler.ConfirmPasswordReset)

	r.GET("/test-protected/", middleware.Auth(tokens), authHandler.TestProtected)

	// Note routes resolve identity when present but accept anonymous
	// callers: list returns an empty set, create echoes without
	// persisting, and detail lookups come back not-found.
	notes := r.Group("/sticky-notes", middleware.AuthOptional(tokens))
	notes.GET("/", noteHandler.List)
	notes.POST("/", noteHandler.Create)
	notes.GET("/:id/", noteHandler.Get)
	notes.PUT("/:id/", noteHandler.Update)
	notes.PATCH("/:id/", noteHandler.Update)
	notes.DELETE("/:id/", noteHandler.Delete)

	return r
}
