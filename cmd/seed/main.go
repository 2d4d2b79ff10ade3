// seed inserts a dev user and a board of sticky notes into the local
// database. Run: DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedUsername = "seed"
	seedPassword = "seed-password"
)

type noteSpec struct {
	content   string
	color     string
	textColor string
	x, y      float64
	expanded  bool
	height    float64
}

var notes = []noteSpec{
	{"Buy groceries", "#feff9c", "#000000", 40, 60, false, 150},
	{"Call the dentist", "#7afcff", "#000000", 260, 60, false, 150},
	{"Ship the release on Friday", "#ff7eb9", "#000000", 480, 60, true, 220},
	{"Ideas:\n- dark mode\n- drag handles", "#feff9c", "#333333", 40, 300, true, 260},
	{"Water the plants", "#7afcff", "#000000", 260, 300, false, 150},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user, err := userRepo.Create(ctx, &domain.User{
		Email:        seedEmail,
		Username:     seedUsername,
		PasswordHash: string(hash),
	})
	if errors.Is(err, domain.ErrDuplicateEmail) {
		user, err = userRepo.FindByEmail(ctx, seedEmail)
	}
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	for i, spec := range notes {
		_, err := noteRepo.Create(ctx, &domain.StickyNote{
			UserID:     user.ID,
			Content:    spec.content,
			Color:      spec.color,
			TextColor:  spec.textColor,
			PositionX:  spec.x,
			PositionY:  spec.y,
			IsExpanded: spec.expanded,
			Height:     spec.height,
		})
		if err != nil {
			log.Fatalf("seed note %d: %v", i+1, err)
		}
	}

	fmt.Printf("seeded user %s (%s) with %d notes\n", seedEmail, user.ID, len(notes))
	fmt.Printf("login with password %q\n", seedPassword)
}
