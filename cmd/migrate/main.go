// migrate applies all pending schema migrations.
// Run: DATABASE_URL=postgres://... go run ./cmd/migrate
package main

import (
	"log"
	"os"

	"github.com/stickynotes/sticky-notes-api/internal/infrastructure/postgres"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if err := postgres.RunMigrations(dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("migrations applied")
}
