package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tugaskita/tugaskita/config"
	"github.com/tugaskita/tugaskita/pkg/helpers"
)

// Seeds one admin, two regular users, and a task per user for local
// development. Idempotent on email.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := []struct {
		email, name, role, password string
	}{
		{"admin@tugaskita.local", "Admin", "admin", "adminpass123"},
		{"user1@tugaskita.local", "User One", "user", "password123"},
		{"user2@tugaskita.local", "User Two", "user", "password123"},
	}

	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, password_hash, name, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.email, hash, u.name, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s role=%s password=%s\n", id, u.email, u.role, u.password)

		if u.role != "user" {
			continue
		}
		taskID := uuid.NewString()
		now := time.Now().UTC()
		if _, err := db.Exec(`
			INSERT INTO tasks (id, owner_email, owner_name, task_date, title, subject, description, due_date, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, taskID, u.email, u.name, now, "Sample task for "+u.name, "General", "", now.Add(7*24*time.Hour), "Pending", now); err != nil {
			log.Fatalf("failed to seed task for %s: %v", u.email, err)
		}
		fmt.Printf("seeded task: id=%s owner=%s\n", taskID, u.email)
	}
}
