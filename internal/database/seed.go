package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default admin account and a little sample content so the
// public pages have something to render. No-op if an admin already exists.
func Seed(db *sql.DB) error {
	// Check if any admins exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return fmt.Errorf("seed check admins: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admins (username, email, password_hash)
		VALUES ($1, $2, $3)
	`, "admin", "admin@accelpress.local", string(hash))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Sample programs for the public site.
	_, err = db.Exec(`
		INSERT INTO services (title, description, category, duration, features)
		VALUES
			('Incubation', 'Early-stage program for founders validating an idea.', 'program', '6 months',
			 '["Weekly mentoring", "Office space", "Demo day"]'),
			('Acceleration', 'Growth program for startups with early traction.', 'program', '3 months',
			 '["Investor introductions", "Go-to-market support"]')
	`)
	if err != nil {
		return fmt.Errorf("seed insert services: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO running_text_companies (name, position)
		VALUES ('Northwind', 0), ('Acme Labs', 1), ('Globex', 2)
	`)
	if err != nil {
		return fmt.Errorf("seed insert companies: %w", err)
	}

	slog.Info("database seeded with default admin account",
		"username", "admin",
		"password", "admin",
	)

	return nil
}
