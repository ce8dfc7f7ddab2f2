// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"accelpress/internal/models"
)

// singletonID is the fixed primary key of the popup and style records.
const singletonID = 1

// SettingsStore handles the singleton popup/style records and the ordered
// running-text company list.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore with the given database connection.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// GetPopup returns the popup record. A zeroed record (enabled=false) is
// returned when none has been saved yet, so the public site always has a
// popup state to render.
func (s *SettingsStore) GetPopup(ctx context.Context) (*models.Popup, error) {
	p := &models.Popup{}
	err := s.db.QueryRowContext(ctx, `
		SELECT enabled, title, message, image, button_text, button_url, updated_at
		FROM popup WHERE id = $1
	`, singletonID).Scan(&p.Enabled, &p.Title, &p.Message, &p.Image, &p.ButtonText, &p.ButtonURL, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.Popup{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get popup: %w", err)
	}
	return p, nil
}

// SavePopup upserts the popup record and returns the stored state.
func (s *SettingsStore) SavePopup(ctx context.Context, p *models.Popup) (*models.Popup, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO popup (id, enabled, title, message, image, button_text, button_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			title = EXCLUDED.title,
			message = EXCLUDED.message,
			image = EXCLUDED.image,
			button_text = EXCLUDED.button_text,
			button_url = EXCLUDED.button_url,
			updated_at = NOW()
	`, singletonID, p.Enabled, p.Title, p.Message, p.Image, p.ButtonText, p.ButtonURL)
	if err != nil {
		return nil, fmt.Errorf("save popup: %w", err)
	}
	return s.GetPopup(ctx)
}

// GetStyles returns the style settings record, zeroed when unset.
func (s *SettingsStore) GetStyles(ctx context.Context) (*models.StyleSettings, error) {
	st := &models.StyleSettings{}
	err := s.db.QueryRowContext(ctx, `
		SELECT primary_color, secondary_color, accent_color, hero_image, hero_title, hero_subtitle, updated_at
		FROM style_settings WHERE id = $1
	`, singletonID).Scan(&st.PrimaryColor, &st.SecondaryColor, &st.AccentColor, &st.HeroImage, &st.HeroTitle, &st.HeroSubtitle, &st.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.StyleSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get styles: %w", err)
	}
	return st, nil
}

// SaveStyles upserts the style settings record and returns the stored state.
func (s *SettingsStore) SaveStyles(ctx context.Context, st *models.StyleSettings) (*models.StyleSettings, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO style_settings (id, primary_color, secondary_color, accent_color, hero_image, hero_title, hero_subtitle, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			accent_color = EXCLUDED.accent_color,
			hero_image = EXCLUDED.hero_image,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			updated_at = NOW()
	`, singletonID, st.PrimaryColor, st.SecondaryColor, st.AccentColor, st.HeroImage, st.HeroTitle, st.HeroSubtitle)
	if err != nil {
		return nil, fmt.Errorf("save styles: %w", err)
	}
	return s.GetStyles(ctx)
}

// ListCompanies returns the running-text company names in stored order.
func (s *SettingsStore) ListCompanies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM running_text_companies ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReplaceCompanies swaps the whole running-text list in one cycle.
// The delete and reinsert run in a single transaction so readers never
// observe a partially replaced list.
func (s *SettingsStore) ReplaceCompanies(ctx context.Context, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace companies begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM running_text_companies`); err != nil {
		return fmt.Errorf("replace companies delete: %w", err)
	}

	for i, name := range names {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO running_text_companies (name, position) VALUES ($1, $2)
		`, name, i); err != nil {
			return fmt.Errorf("replace companies insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace companies commit: %w", err)
	}
	return nil
}
