// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"reflect"
	"testing"

	"accelpress/internal/models"
)

func TestSettingsStore_PopupUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)
	ctx := context.Background()

	saved, err := s.SavePopup(ctx, &models.Popup{
		Enabled: true,
		Title:   "Applications open",
		Message: "Batch 12 applications close Friday.",
	})
	if err != nil {
		t.Fatalf("SavePopup: %v", err)
	}
	if !saved.Enabled || saved.Title != "Applications open" {
		t.Errorf("saved = %+v", saved)
	}

	// Saving again replaces the single record rather than adding one.
	saved, err = s.SavePopup(ctx, &models.Popup{Enabled: false, Title: "Closed"})
	if err != nil {
		t.Fatalf("SavePopup second: %v", err)
	}
	if saved.Enabled || saved.Title != "Closed" {
		t.Errorf("second save = %+v", saved)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM popup").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("popup rows = %d, want 1", count)
	}
}

func TestSettingsStore_StylesUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)
	ctx := context.Background()

	saved, err := s.SaveStyles(ctx, &models.StyleSettings{
		PrimaryColor: "#102a43",
		HeroTitle:    "Build what matters",
	})
	if err != nil {
		t.Fatalf("SaveStyles: %v", err)
	}
	if saved.PrimaryColor != "#102a43" || saved.HeroTitle != "Build what matters" {
		t.Errorf("saved = %+v", saved)
	}
}

func TestSettingsStore_ReplaceCompanies(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)
	ctx := context.Background()

	if err := s.ReplaceCompanies(ctx, []string{"Old One", "Old Two", "Old Three"}); err != nil {
		t.Fatalf("ReplaceCompanies: %v", err)
	}
	if err := s.ReplaceCompanies(ctx, []string{"A", "B"}); err != nil {
		t.Fatalf("ReplaceCompanies second: %v", err)
	}

	// No residue from the previous list, order preserved.
	names, err := s.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"A", "B"}) {
		t.Errorf("companies = %v, want [A B]", names)
	}
}
