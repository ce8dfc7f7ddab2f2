// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
	"time"

	"accelpress/internal/store"
)

func TestResource_CreateService(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "services")

	rec, body := doJSON(t, r, http.MethodPost, "/api/services", map[string]any{
		"title":       "Incubation",
		"description": "Idea-stage program",
		"duration":    "6mo",
		"features":    []string{"a", "b"},
	})
	statusOrFatal(t, rec, http.StatusCreated)

	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("id = %v", body["id"])
	}
	t.Cleanup(func() { deleteRow(t, db, "services", id) })

	if !reflect.DeepEqual(body["features"], []any{"a", "b"}) {
		t.Errorf("features = %v", body["features"])
	}

	// The list includes the new row with features intact.
	listRec, _ := doJSON(t, r, http.MethodGet, "/api/services", nil)
	statusOrFatal(t, listRec, http.StatusOK)

	var list []map[string]any
	if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	found := false
	for _, item := range list {
		if item["id"] == id {
			found = true
			if !reflect.DeepEqual(item["features"], []any{"a", "b"}) {
				t.Errorf("listed features = %v", item["features"])
			}
		}
	}
	if !found {
		t.Error("created row missing from list")
	}
}

func TestResource_CreateContactMessageDefaultsStatus(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "contact-messages")

	rec, body := doJSON(t, r, http.MethodPost, "/api/contact-messages", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Partnership",
		"message": "Let's talk.",
	})
	statusOrFatal(t, rec, http.StatusCreated)
	t.Cleanup(func() { deleteRow(t, db, "contact_messages", body["id"].(string)) })

	if body["status"] != "unread" {
		t.Errorf("status = %v, want unread", body["status"])
	}
}

func TestResource_CreateMissingRequiredField(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "team-members")

	rec, body := doJSON(t, r, http.MethodPost, "/api/team-members", map[string]any{
		"name": "No Position",
	})
	statusOrFatal(t, rec, http.StatusBadRequest)
	if body["error"] == "" {
		t.Error("missing error message")
	}
}

func TestResource_DeleteMissingFund(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "funds")

	rec, body := doJSON(t, r, http.MethodDelete, "/api/funds/999999999", nil)
	statusOrFatal(t, rec, http.StatusNotFound)
	if body["error"] != "Fund not found" {
		t.Errorf("error = %v, want \"Fund not found\"", body["error"])
	}
}

func TestResource_UpdateMissingRowIs404(t *testing.T) {
	db := testDB(t)

	// The not-found contract is uniform across entities.
	for _, name := range []string{"services", "products", "events"} {
		_, r := resourceFor(t, db, name)
		rec, _ := doJSON(t, r, http.MethodPut, "/api/"+name+"/999999999", map[string]any{
			"title":       "ghost",
			"name":        "ghost",
			"description": "ghost",
			"content":     "ghost",
			"eventDate":   "2026-01-01",
		})
		statusOrFatal(t, rec, http.StatusNotFound)
	}
}

func TestResource_GetNonNumericIDIs404(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "products")

	rec, _ := doJSON(t, r, http.MethodGet, "/api/products/abc", nil)
	statusOrFatal(t, rec, http.StatusNotFound)
}

func TestResource_InvalidBodyIs400(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "services")

	// An empty body fails to decode.
	rec, _ := doJSON(t, r, http.MethodPost, "/api/services", nil)
	statusOrFatal(t, rec, http.StatusBadRequest)
}

func TestResource_BlogPostSlugGenerated(t *testing.T) {
	db := testDB(t)
	_, r := resourceFor(t, db, "blog-posts")

	rec, body := doJSON(t, r, http.MethodPost, "/api/blog-posts", map[string]any{
		"title":   "Why Founders Need Focus!",
		"content": "Long form text.",
	})
	statusOrFatal(t, rec, http.StatusCreated)
	t.Cleanup(func() { deleteRow(t, db, "blog_posts", body["id"].(string)) })

	if body["slug"] != "why-founders-need-focus" {
		t.Errorf("slug = %v", body["slug"])
	}
}

func TestResource_AfterCreateHookRuns(t *testing.T) {
	db := testDB(t)
	h, r := resourceFor(t, db, "contact-messages")

	notified := make(chan store.Record, 1)
	h.AfterCreate = func(ctx context.Context, rec store.Record) {
		notified <- rec
	}

	rec, body := doJSON(t, r, http.MethodPost, "/api/contact-messages", map[string]any{
		"name":    "Hook",
		"email":   "hook@example.com",
		"message": "ping",
	})
	statusOrFatal(t, rec, http.StatusCreated)
	t.Cleanup(func() { deleteRow(t, db, "contact_messages", body["id"].(string)) })

	select {
	case got := <-notified:
		if got["email"] != "hook@example.com" {
			t.Errorf("hook record = %v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("AfterCreate hook never ran")
	}
}
