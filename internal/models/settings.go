// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Popup is the site-wide welcome popup. A single record (id 1) exists;
// saving it is always an upsert.
type Popup struct {
	Enabled    bool      `json:"enabled"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Image      string    `json:"image"`
	ButtonText string    `json:"buttonText"`
	ButtonURL  string    `json:"buttonUrl"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// StyleSettings holds the site-wide theme configuration. Like Popup it is
// a singleton record.
type StyleSettings struct {
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AccentColor    string    `json:"accentColor"`
	HeroImage      string    `json:"heroImage"`
	HeroTitle      string    `json:"heroTitle"`
	HeroSubtitle   string    `json:"heroSubtitle"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
