// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"accelpress/internal/slug"
)

// Descriptors returns the configuration for every content entity served
// through the generic resource layer.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Name:  "services",
			Table: "services",
			Label: "Service",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "description", Name: "description", Required: true},
				{Column: "category", Name: "category"},
				{Column: "duration", Name: "duration"},
				{Column: "icon", Name: "icon"},
				{Column: "features", Name: "features", Kind: KindList},
			},
		},
		{
			Name:  "consulting",
			Table: "consulting",
			Label: "Consulting entry",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "description", Name: "description", Required: true},
				{Column: "icon", Name: "icon"},
				{Column: "features", Name: "features", Kind: KindList},
			},
		},
		{
			Name:  "products",
			Table: "products",
			Label: "Product",
			Fields: []Field{
				{Column: "name", Name: "name", Required: true},
				{Column: "description", Name: "description"},
				{Column: "status", Name: "status"}, // active | inactive | coming-soon
				{Column: "website_url", Name: "websiteUrl"},
				{Column: "image", Name: "image"},
			},
		},
		{
			Name:  "funds",
			Table: "funds",
			Label: "Fund",
			Fields: []Field{
				{Column: "name", Name: "name", Required: true},
				{Column: "description", Name: "description"},
				{Column: "status", Name: "status"}, // fundraising | deployed | closed
				{Column: "target_size", Name: "targetSize"},
				{Column: "vintage", Name: "vintage"},
				{Column: "sectors", Name: "sectors", Kind: KindList},
			},
		},
		{
			Name:  "case-studies",
			Table: "case_studies",
			Label: "Case study",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "client", Name: "client"},
				{Column: "industry", Name: "industry"},
				{Column: "summary", Name: "summary"},
				{Column: "description", Name: "description"},
				{Column: "image", Name: "image"},
				{Column: "results", Name: "results", Kind: KindList},
				{Column: "tags", Name: "tags", Kind: KindList},
				{Column: "testimonial", Name: "testimonial", Kind: KindObject},
			},
		},
		{
			Name:  "blog-posts",
			Table: "blog_posts",
			Label: "Blog post",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "slug", Name: "slug"},
				{Column: "excerpt", Name: "excerpt"},
				{Column: "content", Name: "content", Required: true},
				{Column: "author", Name: "author"},
				{Column: "category", Name: "category"},
				{Column: "image", Name: "image"},
				{Column: "published_at", Name: "publishedAt"},
				{Column: "tags", Name: "tags", Kind: KindList},
			},
			Prepare: func(rec Record) {
				// Generate the slug from the title when the form leaves it blank.
				if s, _ := rec["slug"].(string); s == "" {
					if title, _ := rec["title"].(string); title != "" {
						rec["slug"] = slug.Generate(title)
					}
				}
			},
		},
		{
			Name:    "events",
			Table:   "events",
			Label:   "Event",
			OrderBy: "event_date ASC",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "description", Name: "description"},
				{Column: "location", Name: "location"},
				{Column: "event_date", Name: "eventDate", Required: true},
				{Column: "registration_url", Name: "registrationUrl"},
				{Column: "image", Name: "image"},
			},
		},
		{
			Name:  "resources",
			Table: "resources",
			Label: "Resource",
			Fields: []Field{
				{Column: "title", Name: "title", Required: true},
				{Column: "description", Name: "description"},
				{Column: "category", Name: "category"},
				{Column: "type", Name: "type"},
				{Column: "file_url", Name: "fileUrl"},
				{Column: "link_url", Name: "linkUrl"},
			},
		},
		{
			Name:  "team-members",
			Table: "team_members",
			Label: "Team member",
			Fields: []Field{
				{Column: "name", Name: "name", Required: true},
				{Column: "position", Name: "position", Required: true},
				{Column: "bio", Name: "bio", Required: true},
				{Column: "photo", Name: "photo"},
				{Column: "linkedin_url", Name: "linkedinUrl"},
			},
		},
		{
			Name:  "contact-messages",
			Table: "contact_messages",
			Label: "Contact message",
			Fields: []Field{
				{Column: "name", Name: "name", Required: true},
				{Column: "email", Name: "email", Required: true},
				{Column: "subject", Name: "subject"},
				{Column: "message", Name: "message", Required: true},
				{Column: "status", Name: "status", Default: "unread"}, // unread | read | replied
			},
		},
		{
			Name:  "program-applications",
			Table: "program_applications",
			Label: "Application",
			Fields: []Field{
				{Column: "program_id", Name: "programId", Kind: KindRef},
				{Column: "founder_name", Name: "founderName", Required: true},
				{Column: "email", Name: "email", Required: true},
				{Column: "startup_name", Name: "startupName"},
				{Column: "website", Name: "website"},
				{Column: "pitch", Name: "pitch"},
			},
		},
	}
}
