// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for blog posts.
package slug

import "strings"

// maxLen caps slug length; long titles are cut at a word boundary.
const maxLen = 80

// Generate creates a URL-friendly slug from the given string.
// Example: "Founding a Startup in 2026!" → "founding-a-startup-in-2026"
func Generate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	result := strings.TrimRight(b.String(), "-")
	if len(result) > maxLen {
		result = result[:maxLen]
		if i := strings.LastIndexByte(result, '-'); i > 0 {
			result = result[:i]
		}
	}
	return result
}
