// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Founding a Startup in 2026", "founding-a-startup-in-2026"},
		{"  trims   spaces  ", "trims-spaces"},
		{"Multiple --- hyphens", "multiple-hyphens"},
		{"Ünïcödé gets dropped", "ncd-gets-dropped"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerate_CapsLongTitles(t *testing.T) {
	in := strings.Repeat("word ", 40)
	got := Generate(in)

	if len(got) > maxLen {
		t.Fatalf("len = %d, want <= %d", len(got), maxLen)
	}
	if strings.HasSuffix(got, "-") || !strings.HasSuffix(got, "word") {
		t.Errorf("cut mid-word: %q", got)
	}
}
