package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already lowercase", "hello world", "hello-world"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"apostrophes dropped", "Don't Panic", "dont-panic"},
		{"multiple spaces collapsed", "a   b    c", "a-b-c"},
		{"leading and trailing space", "  Trimmed Title  ", "trimmed-title"},
		{"hyphens and underscores", "snake_case-title", "snake-case-title"},
		{"digits kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"symbols dropped", "100% & more?", "100-more"},
		{"single word", "Solo", "solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Some Repeatable Title!"
	assert.Equal(t, Slugify(title), Slugify(title))
}
