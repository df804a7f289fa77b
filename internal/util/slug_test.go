package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello, World! 2025", want: "hello-world-2025"},
		{in: "  --Salud   Mental--  ", want: "salud-mental"},
		{in: "Nutrición y ejercicio", want: "nutricion-y-ejercicio"},
		{in: "¿Qué es la presión arterial?", want: "que-es-la-presion-arterial"},
		{in: "!!!", want: ""},
		{in: "already-a-slug", want: "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	used := map[string]bool{"hello-world": true, "hello-world-7": true}
	taken := func(s string) bool { return used[s] }

	assert.Equal(t, "fresh-title", UniqueSlug("Fresh Title", 7, taken))
	assert.Equal(t, "hello-world-7-2", UniqueSlug("Hello World", 7, taken))
	assert.Equal(t, "hello-world-8", UniqueSlug("Hello World", 8, taken))
	assert.Equal(t, "post-9", UniqueSlug("¿?", 9, taken))
}

func TestUniqueSlug_FallbackAvoidsCollisions(t *testing.T) {
	used := map[string]bool{"post-4": true, "post-4-4": true}
	taken := func(s string) bool { return used[s] }

	assert.Equal(t, "post-4-4-2", UniqueSlug("!!!", 4, taken))
	assert.Equal(t, "post-5", UniqueSlug("", 5, taken))
}
