package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "hyphenated slug",
			input: "fabric-api",
			want:  []string{"fabric-api", "fabric api"},
		},
		{
			name:  "spaced title",
			input: "Fabric API",
			want:  []string{"Fabric API", "Fabric-API"},
		},
		{
			name:  "camel case",
			input: "JustEnoughItems",
			want:  []string{"JustEnoughItems", "Just Enough Items"},
		},
		{
			name:  "abbreviation",
			input: "JEI",
			want:  []string{"JEI", "just enough items"},
		},
		{
			name:  "abbreviation mapping to itself",
			input: "emi",
			want:  []string{"emi"},
		},
		{
			name:  "loader suffix stripped",
			input: "sodium-fabric",
			want:  []string{"sodium-fabric", "sodium fabric", "sodium"},
		},
		{
			name:  "suffix match is case-insensitive",
			input: "Iris-Quilt",
			want:  []string{"Iris-Quilt", "Iris Quilt", "Iris"},
		},
		{
			name:  "short cleaned result dropped",
			input: "mod-xy",
			want:  []string{"mod-xy", "mod xy"},
		},
		{
			name:  "prefix and underscores",
			input: "the_twilight forest",
			want:  []string{"the_twilight forest", "the twilight forest", "the_twilight-forest", "twilight forest"},
		},
		{
			name:  "input is trimmed",
			input: "  create  ",
			want:  []string{"create"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Variations(tt.input))
		})
	}
}

func TestVariations_Properties(t *testing.T) {
	inputs := []string{
		"sodium", "fabric-api", "Mod_Menu", "the-mod", "JEI", "x", "ab",
		"  spaced   out  ", "NotEnoughItems-forge", "mod_the_mod", "wthit",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := Variations(in)
			require.NotEmpty(t, got)
			assert.Equal(t, strings.TrimSpace(in), got[0])

			seen := make(map[string]bool)
			for _, v := range got {
				assert.NotEmpty(t, v)
				assert.False(t, seen[v], "duplicate variation %q", v)
				seen[v] = true
			}

			assert.Equal(t, got, Variations(in), "must be deterministic")
		})
	}
}
