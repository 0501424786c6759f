package resolve

import (
	"regexp"
	"strings"
)

var (
	fillerPrefix  = regexp.MustCompile(`(?i)^(mod-|mod_|the-|the_)`)
	fillerSuffix  = regexp.MustCompile(`(?i)(-mod|_mod|-fabric|-forge|-neoforge|-quilt)$`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// abbreviations expands well-known mod acronyms.
var abbreviations = map[string]string{
	"jei":   "just enough items",
	"rei":   "roughly enough items",
	"emi":   "emi",
	"nei":   "not enough items",
	"wthit": "what the hell is that",
}

// Variations returns alternate spellings of raw to widen search recall.
// The trimmed input always comes first; the rest are distinct and non-empty,
// in a fixed order.
func Variations(raw string) []string {
	original := strings.TrimSpace(raw)
	if original == "" {
		return []string{}
	}

	out := []string{original}
	seen := map[string]bool{original: true}
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	add(strings.ReplaceAll(original, "-", " "))
	add(strings.ReplaceAll(original, "_", " "))
	add(hyphenate(original))

	cleaned := fillerSuffix.ReplaceAllString(fillerPrefix.ReplaceAllString(original, ""), "")
	if len(cleaned) > 2 {
		add(cleaned)
	}

	add(camelBoundary.ReplaceAllString(original, "$1 $2"))

	if full, ok := abbreviations[strings.ToLower(original)]; ok {
		add(full)
	}

	return out
}

// hyphenate replaces whitespace runs with a single hyphen.
func hyphenate(s string) string {
	return whitespaceRun.ReplaceAllString(s, "-")
}
