package modlist

import (
	"regexp"
	"strings"
)

var (
	bulletMarker = regexp.MustCompile(`^[-*•]\s+`)
	quoteEdges   = regexp.MustCompile(`^["']|["']$`)
)

// parseText reads one entry per line, skipping blanks and # or // comments.
func parseText(content string) *ParsedModList {
	queries := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		queries = append(queries, bulletMarker.ReplaceAllString(line, ""))
	}
	return &ParsedModList{Format: FormatText, Queries: nonEmpty(queries)}
}

// parseCSV takes the first field of every row. The first row is a header when
// it contains a comma or the word "mod".
func parseCSV(content string) *ParsedModList {
	lines := nonEmpty(strings.Split(content, "\n"))
	if len(lines) > 0 {
		first := lines[0]
		if strings.Contains(first, ",") || strings.Contains(strings.ToLower(first), "mod") {
			lines = lines[1:]
		}
	}

	queries := make([]string, 0, len(lines))
	for _, line := range lines {
		field, _, _ := strings.Cut(line, ",")
		queries = append(queries, quoteEdges.ReplaceAllString(strings.TrimSpace(field), ""))
	}
	return &ParsedModList{Format: FormatCSV, Queries: nonEmpty(queries)}
}
