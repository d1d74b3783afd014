package slugify

import (
	"strings"

	"github.com/gosimple/slug"
)

// Make normalises text into a topic/entity-id safe identifier: lower-case
// alphanumerics with single underscores between words, no leading or trailing
// separators. It is a pure function and idempotent.
func Make(text string) string {
	s := strings.ReplaceAll(slug.Make(text), "-", "_")
	// slug.Make collapses dash runs but keeps underscore runs as-is.
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}
