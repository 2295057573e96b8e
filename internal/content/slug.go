package content

import "strings"

// Slugify lowercases s and collapses every run of characters outside
// [a-z0-9] into a single hyphen. The result never starts or ends with a
// hyphen and never contains two hyphens in a row, so it is idempotent.
func Slugify(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// PageSlug derives the canonical slug for a generated page from the area
// name and the purpose. Empty parts are skipped so degenerate input still
// yields a valid slug.
func PageSlug(areaName, purpose string) string {
	parts := make([]string, 0, 2)
	for _, raw := range []string{areaName, purpose} {
		if slug := Slugify(raw); slug != "" {
			parts = append(parts, slug)
		}
	}
	return strings.Join(parts, "-")
}
