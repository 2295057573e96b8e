package content

import "strings"

// Delimiter joins list items inside the stored content columns. Template
// text must never contain a pipe character, which keeps the encoding
// unambiguous.
const Delimiter = "|||"

// JoinList encodes an ordered list of items into a single stored string.
func JoinList(items []string) string {
	return strings.Join(items, Delimiter)
}

// SplitList decodes a stored string back into its items. An empty string
// decodes to an empty list rather than a single empty item.
func SplitList(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, Delimiter)
}

// SplitTitled splits a why-us segment on its first ":" into a title and a
// description. A segment without ":" becomes a title with an empty
// description.
func SplitTitled(segment string) (title, description string) {
	idx := strings.Index(segment, ":")
	if idx < 0 {
		return strings.TrimSpace(segment), ""
	}
	return strings.TrimSpace(segment[:idx]), strings.TrimSpace(segment[idx+1:])
}
