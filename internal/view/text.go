package view

import "strings"

// Ellipsis marks truncated text.
const Ellipsis = "..."

// TitleWordLimit is how many title words a card shows.
const TitleWordLimit = 5

// TruncateWords keeps the first limit whitespace-separated words of s and
// appends Ellipsis when anything was dropped. Text within the limit is
// returned unchanged.
func TruncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return s
	}
	return strings.Join(words[:limit], " ") + Ellipsis
}
