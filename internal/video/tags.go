package video

import "strings"

const (
	maxTagsPerVideo = 20
	maxTagLength    = 50
)

// NormalizeTags trims, length-caps and deduplicates raw tag input.
// Oversized tags are truncated rather than rejected; at most
// maxTagsPerVideo survive. The length cap counts runes, matching the
// character semantics of the utf8mb4 tag column.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if runes := []rune(t); len(runes) > maxTagLength {
			t = string(runes[:maxTagLength])
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == maxTagsPerVideo {
			break
		}
	}
	return out
}
