package advisor

import "strings"

// Check descriptions embed an HTML "Recommended Action" section. Pull its
// text out; when the section is missing, fall back to the whole description.
func recommendedAction(description string) string {
	const heading = "Recommended Action"

	idx := strings.Index(description, heading)
	if idx < 0 {
		return strings.TrimSpace(stripTags(description))
	}

	rest := description[idx+len(heading):]
	if end := strings.Index(rest, "<h4"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(stripTags(rest))
}

func stripTags(s string) string {
	var (
		out   strings.Builder
		inTag bool
	)
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}
	return out.String()
}
