package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Standalone "um"/"uh" with an optional trailing comma. Both boundaries
	// matter: "umbrella" must survive.
	fillerWordRegexp = regexp.MustCompile(`(?i)\b(um|uh)\b,?\s*`)

	whitespaceRunRegexp      = regexp.MustCompile(`\s+`)
	trailingTerminatorRegexp = regexp.MustCompile(`[.!?]+$`)
)

// Clean normalizes raw transcript text: trims it, drops filler words,
// collapses whitespace runs and strips a trailing run of sentence terminators.
// Clean is pure and idempotent.
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	cleaned := strings.TrimSpace(text)
	cleaned = fillerWordRegexp.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRunRegexp.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Stripping a terminator run can expose trailing whitespace that hides
	// another run ("umbrella?! ..."), so strip to a fixpoint to keep Clean
	// idempotent.
	for {
		next := strings.TrimSpace(trailingTerminatorRegexp.ReplaceAllString(cleaned, ""))
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}
