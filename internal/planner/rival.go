package planner

import (
	"regexp"
	"strings"

	"clubmanager/internal/domain"
)

// rivalSep matches the connectors people put before an opponent name in a
// match title ("Partido vs Boca", "contra San Lorenzo"). The last
// occurrence wins so titles like "repaso vs presión alta vs Racing" still
// resolve to the trailing name.
var (
	rivalSep       = regexp.MustCompile(`(?i)\b(?:vs\.?|v\.|contra)\s+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Resolution is the outcome of a rival lookup. Found=false is an ordinary
// result, not an error: the heuristic is intentionally lossy and callers
// decide whether a miss matters.
type Resolution struct {
	Opponent  *domain.Opponent
	Candidate string // the extracted name the registry was probed with
	Found     bool
}

// ResolveRival extracts a probable opponent name from free text and
// resolves it against the club's opponent registry. Matching is exact
// (case-insensitive) first, then substring containment; the registry is
// assumed stably ordered (alphabetical) so the first hit is deterministic.
// Empty or malformed input yields a not-found result, never an error.
func ResolveRival(text string, registry []domain.Opponent) Resolution {
	candidate := extractCandidate(text)
	if candidate == "" {
		return Resolution{Candidate: candidate}
	}

	for i := range registry {
		if strings.EqualFold(registry[i].Name, candidate) {
			return Resolution{Opponent: &registry[i], Candidate: candidate, Found: true}
		}
	}

	lower := strings.ToLower(candidate)
	for i := range registry {
		name := strings.ToLower(registry[i].Name)
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return Resolution{Opponent: &registry[i], Candidate: candidate, Found: true}
		}
	}

	return Resolution{Candidate: candidate}
}

// extractCandidate collapses whitespace, takes the text after the last
// vs/contra connector (or the whole text when none is present) and strips
// leading dash/colon decorations and parentheses.
func extractCandidate(text string) string {
	text = strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	candidate := text
	if locs := rivalSep.FindAllStringIndex(text, -1); locs != nil {
		candidate = text[locs[len(locs)-1][1]:]
	}

	candidate = strings.TrimLeft(candidate, "-–—: ")
	candidate = strings.Trim(candidate, "()")
	return strings.TrimSpace(candidate)
}
