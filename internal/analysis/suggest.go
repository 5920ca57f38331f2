package analysis

import (
	"sort"
	"strings"
)

// DefaultSuggestionLimit caps how many "did you mean" candidates a failed
// artist lookup returns.
const DefaultSuggestionLimit = 3

// Suggest finds stored names resembling the input. An exact match wins
// outright. Otherwise the input is split on whitespace and matched
// case-insensitively as substrings; candidates are ranked by how many tokens
// they contain, ties broken toward shorter names. Returns nil when nothing
// matches.
func Suggest(input string, names []string, limit int) []string {
	for _, name := range names {
		if name == input {
			return []string{name}
		}
	}

	tokens := strings.Fields(strings.ToLower(input))
	if len(tokens) == 0 {
		return nil
	}

	type candidate struct {
		name    string
		matches int
	}
	var candidates []candidate
	for _, name := range names {
		lower := strings.ToLower(name)
		matches := 0
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				matches++
			}
		}
		if matches > 0 {
			candidates = append(candidates, candidate{name: name, matches: matches})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].matches != candidates[j].matches {
			return candidates[i].matches > candidates[j].matches
		}
		return len(candidates[i].name) < len(candidates[j].name)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	var suggestions []string
	for _, c := range candidates {
		suggestions = append(suggestions, c.name)
	}
	return suggestions
}
