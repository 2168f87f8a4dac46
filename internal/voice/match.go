package voice

import "strings"

// MatchTitle resolves a spoken fragment to one of the given titles using
// bidirectional case-folded substring containment: a title matches when it
// contains the fragment or the fragment contains it. The tie-break is
// deterministic: when several titles match, the first one in the given order
// wins (callers pass lists in newest-first order). The match count is
// returned so callers can tell the user when the choice was ambiguous.
//
// Returns idx -1 when nothing matched.
func MatchTitle(spoken string, titles []string) (idx, matches int) {
	spoken = strings.ToLower(strings.TrimSpace(spoken))
	idx = -1
	if spoken == "" {
		return idx, 0
	}

	for i, title := range titles {
		folded := strings.ToLower(title)
		if folded == "" {
			continue
		}
		if strings.Contains(folded, spoken) || strings.Contains(spoken, folded) {
			if idx == -1 {
				idx = i
			}
			matches++
		}
	}
	return idx, matches
}
