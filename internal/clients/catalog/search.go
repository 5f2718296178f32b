package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rubika-tools/planner-api/internal/errors"
)

// searchMatch pairs a catalog entry with its match quality during ranking.
type searchMatch struct {
	entry nameEntry
	score float64
}

func (c *client) SearchByName(_ context.Context, query string) ([]SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.InvalidArgument("query is required")
	}
	qTokens := strings.Fields(q)

	st := c.current()
	var matches []searchMatch
	for _, entry := range st.names {
		score, ok := matchScore(entry, q, qTokens)
		if !ok {
			continue
		}
		matches = append(matches, searchMatch{entry: entry, score: score})
	}

	// The name index is pre-sorted, so equal scores fall back to
	// alphabetical order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > c.searchLimit {
		matches = matches[:c.searchLimit]
	}

	out := make([]SearchResult, len(matches))
	for i, m := range matches {
		out[i] = SearchResult{
			Kind: m.entry.kind,
			AOID: m.entry.aoid,
			Name: m.entry.name,
			QL:   m.entry.ql,
		}
	}
	return out, nil
}

// matchScore rates how well an entry matches the query. Whole-string hits
// score in a band of their own above any token match, so "reet" lists every
// Reet gun before fuzzy candidates. Token matching requires every query
// token to land on some name token within the typo tolerance.
func matchScore(entry nameEntry, q string, qTokens []string) (float64, bool) {
	switch {
	case entry.folded == q:
		return 2.0, true
	case strings.HasPrefix(entry.folded, q):
		return 1.8, true
	case strings.Contains(entry.folded, q):
		return 1.6, true
	}

	total := 0.0
	for _, qt := range qTokens {
		best := -1.0
		for _, nt := range entry.tokens {
			var score float64
			switch {
			case qt == nt:
				score = 1.0
			case strings.HasPrefix(nt, qt) && len(qt) >= 2:
				score = 0.9
			default:
				dist := levenshtein.ComputeDistance(qt, nt)
				if dist > levenshteinLimit(len(nt)) {
					continue
				}
				score = 0.72 - (0.08 * float64(dist))
			}
			if score > best {
				best = score
			}
		}
		if best < 0 {
			return 0, false
		}
		total += best
	}
	return total / float64(len(qTokens)), true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
