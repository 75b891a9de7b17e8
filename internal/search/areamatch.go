package search

import (
	"sort"
	"strings"
)

// Area names vary mostly by spacing, word order and abbreviation
// ("lb nagar" vs "L B Nagar"), which character similarity alone
// under-scores. Token overlap therefore carries more weight.
const (
	charSimilarityWeight = 0.4
	tokenOverlapWeight   = 0.6

	// Candidates below this combined score are discarded.
	areaMatchThreshold = 0.5

	// Above this score the match is reported as exact rather than fuzzy.
	areaExactThreshold = 0.9

	// A token pair this similar counts as a partial token match,
	// so single-word misspellings ("Gachibowlli") still resolve.
	tokenNearMatchThreshold = 0.8
	tokenNearMatchCredit    = 0.8
)

// AreaMatch is a candidate catalog area with its similarity score in [0,1].
type AreaMatch struct {
	Area  string  `json:"area"`
	Score float64 `json:"similarity"`
}

// MatchAreas ranks the catalog's canonical areas against a free-text input.
// Returns only candidates scoring above the match threshold, best first;
// ties keep catalog order. An empty result means the area is unknown and the
// caller must surface sample areas instead of falling through.
func MatchAreas(input string, areas []string) []AreaMatch {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var matches []AreaMatch
	for _, area := range areas {
		charSim := similarityRatio(strings.ToLower(input), strings.ToLower(area))
		tokenSim := tokenOverlapRatio(input, area)
		score := charSim*charSimilarityWeight + tokenSim*tokenOverlapWeight
		if score > areaMatchThreshold {
			matches = append(matches, AreaMatch{Area: area, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// IsExact reports whether the top-ranked match is close enough to count as
// an exact area hit.
func IsExact(matches []AreaMatch) bool {
	return len(matches) > 0 && matches[0].Score > areaExactThreshold
}

// AreaNames projects the matched canonical names, best first.
func AreaNames(matches []AreaMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Area)
	}
	return names
}

// similarityRatio is a normalized edit-distance ratio in [0,1]:
// 1 - distance/maxLen, with 1 meaning identical strings.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(longest)
}

// tokenOverlapRatio counts how many whitespace tokens the two names share,
// relative to the longer token list. Exact token matches count fully; a
// near-equal token counts as a partial match.
func tokenOverlapRatio(a, b string) float64 {
	aTokens := strings.Fields(strings.ToLower(a))
	bTokens := strings.Fields(strings.ToLower(b))
	longest := max(len(aTokens), len(bTokens))
	if longest == 0 {
		return 0
	}

	used := make([]bool, len(bTokens))
	var overlap float64
	for _, at := range aTokens {
		bestIdx, bestCredit := -1, 0.0
		for j, bt := range bTokens {
			if used[j] {
				continue
			}
			if at == bt {
				bestIdx, bestCredit = j, 1.0
				break
			}
			if bestCredit < tokenNearMatchCredit && similarityRatio(at, bt) >= tokenNearMatchThreshold {
				bestIdx, bestCredit = j, tokenNearMatchCredit
			}
		}
		if bestIdx >= 0 {
			used[bestIdx] = true
			overlap += bestCredit
		}
	}
	return overlap / float64(longest)
}

// levenshteinDistance computes the edit distance between two strings using
// two rolling rows instead of a full matrix.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
