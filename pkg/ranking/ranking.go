// Package ranking orders products by a user's preferred tags and by search relevance.
package ranking

import (
	"sort"
	"strings"

	"github.com/umputun/shopscope/pkg/domain"
)

// search relevance of a match in product fields
const (
	NameRelevance        = 3
	DescriptionRelevance = 2
	TagRelevance         = 1
)

// ByPreference scores products against topTags, ordered from the most preferred tag.
// Each product tag found in topTags at index i adds len(topTags)-i to the score.
// Products are sorted by score descending, then by id descending; unmatched products stay with score 0.
func ByPreference(products []*domain.Product, topTags []string) []domain.RankedProduct {
	points := make(map[string]int, len(topTags))
	for i, tag := range topTags {
		if _, ok := points[tag]; !ok {
			points[tag] = len(topTags) - i
		}
	}

	ranked := make([]domain.RankedProduct, 0, len(products))
	for _, p := range products {
		score := 0
		seen := make(map[string]bool, len(p.Tags))
		for _, tag := range p.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			score += points[tag]
		}
		ranked = append(ranked, domain.RankedProduct{Product: p, Score: score})
	}
	sortRanked(ranked)
	return ranked
}

// BySearch keeps products matching query and scores them by where the match is: name first,
// then description, then exact tag. Name and description match case-insensitively.
func BySearch(products []*domain.Product, query string) []domain.RankedProduct {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.RankedProduct{}
	}
	lq := strings.ToLower(query)

	ranked := make([]domain.RankedProduct, 0, len(products))
	for _, p := range products {
		var score int
		switch {
		case strings.Contains(strings.ToLower(p.Name), lq):
			score = NameRelevance
		case strings.Contains(strings.ToLower(p.Description), lq):
			score = DescriptionRelevance
		case p.HasTag(query):
			score = TagRelevance
		default:
			continue
		}
		ranked = append(ranked, domain.RankedProduct{Product: p, Score: score})
	}
	sortRanked(ranked)
	return ranked
}

func sortRanked(ranked []domain.RankedProduct) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID > ranked[j].ID
	})
}
