package service

import (
	"sort"
	"strings"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

// The catalog engine works on a full in-memory snapshot of listings. All
// matching is literal case-insensitive substring matching; there is no
// relevance scoring.

type SortMode string

const (
	SortFeatured       SortMode = "featured"
	SortPriceLowToHigh SortMode = "priceLowToHigh"
	SortPriceHighToLow SortMode = "priceHighToLow"
	SortNewest         SortMode = "newest"
)

// CatalogFilter combines the free-text query with the facet selections.
// Facets are conjunctive across dimensions; the tag and store selections are
// disjunctive within their own dimension.
type CatalogFilter struct {
	Query    string
	Category string
	Tags     []string
	Stores   []string
	MinPrice *float64
	MaxPrice *float64
}

// FacetCounts are occurrence counts over a result set. They are computed from
// the already-filtered slice, so the counts are contextual to the current
// filters rather than global.
type FacetCounts struct {
	Categories map[string]int `json:"categories"`
	Tags       map[string]int `json:"tags"`
	Stores     map[string]int `json:"stores"`
}

const maxSuggestions = 8

func searchFields(l *entity.Listing) []string {
	fields := []string{l.Title, l.Description, l.Category, l.Author, l.StoreName}
	fields = append(fields, l.Tags...)
	return fields
}

func anyFieldContains(l *entity.Listing, needle string) bool {
	for _, f := range searchFields(l) {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// MatchesQuery implements the "whole-phrase OR per-token" rule: a listing
// matches when the whole query is a substring of any field, or when every
// whitespace token of the query individually matches some field (tokens are
// free to match different fields). A listing containing the literal phrase
// therefore always qualifies, even when tokenized matching would not.
func MatchesQuery(l *entity.Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if anyFieldContains(l, q) {
		return true
	}

	tokens := strings.Fields(q)
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if !anyFieldContains(l, token) {
			return false
		}
	}
	return true
}

// FilterListings applies the query, facet and price filters, preserving the
// order of the input snapshot.
func FilterListings(listings []*entity.Listing, filter CatalogFilter) []*entity.Listing {
	result := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if !MatchesQuery(l, filter.Query) {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(l, filter.Tags) {
			continue
		}
		if len(filter.Stores) > 0 && !inStores(l, filter.Stores) {
			continue
		}
		if !priceInRange(l, filter.MinPrice, filter.MaxPrice) {
			continue
		}
		result = append(result, l)
	}
	return result
}

func hasAnyTag(l *entity.Listing, selected []string) bool {
	for _, want := range selected {
		for _, tag := range l.Tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func inStores(l *entity.Listing, selected []string) bool {
	name := l.StoreName
	if name == "" {
		name = l.Author
	}
	for _, want := range selected {
		if name == want {
			return true
		}
	}
	return false
}

// priceInRange applies inclusive bounds. A listing without a price is
// excluded as soon as either bound is active.
func priceInRange(l *entity.Listing, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if l.Price == nil {
		return false
	}
	if min != nil && *l.Price < *min {
		return false
	}
	if max != nil && *l.Price > *max {
		return false
	}
	return true
}

// SortListings returns a sorted copy; the input slice is never reordered.
// SortFeatured keeps the snapshot order. The price modes treat a missing
// price as zero, matching the original client's behavior. SortNewest orders
// by the real timestamp, not its string form.
func SortListings(listings []*entity.Listing, mode SortMode) []*entity.Listing {
	sorted := make([]*entity.Listing, len(listings))
	copy(sorted, listings)

	switch mode {
	case SortPriceLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceOrZero(sorted[i]) < priceOrZero(sorted[j])
		})
	case SortPriceHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceOrZero(sorted[i]) > priceOrZero(sorted[j])
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}

func priceOrZero(l *entity.Listing) float64 {
	if l.Price == nil {
		return 0
	}
	return *l.Price
}

// Suggest returns up to 8 titles of listings matching the query. Queries
// shorter than two characters yield nothing; every call recomputes from the
// snapshot, there is no incremental state between keystrokes.
func Suggest(listings []*entity.Listing, query string) []string {
	q := strings.TrimSpace(query)
	if len(q) < 2 {
		return nil
	}

	var suggestions []string
	for _, l := range listings {
		if MatchesQuery(l, q) {
			suggestions = append(suggestions, l.Title)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// Facets counts category, tag and store occurrences across the given slice.
func Facets(listings []*entity.Listing) FacetCounts {
	counts := FacetCounts{
		Categories: make(map[string]int),
		Tags:       make(map[string]int),
		Stores:     make(map[string]int),
	}
	for _, l := range listings {
		if l.Category != "" {
			counts.Categories[l.Category]++
		}
		for _, tag := range l.Tags {
			counts.Tags[tag]++
		}
		name := l.StoreName
		if name == "" {
			name = l.Author
		}
		if name != "" {
			counts.Stores[name]++
		}
	}
	return counts
}
