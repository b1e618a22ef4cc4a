package services

import (
	"strings"

	"marketplace-api/models"
)

// allCategories is the category value that disables category filtering.
const allCategories = "all"

// ListingQuery holds the optional filters of a listing search.
// Empty fields are treated as absent.
type ListingQuery struct {
	Text     string
	Category string
}

// FilterListings applies the category filter, then the text filter, and
// returns the survivors in their original order. The result is never nil.
// Only the text term is trimmed; the category must match exactly up to case.
func FilterListings(listings []models.Listing, q ListingQuery) []models.Listing {
	category := strings.ToLower(q.Category)
	if category == allCategories {
		category = ""
	}
	text := normaliseTerm(q.Text)

	result := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if category != "" && strings.ToLower(l.Category) != category {
			continue
		}
		if text != "" && !matchesText(l, text) {
			continue
		}
		result = append(result, l)
	}
	return result
}

// matchesText reports whether the lower-cased term occurs in the title or in
// the space-joined tags. Shipping options are not searchable.
func matchesText(l models.Listing, term string) bool {
	if strings.Contains(strings.ToLower(l.Title), term) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(l.Tags, " ")), term)
}

// normaliseTerm trims surrounding whitespace and lower-cases s.
func normaliseTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
