package services

import (
	"strings"
	"testing"

	"marketplace-api/models"
	"marketplace-api/storage"
)

func seedListings(t *testing.T) []models.Listing {
	t.Helper()
	c, err := storage.NewSeedCatalog()
	if err != nil {
		t.Fatalf("NewSeedCatalog: %v", err)
	}
	return c.Listings()
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterListings(t *testing.T) {
	listings := seedListings(t)

	tests := []struct {
		name  string
		query ListingQuery
		want  []string
	}{
		{"no filters", ListingQuery{}, []string{"lst-1", "lst-2", "lst-3"}},
		{"category exact", ListingQuery{Category: "Electronics"}, []string{"lst-1"}},
		{"category case-insensitive", ListingQuery{Category: "fURNITURE"}, []string{"lst-2"}},
		{"category all", ListingQuery{Category: "all"}, []string{"lst-1", "lst-2", "lst-3"}},
		{"category All", ListingQuery{Category: "ALL"}, []string{"lst-1", "lst-2", "lst-3"}},
		{"category unknown", ListingQuery{Category: "nonexistent"}, []string{}},
		{"category is not trimmed", ListingQuery{Category: " Electronics "}, []string{}},
		{"whitespace category matches nothing", ListingQuery{Category: "   "}, []string{}},
		{"padded all is not all", ListingQuery{Category: " all "}, []string{}},
		{"tag match", ListingQuery{Text: "verified"}, []string{"lst-1"}},
		{"title match", ListingQuery{Text: "Bamboo"}, []string{"lst-2"}},
		{"query is trimmed", ListingQuery{Text: "  road bike  "}, []string{"lst-3"}},
		{"shipping not searched", ListingQuery{Text: "pickup"}, []string{}},
		{"courier not searched", ListingQuery{Text: "courier"}, []string{}},
		{"whitespace query ignored", ListingQuery{Text: "   "}, []string{"lst-1", "lst-2", "lst-3"}},
		{"joined tags span", ListingQuery{Text: "seller warranty"}, []string{"lst-1"}},
		{"filters compose", ListingQuery{Text: "office", Category: "Electronics"}, []string{}},
		{"filters compose match", ListingQuery{Text: "office", Category: "furniture"}, []string{"lst-2"}},
		{"no match", ListingQuery{Text: "kayak"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListings(listings, tt.query)
			if got == nil {
				t.Fatal("result must not be nil")
			}
			if strings.Join(ids(got), ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterListingsTextPredicate(t *testing.T) {
	listings := seedListings(t)

	for _, q := range []string{"a", "E", "pro", "cert", "54", "desk", "x", "ready office"} {
		got := FilterListings(listings, ListingQuery{Text: q})
		term := strings.ToLower(q)

		included := make(map[string]bool, len(got))
		for _, l := range got {
			included[l.ID] = true
		}

		for _, l := range listings {
			matches := strings.Contains(strings.ToLower(l.Title), term) ||
				strings.Contains(strings.ToLower(strings.Join(l.Tags, " ")), term)
			if matches != included[l.ID] {
				t.Errorf("q=%q listing %s: matches=%v included=%v", q, l.ID, matches, included[l.ID])
			}
		}
	}
}

func TestFilterListingsCategoryPredicate(t *testing.T) {
	listings := seedListings(t)

	for _, c := range []string{"Electronics", "furniture", "SPORTS", "Toys"} {
		got := FilterListings(listings, ListingQuery{Category: c})
		for _, l := range got {
			if !strings.EqualFold(l.Category, c) {
				t.Errorf("category=%q returned %s with category %q", c, l.ID, l.Category)
			}
		}
		want := 0
		for _, l := range listings {
			if strings.EqualFold(l.Category, c) {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("category=%q: got %d listings, want %d", c, len(got), want)
		}
	}
}
