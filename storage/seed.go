package storage

import "marketplace-api/models"

// Seed data served by the API. Only read through NewSeedCatalog, which copies it.
var (
	seedListings = []models.Listing{
		{
			ID:         "lst-1",
			Title:      "DJI Mini 4 Pro + Creator Pack",
			Category:   "Electronics",
			Price:      850,
			Condition:  "Like New",
			Location:   "Austin, TX",
			TrustScore: 98,
			Shipping:   []string{"Pickup", "Same-Day Courier"},
			Tags:       []string{"Verified Seller", "Warranty"},
		},
		{
			ID:         "lst-2",
			Title:      "Ergonomic Standing Desk (Bamboo)",
			Category:   "Furniture",
			Price:      420,
			Condition:  "Excellent",
			Location:   "Dallas, TX",
			TrustScore: 93,
			Shipping:   []string{"Delivery", "Pickup"},
			Tags:       []string{"Bundle Ready", "Office"},
		},
		{
			ID:         "lst-3",
			Title:      "Road Bike Carbon 54cm",
			Category:   "Sports",
			Price:      1120,
			Condition:  "Good",
			Location:   "Houston, TX",
			TrustScore: 89,
			Shipping:   []string{"Pickup"},
			Tags:       []string{"Negotiable", "Certified"},
		},
	}

	seedRequests = []models.Request{
		{
			ID:                  "req-1",
			Title:               "Need a remote-work setup under $1,500",
			Budget:              1500,
			PreferredCategories: []string{"Electronics", "Furniture"},
			Urgency:             models.UrgencyHigh,
		},
		{
			ID:                  "req-2",
			Title:               "Looking for a starter content creator kit",
			Budget:              1200,
			PreferredCategories: []string{"Electronics"},
			Urgency:             models.UrgencyMedium,
		},
	}
)

// NewSeedCatalog returns the built-in marketplace catalog.
func NewSeedCatalog() (*MemoryCatalog, error) {
	return NewMemoryCatalog(seedListings, seedRequests)
}
