package storage

import "marketplace-api/models"

// ListingReader is the interface any listing source must satisfy.
// Implementations return the listings in insertion order.
type ListingReader interface {
	Listings() []models.Listing
}

// RequestReader is the interface for sources of buyer requests.
type RequestReader interface {
	Requests() []models.Request
}

// CatalogReader serves both collections.
type CatalogReader interface {
	ListingReader
	RequestReader
}
