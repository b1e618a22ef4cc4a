package storage

import (
	"fmt"

	"marketplace-api/models"
	"marketplace-api/utils"
)

// MemoryCatalog is a read-only, in-memory catalog. It is fixed at
// construction and safe for concurrent use without locking.
type MemoryCatalog struct {
	listings []models.Listing
	requests []models.Request
}

// NewMemoryCatalog validates and copies the given collections.
func NewMemoryCatalog(listings []models.Listing, requests []models.Request) (*MemoryCatalog, error) {
	if err := validateListings(listings); err != nil {
		return nil, err
	}
	if err := validateRequests(requests); err != nil {
		return nil, err
	}

	return &MemoryCatalog{
		listings: cloneListings(listings),
		requests: cloneRequests(requests),
	}, nil
}

// Listings returns a copy of every listing in insertion order.
func (m *MemoryCatalog) Listings() []models.Listing {
	return cloneListings(m.listings)
}

// Requests returns a copy of every request in insertion order.
func (m *MemoryCatalog) Requests() []models.Request {
	return cloneRequests(m.requests)
}

func validateListings(listings []models.Listing) error {
	ids := utils.NewIDSet("listing")
	for i, l := range listings {
		if err := ids.Add(l.ID, i); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		if l.Price < 0 {
			return fmt.Errorf("storage: listing %q has negative price %.2f", l.ID, l.Price)
		}
	}
	return nil
}

func validateRequests(requests []models.Request) error {
	ids := utils.NewIDSet("request")
	for i, r := range requests {
		if err := ids.Add(r.ID, i); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		if r.Budget < 0 {
			return fmt.Errorf("storage: request %q has negative budget %.2f", r.ID, r.Budget)
		}
		if !r.Urgency.Valid() {
			return fmt.Errorf("storage: request %q: invalid urgency %q", r.ID, r.Urgency)
		}
	}
	return nil
}

func cloneListings(in []models.Listing) []models.Listing {
	out := make([]models.Listing, len(in))
	for i, l := range in {
		out[i] = l.Clone()
	}
	return out
}

func cloneRequests(in []models.Request) []models.Request {
	out := make([]models.Request, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
