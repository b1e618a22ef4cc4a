package models

import (
	"encoding/json"
	"fmt"
)

// Listing is a marketplace item offered for sale.
type Listing struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	Condition  string   `json:"condition"`
	Location   string   `json:"location"`
	TrustScore int      `json:"trustScore"`
	Shipping   []string `json:"shipping"`
	Tags       []string `json:"tags"`
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	l.Shipping = append([]string{}, l.Shipping...)
	l.Tags = append([]string{}, l.Tags...)
	return l
}

// Request is a buyer's stated need. It is never matched against listings.
type Request struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Budget              float64  `json:"budget"`
	PreferredCategories []string `json:"preferredCategories"`
	Urgency             Urgency  `json:"urgency"`
}

// Clone returns a copy that shares no slices with r.
func (r Request) Clone() Request {
	r.PreferredCategories = append([]string{}, r.PreferredCategories...)
	return r
}

// Urgency is the priority of a Request: Low, Medium or High.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// ParseUrgency accepts exactly one of the three urgency names.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.Valid() {
		return "", fmt.Errorf("invalid urgency %q: want Low, Medium or High", s)
	}
	return u, nil
}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

func (u Urgency) String() string { return string(u) }

func (u Urgency) MarshalJSON() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid urgency %q", string(u))
	}
	return json.Marshal(string(u))
}

func (u *Urgency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("urgency: %w", err)
	}
	parsed, err := ParseUrgency(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// HealthStatus is the payload of the liveness endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

// CatalogSummary holds aggregate figures over the loaded catalog.
type CatalogSummary struct {
	TotalListings      int
	TotalRequests      int
	ListingsByCategory map[string]int
	AveragePrice       float64
	MinPrice           float64
	MaxPrice           float64
	AverageTrustScore  float64
	MostTrusted        *Listing
}
