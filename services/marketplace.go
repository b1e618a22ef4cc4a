package services

import (
	"marketplace-api/models"
	"marketplace-api/storage"
	"marketplace-api/utils"
)

// MarketplaceService answers the read-only marketplace queries.
type MarketplaceService struct {
	catalog storage.CatalogReader
	logger  *utils.Logger
	summary *models.CatalogSummary
}

// NewMarketplaceService wires the service to a catalog and computes its summary once.
func NewMarketplaceService(catalog storage.CatalogReader, logger *utils.Logger) *MarketplaceService {
	insights := NewInsightService(logger)
	return &MarketplaceService{
		catalog: catalog,
		logger:  logger,
		summary: insights.Generate(catalog.Listings(), catalog.Requests()),
	}
}

// Health reports that the service is reachable.
func (s *MarketplaceService) Health() models.HealthStatus {
	return models.HealthStatus{Status: "ok"}
}

// SearchListings returns the listings matching q in catalog order.
func (s *MarketplaceService) SearchListings(q ListingQuery) []models.Listing {
	result := FilterListings(s.catalog.Listings(), q)
	s.logger.Debug("[marketplace] search q=%q category=%q → %d listings", q.Text, q.Category, len(result))
	return result
}

// ListRequests returns every buyer request in catalog order.
func (s *MarketplaceService) ListRequests() []models.Request {
	return s.catalog.Requests()
}

// Summary returns the aggregate figures computed at construction.
func (s *MarketplaceService) Summary() *models.CatalogSummary {
	return s.summary
}
