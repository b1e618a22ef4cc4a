package services

import (
	"sort"
	"strconv"
	"strings"

	"marketplace-api/models"
	"marketplace-api/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(listings []models.Listing, requests []models.Request) *models.CatalogSummary {
	report := &models.CatalogSummary{
		TotalListings:      len(listings),
		TotalRequests:      len(requests),
		ListingsByCategory: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	var totalPrice float64
	var totalTrust int
	report.MinPrice = listings[0].Price
	report.MaxPrice = listings[0].Price

	for i := range listings {
		l := listings[i]
		report.ListingsByCategory[l.Category]++

		totalPrice += l.Price
		if l.Price < report.MinPrice {
			report.MinPrice = l.Price
		}
		if l.Price > report.MaxPrice {
			report.MaxPrice = l.Price
		}

		totalTrust += l.TrustScore
		if report.MostTrusted == nil || l.TrustScore > report.MostTrusted.TrustScore {
			report.MostTrusted = &l
		}
	}

	n := float64(len(listings))
	report.AveragePrice = round2(totalPrice / n)
	report.AverageTrustScore = round2(float64(totalTrust) / n)
	report.MinPrice = round2(report.MinPrice)
	report.MaxPrice = round2(report.MaxPrice)

	return report
}

// Log writes the summary as a handful of info lines.
func (s *InsightService) Log(r *models.CatalogSummary) {
	s.logger.Info("[insights] Catalog loaded: %d listings, %d buyer requests",
		r.TotalListings, r.TotalRequests)

	if r.TotalListings == 0 {
		s.logger.Warn("[insights] Catalog has no listings")
		return
	}

	s.logger.Info("[insights] Price: avg $%.2f | min $%.2f | max $%.2f",
		r.AveragePrice, r.MinPrice, r.MaxPrice)
	s.logger.Info("[insights] Average trust score: %.2f", r.AverageTrustScore)
	if r.MostTrusted != nil {
		s.logger.Info("[insights] Most trusted: %s (%d)", truncate(r.MostTrusted.Title, 50), r.MostTrusted.TrustScore)
	}

	categories := make([]string, 0, len(r.ListingsByCategory))
	for c := range r.ListingsByCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		ci, cj := r.ListingsByCategory[categories[i]], r.ListingsByCategory[categories[j]]
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, c+"="+strconv.Itoa(r.ListingsByCategory[c]))
	}
	s.logger.Info("[insights] Listings by category: %s", strings.Join(parts, ", "))
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
