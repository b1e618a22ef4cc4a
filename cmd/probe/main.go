// Command probe queries a running marketplace API and prints what it serves.
//
// Usage:
//
//	probe -url http://localhost:8000 -q drone -category Electronics
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"marketplace-api/client"
)

func main() {
	var (
		baseURL  = flag.String("url", client.DefaultBaseURL, "marketplace API base URL")
		query    = flag.String("q", "", "search text (title and tags)")
		category = flag.String("category", "All", "category filter")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.NewClient(&http.Client{Timeout: *timeout}).WithBaseURL(*baseURL)

	if _, err := c.Health(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}

	listings, err := c.FetchListings(ctx, *query, *category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch listings: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Listings (%d)\n", len(listings))
	for _, l := range listings {
		fmt.Printf("  %-6s %-40s %-12s $%8.2f  trust %3d  [%s]\n",
			l.ID, l.Title, l.Category, l.Price, l.TrustScore, strings.Join(l.Tags, ", "))
	}

	requests, err := c.FetchRequests(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch requests: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nBuyer requests (%d)\n", len(requests))
	for _, r := range requests {
		fmt.Printf("  %-6s %-45s budget $%8.2f  %-6s [%s]\n",
			r.ID, r.Title, r.Budget, r.Urgency, strings.Join(r.PreferredCategories, ", "))
	}
}
