// Package api exposes the marketplace service over HTTP.
//
// Routes:
//
//	GET /health                    liveness, always {"status":"ok"}
//	GET /api/marketplace/listings  listings filtered by ?q= and ?category=
//	GET /api/marketplace/requests  every buyer request
//	GET /metrics                   Prometheus exposition, when enabled
//
// Every route answers cross-origin requests. Unknown paths get a JSON 404 and
// wrong methods a JSON 405.
package api
