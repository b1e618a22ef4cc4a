package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-api/services"
)

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.RecoveryWithWriter(s.logger.StdLogger().Writer()))
	router.Use(requestID())
	router.Use(requestLogger(s.logger))
	if s.metrics != nil {
		router.Use(s.metrics.middleware())
	}
	router.Use(corsMiddleware(s.opts.AllowOrigins))

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, newAPIError("not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, newAPIError("method not allowed"))
	})

	router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	marketplace := router.Group("/api/marketplace")
	if s.opts.RateLimitRPS > 0 {
		marketplace.Use(rateLimit(s.opts.RateLimitRPS, s.opts.RateLimitBurst))
	}
	marketplace.GET("/listings", s.handleListings)
	marketplace.GET("/requests", s.handleRequests)

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Health())
}

// handleListings filters listings by the optional q and category parameters.
func (s *Server) handleListings(c *gin.Context) {
	q := services.ListingQuery{
		Text:     c.Query("q"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, s.svc.SearchListings(q))
}

func (s *Server) handleRequests(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.ListRequests())
}
