package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellbeat/wellness-api/score"
	"github.com/wellbeat/wellness-api/store"
)

// Server routes the wellness engine over HTTP. Identity and RBAC are
// handled upstream; handlers trust the ids in the path.
type Server struct {
	mongoStore store.WellnessStore
	policy     score.ScoringPolicy
	httpServer *http.Server
	traceMode  bool
}

func NewServer(mongoStore store.WellnessStore, policy score.ScoringPolicy, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		policy:     policy,
		traceMode:  traceMode,
	}
}

func (s *Server) Run(addr string) error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.DumpRequest)

	v1 := router.Group("/v1")
	{
		v1.POST("/metrics/:employeeID", s.ingestMetricSample)
		v1.POST("/scores/:employeeID/sync", s.syncScore)
		v1.GET("/scores/:employeeID", s.currentScore)
		v1.GET("/scores/:employeeID/forecast", s.forecastScore)
		v1.GET("/patterns/:employeeID", s.scanPatterns)
		v1.POST("/patterns/:employeeID/:patternID/acknowledge", s.acknowledgePattern)
		v1.POST("/patterns/:employeeID/:patternID/dismiss", s.dismissPattern)
		v1.GET("/teams/:managerID/aggregate", s.teamAggregate)
		v1.PUT("/consent/:employeeID", s.recordConsent)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
