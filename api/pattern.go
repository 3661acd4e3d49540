package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellbeat/wellness-api/store"
)

// scanPatterns re-runs detection over the stored history and returns
// the employee's open patterns.
func (s *Server) scanPatterns(c *gin.Context) {
	employeeID := c.Param("employeeID")

	patterns, err := s.mongoStore.ScanPatterns(employeeID, s.policy)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

func (s *Server) acknowledgePattern(c *gin.Context) {
	s.resolvePattern(c, s.mongoStore.AcknowledgePattern)
}

func (s *Server) dismissPattern(c *gin.Context) {
	s.resolvePattern(c, s.mongoStore.DismissPattern)
}

func (s *Server) resolvePattern(c *gin.Context, resolve func(string, string) error) {
	employeeID := c.Param("employeeID")
	patternID := c.Param("patternID")

	if err := resolve(employeeID, patternID); err != nil {
		if errors.Is(err, store.ErrPatternNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorPatternNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
