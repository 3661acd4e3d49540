package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/store"
)

// parseDay resolves an optional ?date=YYYY-MM-DD query against a
// fallback, typically the current day.
func parseDay(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.Parse(schema.DateLayout, raw)
}

// syncScore recomputes an employee's score for a day (today unless the
// date query overrides it) and persists the resulting zone state.
func (s *Server) syncScore(c *gin.Context) {
	employeeID := c.Param("employeeID")

	day, err := parseDay(c.Query("date"), time.Now().UTC())
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.mongoStore.SyncEmployeeScore(employeeID, day, s.policy)
	if err != nil {
		if errors.Is(err, store.ErrZoneWriteConflict) {
			abortWithEncoding(c, http.StatusConflict, errorWriteConflict, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// currentScore returns the latest persisted zone state, the soft
// insufficient-data variant when the employee was never scored.
func (s *Server) currentScore(c *gin.Context) {
	employeeID := c.Param("employeeID")

	state, err := s.mongoStore.GetLatestZoneState(employeeID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if state == nil {
		c.JSON(http.StatusOK, store.SyncResult{Reason: store.SyncUnavailableReason})
		return
	}

	c.JSON(http.StatusOK, store.SyncResult{Available: true, State: state})
}
