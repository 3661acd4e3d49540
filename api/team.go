package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// teamAggregate returns the privacy-preserving rollup for a manager's
// consenting reports. Suppression is a normal 200 response carrying the
// suppressed privacy status; it must never look like an error, or the
// UI could imply a real value was withheld for another reason.
func (s *Server) teamAggregate(c *gin.Context) {
	managerID := c.Param("managerID")

	aggregate, err := s.mongoStore.TeamAggregateForManager(managerID, time.Now().UTC(), s.policy)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, aggregate)
}
