package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// forecastScore projects the employee's burnout trajectory over the
// policy horizon. Too little history yields the unavailable variant
// with HTTP 200, since sparse data is a normal condition.
func (s *Server) forecastScore(c *gin.Context) {
	employeeID := c.Param("employeeID")

	forecast, err := s.mongoStore.ForecastForEmployee(employeeID, s.policy)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
