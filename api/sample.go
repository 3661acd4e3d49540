package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/wellbeat/wellness-api/schema"
)

// ingestMetricSample records one day of telemetry for an employee.
// Out-of-range values are a hard rejection here so the scoring core
// only ever sees validated samples.
func (s *Server) ingestMetricSample(c *gin.Context) {
	var sample schema.MetricSample
	if err := c.BindJSON(&sample); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	sample.EmployeeID = c.Param("employeeID")

	if err := s.mongoStore.CreateMetricSample(sample); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidSample, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
