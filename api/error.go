package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer    = errorResponse{Code: 1000, Message: "internal server error"}
	errorInvalidParameters = errorResponse{Code: 1001, Message: "invalid parameters"}
	errorInvalidSample     = errorResponse{Code: 1002, Message: "metric sample rejected"}
	errorPatternNotFound   = errorResponse{Code: 1003, Message: "pattern not found"}
	errorWriteConflict     = errorResponse{Code: 1004, Message: "conflicting recomputation, retry later"}
)

func abortWithEncoding(c *gin.Context, status int, resp errorResponse, errs ...error) {
	for _, err := range errs {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}
