package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/repository/cache"
	"uniforms-pos/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// statusOf maps service errors onto HTTP statuses.
func statusOf(err error) int {
	var eh cache.ErrorHandler
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &eh):
		return eh.StatusCode
	case errors.Is(err, service.ErrOverpayment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrStoreUnreadable):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	newErrorResponse(c, statusOf(err), err.Error())
}
