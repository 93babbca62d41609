package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondInBand writes body with status 200. Every endpoint of the service
// reports failures inside the JSON body, never through the status code.
func RespondInBand(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// HandleServiceError logs err at a level matching its kind and returns the
// message to place in the response's error field.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) string {
	fields := []zap.Field{
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}

	switch {
	case errors.Is(err, ErrValidation):
		logger.Info("Rejected request", fields...)
	case errors.Is(err, ErrRankingFailed):
		logger.Error("Attraction ranking failed", fields...)
	case errors.Is(err, ErrUpstreamGeneration):
		logger.Error("Model runtime call failed", fields...)
	case errors.Is(err, ErrMalformedResponse):
		logger.Warn("Model returned malformed data", fields...)
	default:
		logger.Error("Unknown error", fields...)
	}

	return err.Error()
}
