package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/rs/zerolog"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", response.RequestID(c)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Msg("Panic recovered")

				response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			}
		}()

		c.Next()
	}
}
