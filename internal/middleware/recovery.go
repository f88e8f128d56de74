package middleware

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
)

// Recovery turns a panicking handler into a 500 JSON response.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		apperr.Respond(c, log, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
	})
}
