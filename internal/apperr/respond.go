package apperr

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Respond writes err as a JSON body. Internal errors are logged with their
// cause; the client only sees a generic message.
func Respond(c *gin.Context, log *slog.Logger, err error) {
	status := HTTPStatus(err)
	if status >= 500 && log != nil {
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": PublicMessage(err)})
}
