package identity

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
)

const principalKey = "identity.principal"

// TokenVerifier turns a raw Authorization header into a Principal.
type TokenVerifier interface {
	VerifyToken(raw string) (Principal, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified Principal on the context for the handlers that follow.
func RequireAuth(verifier TokenVerifier, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := verifier.VerifyToken(c.GetHeader("Authorization"))
		if err != nil {
			if log != nil {
				log.Debug("token rejected", "path", c.FullPath(), "error", err)
			}
			apperr.Respond(c, log, apperr.Unauthorized(err))
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFrom returns the Principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
