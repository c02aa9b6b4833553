package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/apierrors"
	"github.com/hydrafit/hydra-api/internal/constants"
	"github.com/hydrafit/hydra-api/internal/token"
)

// RequireAuth extracts and verifies the bearer identity token. The signature
// is re-checked on every request; there is no session cache.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := token.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			apierrors.Respond(c, err)
			c.Abort()
			return
		}

		identity, err := tokens.DecodeIdentity(tok)
		if err != nil {
			apierrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the verified caller from context
func GetIdentity(c *gin.Context) (*token.Identity, bool) {
	v, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*token.Identity)
	return identity, ok
}
