package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate resolves the bearer credential exactly once per request and
// stores the resulting identity in the gin context. Gates and handlers
// read only that identity; nothing downstream touches the raw token.
func Authenticate(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bearerToken(c)
		if credential == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
			c.Abort()
			return
		}

		identity, err := manager.Resolve(c.Request.Context(), credential)
		if err != nil {
			util.RenderAuthError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity placed by Authenticate.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

// bearerToken pulls the credential out of "Authorization: Bearer xxx".
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
