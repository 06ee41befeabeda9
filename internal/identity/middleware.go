package identity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhulik/tally/internal/core"
)

const contextKey = "identity"

func Middleware(source core.IdentitySource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := source.Resolve(c.Request)
		if err != nil {
			if errors.Is(err, core.ErrIdentityMissing) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				c.Abort()

				return
			}

			c.Error(err) //nolint:errcheck
			c.Abort()

			return
		}

		c.Set(contextKey, id)

		c.Next()
	}
}

// FromContext returns the identity stored by Middleware.
func FromContext(c *gin.Context) (core.Identity, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return "", false
	}

	id, ok := value.(core.Identity)

	return id, ok
}
