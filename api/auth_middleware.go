package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/quickcourt/facility-booking-backend/user"
)

type IdentityResolver interface {
	ResolveSession(ctx context.Context, token string) (user.User, error)
}

// SessionAuth resolves the bearer token into a request-scoped identity
// and stores it on the gin context. Nothing below this middleware holds
// any ambient current-user state.
func SessionAuth(users IdentityResolver, tokens *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")

		if !ok || len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		if cached, found := tokens.Get(token); found {
			c.Set("user", cached.(user.User))
			return
		}

		u, err := users.ResolveSession(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		tokens.Set(token, u, cache.DefaultExpiration)

		c.Set("user", u)
	}
}

// Me echoes the identity resolved by SessionAuth.
func Me(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, c.MustGet("user").(user.User))
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.MustGet("user").(user.User)

		if actor.Role != user.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
