package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/services"
)

// IdentityCookie is the cookie carrying the signed attendee identity token.
const IdentityCookie = "user-session"

// AdminAuth guards host/admin routes with a shared API key.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-API-Key")
		if key == "" || key != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin API key"})
			return
		}
		c.Next()
	}
}

// Identity loads the attendee identity from the cookie when present. It
// never aborts; submit mints a fresh identity when none exists.
func Identity(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(IdentityCookie)
		if err == nil && token != "" {
			if user, err := authService.ParseToken(token); err == nil {
				c.Set("user", *user)
			}
		}
		c.Next()
	}
}

// RequireStore fails fast with 503 when the service started without a
// reachable database, mirroring the polling clients' expectation of a
// stable machine-readable error.
func RequireStore(available bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !available {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "database not configured",
			})
			return
		}
		c.Next()
	}
}
