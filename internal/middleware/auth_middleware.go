package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"planner/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// IdentityKey is the gin context key holding the caller's auth.Identity.
	IdentityKey = "identity"

	SessionCookieName = "planner_session"
)

// JWTAuthMiddleware accepts a session token from the session cookie or an
// Authorization: Bearer header. Browsers without a session are redirected to
// the login page; everything else gets 401.
func JWTAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A stale session cookie must not shadow a valid Bearer header.
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			if identity, err := tokens.Parse(cookie); err == nil {
				c.Set(IdentityKey, identity)
				c.Next()
				return
			}
			if c.GetHeader("Authorization") == "" {
				rejectAnonymous(c, "Invalid or expired token")
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			rejectAnonymous(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		identity, err := tokens.Parse(parts[1])
		if err != nil {
			rejectAnonymous(c, "Invalid or expired token")
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CurrentUser returns the identity stored by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func rejectAnonymous(c *gin.Context, msg string) {
	if wantsHTML(c) {
		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusSeeOther, "/login?next="+next)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
