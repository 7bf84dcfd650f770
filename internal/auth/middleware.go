package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"finbrief/internal/model"

	"github.com/gin-gonic/gin"
)

const userKey = "authUser"

type UserLookup interface {
	GetByEmail(email string) (*model.User, error)
}

// Middleware rejects requests without a valid bearer token and stores the
// authenticated user on the context.
func Middleware(issuer *TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		email, err := issuer.Verify(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetByEmail(email)
		if err != nil {
			slog.Error("error looking up token subject", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if user == nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Middleware, or nil on unprotected
// routes.
func CurrentUser(c *gin.Context) *model.User {
	v, _ := c.Get(userKey)
	user, _ := v.(*model.User)
	return user
}
