package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mini-erp-personal/backend/internal/httputil"
)

// userIDKey is the gin context key under which the middleware stores
// the authenticated user's ID.
const userIDKey = "userID"

// Middleware verifies the Bearer token of the request and stores the
// authenticated user's ID in the context. Requests without a valid
// token are rejected with 401.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.Error(c, http.StatusUnauthorized, "no autorizado")
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			httputil.Error(c, http.StatusUnauthorized, "no autorizado")
			c.Abort()
			return
		}

		userID, err := ParseToken(secret, token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the context.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(userIDKey)
	userID, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
