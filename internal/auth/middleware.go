package auth

import (
	"net/http"
	"strings"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key the middleware stores the resolved user under.
const UserKey = "user"

type UserSource interface {
	FindByUsername(username string) (*model.User, error)
}

// RequireUser rejects requests without a valid bearer token resolving to a
// known user. The 401 message stays generic regardless of which check failed.
func RequireUser(tokens *Manager, users UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		username, err := tokens.ParseToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.FindByUsername(username)
		if err != nil || user == nil {
			unauthorized(c)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
