package middleware

import (
	"net/http"

	"sweeply/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// SessionHeader carries the signed browser session token both ways.
	SessionHeader = "X-Session-Token"
	// SessionIDKey is the gin context key holding the resolved session id.
	SessionIDKey = "sessionID"
)

// SessionMiddleware resolves the anonymous browser session that owns the
// booking draft. A missing or invalid token gets a fresh one minted and
// echoed back in the response header; the customer stays anonymous either
// way, the token only keys their draft.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token != "" {
			if sessionID, err := utils.SessionIDFromToken(token); err == nil {
				c.Set(SessionIDKey, sessionID)
				c.Next()
				return
			}
		}

		token, sessionID, err := utils.MintSessionToken()
		if err != nil {
			utils.GetLogger().Error("failed to mint session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Header(SessionHeader, token)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
