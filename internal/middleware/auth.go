package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

const (
	MsgMissingAuthHeader = "Missing authorization header"
	MsgBadAuthHeader     = "Invalid authorization header"
	MsgInvalidToken      = "Invalid or expired token"
)

func AuthMiddleware(tokens *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, MsgMissingAuthHeader)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, MsgBadAuthHeader)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, MsgInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}
