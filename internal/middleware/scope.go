package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
)

const ContextDBScope = "dbScope"

// DBScope opens a request scope and releases its connection, if one was ever
// taken, after the handler chain returns.
func DBScope(gw *db.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := gw.Begin(c.Request.Context())
		c.Set(ContextDBScope, scope)

		defer func() {
			if err := scope.Release(); err != nil {
				logger.WithCtx(c.Request.Context()).Warn("release db connection", "error", err)
			}
		}()

		c.Next()
	}
}

// Scope returns the request's unit of work. It panics when DBScope is not
// installed, which is a routing bug.
func Scope(c *gin.Context) *db.Scope {
	return c.MustGet(ContextDBScope).(*db.Scope)
}
