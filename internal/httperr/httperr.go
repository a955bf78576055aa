package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
)

// Messages shared by every layer that reports a failure.
const (
	MsgInternal        = "Internal server error"
	MsgDatabaseFailure = "A database error occurred."
)

type HTTPError struct {
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Respond writes err as {"message": ...}. Errors that are not an *AppError
// are logged and collapsed into a generic 500.
func Respond(c *gin.Context, err error) {
	var ae *AppError
	if !errors.As(err, &ae) {
		logger.WithCtx(c.Request.Context()).Error("unhandled error", "error", err)
		Internal(c, MsgInternal)
		return
	}

	if ae.Kind == KindInternal && ae.Err != nil {
		logger.WithCtx(c.Request.Context()).Error(ae.Message, "error", ae.Err)
	}

	Write(c, ae.Kind.Status(), ae.Message)
}
