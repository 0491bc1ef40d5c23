package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cashcard-io/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the response body for errors that carry one.
type HTTPError struct {
	Error string `json:"error" example:"the id specified in the URL is not a valid number"`
}

// New writes an error response with the given status on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Handler translates an error into the response for it.
//
// A lookup that matched no record responds 404 with an empty body. Server
// side failures respond 500 with a generic message that carries the request
// id so users can hand it to the server administrator. Every other error is
// a client error and responds 400 with the error text.
func Handler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)

	case errors.Is(err, models.ErrGeneral):
		New(c, http.StatusInternalServerError, "%s, please contact your server administrator. The request id is '%s', send this to your server administrator to help them finding the problem", err.Error(), requestid.Get(c))

	default:
		New(c, http.StatusBadRequest, err.Error())
	}
}

// DatabaseError logs err and responds like Handler does for server side
// failures. It is for errors from direct database access, which bypasses
// the rewriting that gorm's callbacks do for queries.
func DatabaseError(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	Handler(c, models.ErrGeneral)
}
