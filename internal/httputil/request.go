package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ParseID parses the named path parameter as a record id.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, ErrIDInvalid
	}

	return parsed, nil
}

// BindData binds the JSON body of the request to the struct passed in data.
//
// Errors that tell the client what to fix, like type mismatches and errors
// from custom UnmarshalJSON implementations, are returned as they are.
// Everything else is replaced with a generic error.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var syntaxError *json.SyntaxError
		if errors.As(err, &syntaxError) {
			log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			return ErrInvalidBody
		}

		var invalidUnmarshalError *json.InvalidUnmarshalError
		if errors.As(err, &invalidUnmarshalError) {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			return ErrInvalidBody
		}

		return err
	}

	return nil
}
