package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData decodes the JSON request body into data.
//
// An empty body maps to ErrRequestBodyEmpty. Type mismatches are
// returned as-is so the caller can tell the user which field is wrong;
// everything else is logged with the request ID and collapsed into
// ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(&data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return err
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// UUIDFromString parses a resource ID from a path or query parameter.
// The empty string parses to uuid.Nil since optional query parameters
// may be absent. gin cannot bind uuid.UUID itself, see
// https://github.com/gin-gonic/gin/pull/3045.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}
