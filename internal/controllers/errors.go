package controllers

import (
	"errors"
	"net/http"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error  string            `json:"error" example:"An ID specified in the query string was not a valid UUID"` // The error
	Errors map[string]string `json:"errors,omitempty"`                                                         // Errors keyed by the name of the invalid field
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrReferentialIntegrity) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

func newHTTPError(err error) httpError {
	e := httpError{Error: err.Error()}

	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		e.Error = "the submitted data is invalid"
		e.Errors = validationErr.Fields()
	}

	return e
}

// abort writes the error response for err.
//
// Server errors are logged with the request ID. Their cause has already
// been replaced with a generic message for the client.
func abort(c *gin.Context, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msgf("%T: %v", err, err.Error())
	}

	c.AbortWithStatusJSON(code, newHTTPError(err))
}

var errLimitInvalid = errors.New("the limit must be a positive number")
