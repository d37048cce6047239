package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/govjobs/govjobs-backend/internal/validator"
	"github.com/rs/zerolog"
)

// respondError maps a service error onto the response envelope. Anything
// unrecognised is logged and reported as a bare 500.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, verr.Fields)
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.Fail(c, http.StatusBadRequest, response.ErrNoFieldsToUpdate)
	case errors.Is(err, service.ErrInvalidStatus):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
	case errors.Is(err, service.ErrInvalidCategory):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidCategory)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusBadRequest, response.ErrConflict)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrMailFailed):
		response.Fail(c, http.StatusInternalServerError, response.ErrMailFailed)
	default:
		log.Error().Err(err).
			Str("request_id", response.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// bindCreate binds a create payload, replying 400 on failure.
func bindCreate(c *gin.Context, dst any) bool {
	if fields := validator.Bind(c, dst); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return false
	}
	return true
}

// bindUpdate is bindCreate for partial updates; an empty body binds as an
// empty update so the service can report NO_FIELDS_TO_UPDATE.
func bindUpdate(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
	return false
}

func deleted(c *gin.Context, noun string) {
	response.Message(c, noun+" deleted successfully")
}
