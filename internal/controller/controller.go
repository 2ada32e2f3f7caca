// Package controller holds the pieces shared by the admin and candidate
// controller packages, chiefly the error-to-status mapping.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError converts a service error into the uniform error body. Anything
// outside the taxonomy is a 500 with a generic message; internals are logged,
// never leaked.
func RespondError(ctx *gin.Context, err error) {
	var validationErr *apperr.ValidationError
	var authErr *apperr.AuthRequired
	var storageErr *apperr.StorageError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Error()})
	case errors.As(err, &authErr):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: authErr.Error(), RequiresSecret: true})
	case errors.As(err, &storageErr):
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Storage failure")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "storage failure"})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
