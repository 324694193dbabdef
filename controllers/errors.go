package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-master/services"
	"hotel-master/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// NotFound gets its own 404 body; every untyped error is logged and collapsed
// into a generic operation-failed answer so storage details never leak.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidDateFormat):
		utils.JSONError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "check-out date must be later than check-in date")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking status")
	case errors.Is(err, services.ErrUsernameTaken):
		utils.JSONError(c, http.StatusConflict, "username already exists")
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "email already exists")
	case errors.Is(err, services.ErrSelfDeletionForbidden):
		utils.JSONError(c, http.StatusForbidden, "cannot delete the currently logged-in admin account")
	case errors.Is(err, services.ErrRoomCreationFailed):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("operation failed")
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
	}
}
