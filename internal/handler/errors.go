package handler

import (
	"errors"
	"net/http"

	"sensitive-places-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"address not found"`
}

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyAddress),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrInvalidRadius):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSearchSuperseded):
		return http.StatusConflict
	case errors.Is(err, service.ErrProviderQuery),
		errors.Is(err, service.ErrGeocoding):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("handler: request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	case http.StatusBadGateway:
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("handler: upstream failure")
	}
	c.JSON(status, ErrorResponse{Error: rootMessage(err)})
}

// rootMessage returns the message of the innermost sentinel so clients do
// not see internal wrapping prefixes.
func rootMessage(err error) string {
	for _, sentinel := range []error{
		service.ErrEmptyAddress,
		service.ErrInvalidCoordinates,
		service.ErrInvalidRadius,
		service.ErrAddressNotFound,
		service.ErrSearchSuperseded,
		service.ErrProviderQuery,
		service.ErrGeocoding,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
