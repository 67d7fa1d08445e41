package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
)

// ControlResponse reports the outcome of a control action. Reached is false
// when the component has not (yet) arrived at the desired state; the caller
// may re-read the component to observe progress. Failed actions carry the
// failure in ErrorMsg alongside the non-2xx status.
type ControlResponse struct {
	ComponentID string `json:"componentId"`
	Desired     string `json:"desired"`
	Reached     bool   `json:"reached"`
	ErrorMsg    string `json:"errorMessage,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service-layer errors onto HTTP statuses. Upstream failures
// surface as 502 so callers can tell an adapter fault from a vendor fault.
func statusFor(err error) int {
	var actionErr *jablonet.ControlActionError
	var apiErr *jablonet.APIError

	switch {
	case errors.Is(err, jablonet.ErrBadRequest), errors.Is(err, jablonet.ErrNoPinCode):
		return fiber.StatusBadRequest
	case errors.Is(err, jablonet.ErrIncorrectPinCode):
		return fiber.StatusForbidden
	case errors.As(err, &actionErr):
		return fiber.StatusConflict
	case errors.Is(err, jablonet.ErrUnauthorized),
		errors.Is(err, jablonet.ErrSessionExpired),
		errors.Is(err, jablonet.ErrInvalidSession),
		errors.As(err, &apiErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(ErrorResponse{Error: err.Error()})
}
