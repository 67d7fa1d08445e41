package jablonet

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the dispatch status taxonomy and the control path.
var (
	// ErrBadRequest is returned when the API rejects the request payload (HTTP 400).
	ErrBadRequest = errors.New("jablonet: bad request")
	// ErrUnauthorized is returned on credential failure or a rejected session (HTTP 401).
	ErrUnauthorized = errors.New("jablonet: unauthorized")
	// ErrSessionExpired is returned when the session timed out upstream (HTTP 408).
	ErrSessionExpired = errors.New("jablonet: session expired")
	// ErrInvalidSession is returned when a login succeeds at the transport
	// level but the response carries no usable session id.
	ErrInvalidSession = errors.New("jablonet: login response contains no session id")
	// ErrNoPinCode is returned when a control action has neither an explicit
	// nor a default authorization code.
	ErrNoPinCode = errors.New("jablonet: no pin code provided and no default configured")
	// ErrIncorrectPinCode is returned when the API rejects the supplied authorization code.
	ErrIncorrectPinCode = errors.New("jablonet: incorrect pin code")
)

// APIError is an unclassified non-200 response. Body carries the raw
// response text for diagnostics.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jablonet: api returned %d: %s", e.Status, e.Body)
}

// ControlActionError is a control action rejected by the API for a reason
// other than a wrong authorization code. Code and Message carry the server
// strings verbatim.
type ControlActionError struct {
	ComponentID string
	Code        string
	Message     string
}

func (e *ControlActionError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("jablonet: control action failed: %s: %s", e.Code, e.Message)
	case e.ComponentID != "":
		return fmt.Sprintf("jablonet: control action on %s failed: %s", e.ComponentID, e.Code)
	default:
		return fmt.Sprintf("jablonet: control action failed: %s", e.Code)
	}
}

// classifyStatus maps an HTTP status to the error taxonomy. A nil return
// means the response is a success and its body can be decoded.
func classifyStatus(status int, body []byte) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusRequestTimeout:
		return ErrSessionExpired
	default:
		return &APIError{Status: status, Body: string(body)}
	}
}

// sessionLost reports whether err indicates the current session is no longer
// valid, so a single re-login and replay may recover the call.
func sessionLost(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired)
}
