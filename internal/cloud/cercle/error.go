package cercle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

// ErrNoRefreshToken is returned when the session cannot be refreshed
// because no refresh token is stored
var ErrNoRefreshToken = errors.New("no refresh token")

var errRefreshAborted = errors.New("session refresh aborted")

// HTTPError is a non-2xx response from the Cercle API
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (err HTTPError) Error() string {
	return err.Message
}

// NetworkError is a failure to get any response from the Cercle API
type NetworkError struct {
	Err error
}

func (err NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", err.Err)
}

// Unwrap returns the underlying transport error
func (err NetworkError) Unwrap() error { return err.Err }

// AuthError is a failure to refresh the session
// It is terminal: the stored session has been cleared when it is returned
type AuthError struct {
	Err error
}

func (err AuthError) Error() string {
	return fmt.Sprintf("session expired: %s", err.Err)
}

// Unwrap returns the cause of the refresh failure
func (err AuthError) Unwrap() error { return err.Err }

// IsAuthError reports whether err is an AuthError
func IsAuthError(err error) bool {
	var authErr AuthError
	return errors.As(err, &authErr)
}

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// parseResponseError reads the error body of a non-2xx response
// A body which cannot be decoded is treated as an empty payload
func parseResponseError(res *http.Response) error {
	var payload errorPayload
	if data, err := ioutil.ReadAll(res.Body); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			payload = errorPayload{}
		}
	}

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		message = fmt.Sprintf("HTTP Error: %d", res.StatusCode)
	}

	return HTTPError{
		StatusCode: res.StatusCode,
		Code:       payload.Code,
		Message:    message,
	}
}
