package cercle

import (
	"errors"
	"strings"
)

// AuthFailureCategory is a user-facing category of a failed register or login
type AuthFailureCategory string

// set of supported auth failure categories
const (
	AuthFailureDuplicateAccount   AuthFailureCategory = "duplicate_account"
	AuthFailureInvalidCredentials AuthFailureCategory = "invalid_credentials"
	AuthFailureValidation         AuthFailureCategory = "validation"
)

// set of structured error codes returned by the Cercle API
const (
	errCodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	errCodeInvalidCredentials = "INVALID_CREDENTIALS"
	errCodeValidation         = "VALIDATION_ERROR"
)

var authFailureMessages = map[AuthFailureCategory]string{
	AuthFailureDuplicateAccount:   "an account with this email or username already exists",
	AuthFailureInvalidCredentials: "invalid email or password",
	AuthFailureValidation:         "please check your input",
}

// message fragments used when the server sends no error code
var authFailureFragments = []struct {
	category  AuthFailureCategory
	fragments []string
}{
	{AuthFailureDuplicateAccount, []string{"already exists", "duplicate"}},
	{AuthFailureInvalidCredentials, []string{"invalid credentials", "invalid email or password", "incorrect password"}},
	{AuthFailureValidation, []string{"validation", "required", "must be"}},
}

// AuthFailure is a register or login failure translated for display
type AuthFailure struct {
	Category AuthFailureCategory
	Message  string
	Err      error
}

func (err AuthFailure) Error() string { return err.Message }

// Unwrap returns the original API error
func (err AuthFailure) Unwrap() error { return err.Err }

// translateAuthError categorizes HTTP errors from the register and login endpoints
// Errors which match no category are returned unchanged
func translateAuthError(err error) error {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	category, ok := categorize(httpErr)
	if !ok {
		return err
	}

	message := authFailureMessages[category]
	if category == AuthFailureValidation {
		message += ": " + httpErr.Message
	}
	return AuthFailure{category, message, err}
}

func categorize(err HTTPError) (AuthFailureCategory, bool) {
	switch err.Code {
	case errCodeDuplicateAccount:
		return AuthFailureDuplicateAccount, true
	case errCodeInvalidCredentials:
		return AuthFailureInvalidCredentials, true
	case errCodeValidation:
		return AuthFailureValidation, true
	}

	message := strings.ToLower(err.Message)
	for _, f := range authFailureFragments {
		for _, fragment := range f.fragments {
			if strings.Contains(message, fragment) {
				return f.category, true
			}
		}
	}
	return "", false
}
