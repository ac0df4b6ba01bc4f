package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the pair of tokens issued by the Cercle API
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

var errNoExpiry = errors.New("access token has no expiry")

// AccessTokenExpiry returns the expiry of the session's access token
//
// The token signature is not verified; the result is informational only
// and must not be used to decide whether a request is authorized
func (s Session) AccessTokenExpiry() (time.Time, error) {
	if s.AccessToken == "" {
		return time.Time{}, errors.New("no access token")
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, &claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, errNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// RedactedAccessToken returns the access token with all but its last characters hidden
func (s Session) RedactedAccessToken() string {
	return redactToken(s.AccessToken)
}

// RedactedRefreshToken returns the refresh token with all but its last characters hidden
func (s Session) RedactedRefreshToken() string {
	return redactToken(s.RefreshToken)
}

func redactToken(token string) string {
	const visible = 6
	if len(token) <= visible {
		return redact(token)
	}
	return redact(token[:len(token)-visible]) + token[len(token)-visible:]
}
