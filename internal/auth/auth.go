package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// set of session store keys
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// SessionKeys are the store keys which make up a session
var SessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUser}

// Store is a session store
//
// Implementations must be safe for concurrent use and must apply
// Update and Clear atomically: no caller may observe a partially
// written or partially cleared session
type Store interface {
	Get(key string) string
	Set(key, value string)
	Update(values map[string]string)
	Clear()
	Save() error
}

// User is the last known snapshot of the logged in user
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	DisplayName         string    `json:"displayName,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	AvatarURL           string    `json:"avatarUrl,omitempty"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	FollowersCount      int       `json:"followersCount"`
	FollowingCount      int       `json:"followingCount"`
	CreatedAt           time.Time `json:"createdAt,omitempty"`
}

// Name returns the user's display name, falling back to the username
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// RedactedEmail returns the user's email with its local part masked
func (u User) RedactedEmail() string {
	at := strings.LastIndex(u.Email, "@")
	if at <= 0 {
		return redact(u.Email)
	}
	local := u.Email[:at]
	if len(local) == 1 {
		return redact(local) + u.Email[at:]
	}
	return local[:1] + redact(local[1:]) + u.Email[at:]
}

func redact(s string) string {
	return strings.Repeat("*", len(s))
}

// LoadSession reads the session from the store
func LoadSession(store Store) Session {
	return Session{
		AccessToken:  store.Get(KeyAccessToken),
		RefreshToken: store.Get(KeyRefreshToken),
	}
}

// StoredUser reads the cached user from the store
// The returned bool reports whether a user was found
func StoredUser(store Store) (User, bool) {
	data := store.Get(KeyUser)
	if data == "" {
		return User{}, false
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return User{}, false
	}
	return user, true
}

// Persist writes the session and user to the store in a single update and saves it
func Persist(store Store, session Session, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	store.Update(map[string]string{
		KeyAccessToken:  session.AccessToken,
		KeyRefreshToken: session.RefreshToken,
		KeyUser:         string(data),
	})
	return store.Save()
}

// PersistUser overwrites the cached user and saves the store
func PersistUser(store Store, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	store.Set(KeyUser, string(data))
	return store.Save()
}
