package profile

import (
	"fmt"

	"github.com/cercle-social/cercle-cli/internal/auth"
)

type profileOutput struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	Joined      string `json:"joined,omitempty"`
}

func newProfileOutput(u auth.User) profileOutput {
	out := profileOutput{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Followers:   u.FollowersCount,
		Following:   u.FollowingCount,
	}
	if !u.CreatedAt.IsZero() {
		out.Joined = u.CreatedAt.UTC().Format("2006-01-02")
	}
	return out
}

func profileTitle(u auth.User) string {
	if u.DisplayName == "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("%s (@%s)", u.DisplayName, u.Username)
}
