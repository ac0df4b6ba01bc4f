package cercle

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/utils/api"
)

const (
	usersPath          = apiV1 + "/users"
	userPathPattern    = usersPath + "/%s"
	usersMePath        = usersPath + "/me"
	usersMeAvatarPath  = usersMePath + "/avatar"
	usersMeOnboardPath = usersMePath + "/onboarding"

	formFieldAvatar = "avatar"
)

// ProfileUpdate is a partial update of the current user's profile
// Empty fields are left unchanged
type ProfileUpdate struct {
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Onboarding holds the answers of the onboarding wizard
type Onboarding struct {
	DisplayName string   `json:"displayName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Interests   []string `json:"interests"`
}

func (c *client) UserProfile(userID string) (auth.User, error) {
	var out userResponse
	if err := c.Request(http.MethodGet, fmt.Sprintf(userPathPattern, url.PathEscape(userID)), api.RequestOptions{}, &out); err != nil {
		return auth.User{}, err
	}
	return out.User, nil
}

func (c *client) UpdateProfile(update ProfileUpdate) (auth.User, error) {
	res, err := c.doJSON(http.MethodPut, usersMePath, update, api.RequestOptions{})
	if err != nil {
		return auth.User{}, err
	}
	return c.storeUserResponse(res)
}

func (c *client) UploadAvatar(filename string, content io.Reader) (auth.User, error) {
	res, err := c.doMultipart(
		http.MethodPost,
		usersMeAvatarPath,
		nil,
		[]api.FormFile{{Field: formFieldAvatar, Filename: filename, Content: content}},
		api.RequestOptions{},
	)
	if err != nil {
		return auth.User{}, err
	}
	return c.storeUserResponse(res)
}

func (c *client) CompleteOnboarding(onboarding Onboarding) (auth.User, error) {
	if onboarding.Interests == nil {
		onboarding.Interests = []string{}
	}

	res, err := c.doJSON(http.MethodPost, usersMeOnboardPath, onboarding, api.RequestOptions{})
	if err != nil {
		return auth.User{}, err
	}
	return c.storeUserResponse(res)
}

// storeUserResponse decodes the current user from the response and caches it
func (c *client) storeUserResponse(res *http.Response) (auth.User, error) {
	var out userResponse
	if err := decodeJSON(res, &out); err != nil {
		return auth.User{}, err
	}

	if err := auth.PersistUser(c.store, out.User); err != nil {
		return auth.User{}, err
	}
	return out.User, nil
}
