package cercle

import (
	"context"
	"net/http"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/utils/api"
)

const (
	authPath         = apiV1 + "/auth"
	authRegisterPath = authPath + "/register"
	authLoginPath    = authPath + "/login"
	authLogoutPath   = authPath + "/logout"
	authRefreshPath  = authPath + "/refresh"
	authMePath       = authPath + "/me"
)

// Credentials are the user's login credentials
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the new user's account details
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type authResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         auth.User `json:"user"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type userResponse struct {
	User auth.User `json:"user"`
}

func (c *client) Register(registration Registration) (auth.User, error) {
	return c.authenticate(authRegisterPath, registration)
}

func (c *client) Login(creds Credentials) (auth.User, error) {
	return c.authenticate(authLoginPath, creds)
}

func (c *client) authenticate(path string, payload interface{}) (auth.User, error) {
	res, err := c.doJSON(http.MethodPost, path, payload, api.RequestOptions{NoAuth: true})
	if err != nil {
		return auth.User{}, translateAuthError(err)
	}

	var out authResponse
	if err := decodeJSON(res, &out); err != nil {
		return auth.User{}, err
	}

	session := auth.Session{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}
	if err := auth.Persist(c.store, session, out.User); err != nil {
		return auth.User{}, err
	}
	return out.User, nil
}

// Logout invalidates the server session on a best-effort basis
// The stored session is cleared regardless of the server's response
func (c *client) Logout() error {
	session := auth.LoadSession(c.store)
	if session.AccessToken != "" || session.RefreshToken != "" {
		res, err := c.doJSON(
			http.MethodPost,
			authLogoutPath,
			refreshPayload{session.RefreshToken},
			api.RequestOptions{PreventRefresh: true},
		)
		if err == nil {
			discard(res)
		}
	}

	c.store.Clear()
	return c.store.Save()
}

func (c *client) RefreshToken(refreshToken string) (auth.Session, error) {
	return c.refreshTokenContext(context.Background(), refreshToken)
}

func (c *client) refreshTokenContext(ctx context.Context, refreshToken string) (auth.Session, error) {
	options, err := api.JSONRequestOptions(refreshPayload{refreshToken})
	if err != nil {
		return auth.Session{}, err
	}
	options.NoAuth = true

	res, err := c.doContext(ctx, http.MethodPost, authRefreshPath, options)
	if err != nil {
		return auth.Session{}, err
	}

	var session auth.Session
	if err := decodeJSON(res, &session); err != nil {
		return auth.Session{}, err
	}
	return session, nil
}

func (c *client) CurrentUser() (auth.User, error) {
	var out userResponse
	if err := c.Request(http.MethodGet, authMePath, api.RequestOptions{}, &out); err != nil {
		return auth.User{}, err
	}

	if err := auth.PersistUser(c.store, out.User); err != nil {
		return auth.User{}, err
	}
	return out.User, nil
}

func (c *client) IsAuthenticated() bool {
	return c.store.Get(auth.KeyAccessToken) != ""
}

func (c *client) Session() auth.Session {
	return auth.LoadSession(c.store)
}

func (c *client) StoredUser() (auth.User, bool) {
	return auth.StoredUser(c.store)
}
