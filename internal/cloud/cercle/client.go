package cercle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/utils/api"

	"github.com/google/uuid"
)

const (
	apiV1 = "/api/v1"

	// DefaultRefreshTimeout bounds the session refresh call
	DefaultRefreshTimeout = 30 * time.Second

	defaultUserAgent = "cercle-cli"
)

// Client is a Cercle client
type Client interface {
	Request(method, path string, options api.RequestOptions, out interface{}) error

	Register(registration Registration) (auth.User, error)
	Login(creds Credentials) (auth.User, error)
	Logout() error
	RefreshToken(refreshToken string) (auth.Session, error)
	CurrentUser() (auth.User, error)
	IsAuthenticated() bool
	Session() auth.Session
	StoredUser() (auth.User, bool)

	Feed(opts FeedOptions) (Feed, error)
	UserPosts(userID string, opts FeedOptions) (Feed, error)
	CreatePost(post NewPost) (Post, error)
	DeletePost(postID string) error
	LikePost(postID string) (Post, error)
	UnlikePost(postID string) (Post, error)

	Comments(postID string) ([]Comment, error)
	CreateComment(postID, content string) (Comment, error)
	Replies(commentID string) ([]Comment, error)
	CreateReply(commentID, content string) (Comment, error)

	UserProfile(userID string) (auth.User, error)
	UpdateProfile(update ProfileUpdate) (auth.User, error)
	UploadAvatar(filename string, content io.Reader) (auth.User, error)
	CompleteOnboarding(onboarding Onboarding) (auth.User, error)
}

// ClientOptions are options to configure a Client
type ClientOptions struct {
	// HTTPClient is the client used to send requests, defaults to a new *http.Client
	HTTPClient *http.Client

	// RefreshTimeout bounds the session refresh call; zero uses DefaultRefreshTimeout
	// and a negative value disables the bound
	RefreshTimeout time.Duration

	// OnSessionExpired is called once for every failed session refresh,
	// after the stored session has been cleared
	OnSessionExpired func(err error)

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a new Cercle client which keeps its session in memory
func NewClient(baseURL string) Client {
	return NewAuthClient(baseURL, auth.NewMemoryStore(), ClientOptions{})
}

// NewAuthClient creates a new Cercle client capable of managing the user's session
func NewAuthClient(baseURL string, store auth.Store, options ClientOptions) Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	refreshTimeout := options.RefreshTimeout
	if refreshTimeout == 0 {
		refreshTimeout = DefaultRefreshTimeout
	}

	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &client{
		baseURL:          baseURL,
		store:            store,
		httpClient:       httpClient,
		refreshTimeout:   refreshTimeout,
		onSessionExpired: options.OnSessionExpired,
		userAgent:        userAgent,
	}
}

type client struct {
	baseURL          string
	store            auth.Store
	httpClient       *http.Client
	refreshTimeout   time.Duration
	onSessionExpired func(err error)
	userAgent        string

	refresher refresher
}

func (c *client) Request(method, path string, options api.RequestOptions, out interface{}) error {
	res, err := c.do(method, path, options)
	if err != nil {
		return err
	}
	return decodeJSON(res, out)
}

func (c *client) doJSON(method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	jsonOptions, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}

	options.Body = jsonOptions.Body
	options.ContentType = jsonOptions.ContentType

	return c.do(method, path, options)
}

func (c *client) doMultipart(method, path string, fields map[string]string, files []api.FormFile, options api.RequestOptions) (*http.Response, error) {
	formOptions, err := api.MultipartRequestOptions(fields, files...)
	if err != nil {
		return nil, err
	}

	options.Body = formOptions.Body
	options.ContentType = formOptions.ContentType

	return c.do(method, path, options)
}

func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	return c.doContext(context.Background(), method, path, options)
}

func (c *client) doContext(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	var body []byte
	if options.Body != nil {
		data, err := ioutil.ReadAll(options.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		body = data
	}

	var token string
	if !options.NoAuth {
		token = c.store.Get(auth.KeyAccessToken)
	}

	res, err := c.send(ctx, method, path, body, options, token)
	if err != nil {
		return nil, err
	}

	if isSuccess(res) {
		return res, nil
	}

	if res.StatusCode != http.StatusUnauthorized || options.NoAuth || options.PreventRefresh {
		defer res.Body.Close()
		return nil, parseResponseError(res)
	}
	discard(res)

	newToken, err := c.refresher.acquire(
		token,
		func() string { return c.store.Get(auth.KeyAccessToken) },
		c.refreshSession,
	)
	if err != nil {
		return nil, err
	}

	// the replay reports its own failure, a second 401 does not refresh again
	res, err = c.send(ctx, method, path, body, options, newToken)
	if err != nil {
		return nil, err
	}

	if isSuccess(res) {
		return res, nil
	}
	defer res.Body.Close()
	return nil, parseResponseError(res)
}

func (c *client) send(ctx context.Context, method, path string, body []byte, options api.RequestOptions, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if len(options.Query) > 0 {
		req.URL.RawQuery = options.Query.Encode()
	}

	for key, values := range options.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	contentType := options.ContentType
	if contentType == "" {
		contentType = api.MediaTypeJSON
	}
	req.Header.Set(api.HeaderContentType, contentType)
	req.Header.Set(api.HeaderRequestID, uuid.NewString())
	req.Header.Set(api.HeaderUserAgent, c.userAgent)

	if token != "" {
		req.Header.Set(api.HeaderAuthorization, "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NetworkError{err}
	}
	return res, nil
}

func isSuccess(res *http.Response) bool {
	return res.StatusCode >= 200 && res.StatusCode <= 299
}

func discard(res *http.Response) {
	io.Copy(ioutil.Discard, res.Body)
	res.Body.Close()
}

// decodeJSON decodes the response body into out and closes it
// An empty body leaves out untouched
func decodeJSON(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	if out == nil || res.StatusCode == http.StatusNoContent {
		io.Copy(ioutil.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
