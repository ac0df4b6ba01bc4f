package cercle

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/utils/api"
	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"

	"github.com/google/uuid"
)

func TestClientRequest(t *testing.T) {
	t.Run("should attach the session token and default headers", func(t *testing.T) {
		server := newTestAPI(t, "T1")

		var mu sync.Mutex
		var header http.Header
		server.protect("/api/v1/ping", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			header = r.Header.Clone()
			mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{UserAgent: "cercle-cli/test"})

		var out map[string]string
		assert.Nil(t, c.Request(http.MethodGet, "/api/v1/ping", api.RequestOptions{}, &out))
		assert.Equal(t, map[string]string{"status": "ok"}, out)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "Bearer T1", header.Get(api.HeaderAuthorization))
		assert.Equal(t, api.MediaTypeJSON, header.Get(api.HeaderContentType))
		assert.Equal(t, "cercle-cli/test", header.Get(api.HeaderUserAgent))

		_, err := uuid.Parse(header.Get(api.HeaderRequestID))
		assert.Nil(t, err)
	})

	t.Run("should send a new request id with every request", func(t *testing.T) {
		server := newTestAPI(t, "T1")

		var mu sync.Mutex
		ids := map[string]bool{}
		server.protect("/api/v1/ping", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			ids[r.Header.Get(api.HeaderRequestID)] = true
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		for i := 0; i < 3; i++ {
			assert.Nil(t, c.Request(http.MethodGet, "/api/v1/ping", api.RequestOptions{}, nil))
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 3, len(ids))
	})

	t.Run("should encode the query and custom headers", func(t *testing.T) {
		server := newTestAPI(t, "T1")

		var mu sync.Mutex
		var query url.Values
		var custom string
		server.protect("/api/v1/search", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			query = r.URL.Query()
			custom = r.Header.Get("X-Custom")
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		assert.Nil(t, c.Request(http.MethodGet, "/api/v1/search", api.RequestOptions{
			Query:  url.Values{"q": []string{"go gophers"}},
			Header: http.Header{"X-Custom": []string{"value"}},
		}, nil))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, url.Values{"q": []string{"go gophers"}}, query)
		assert.Equal(t, "value", custom)
	})

	t.Run("should omit the bearer token when no session is stored", func(t *testing.T) {
		server := newTestAPI(t, "T1")

		var mu sync.Mutex
		var authorization []string
		server.mux.HandleFunc("/api/v1/public", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			authorization = r.Header.Values(api.HeaderAuthorization)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})

		c := NewClient(server.URL)
		assert.Nil(t, c.Request(http.MethodGet, "/api/v1/public", api.RequestOptions{}, nil))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 0, len(authorization))
	})

	t.Run("should return an http error for a failed response", func(t *testing.T) {
		server := newTestAPI(t, "T1")
		server.protect("/api/v1/missing", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "post not found", "code": "NOT_FOUND"})
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		err := c.Request(http.MethodGet, "/api/v1/missing", api.RequestOptions{}, nil)

		var httpErr HTTPError
		assert.True(t, errors.As(err, &httpErr), "expected an http error but got: %v", err)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Equal(t, "NOT_FOUND", httpErr.Code)
		assert.Equal(t, "post not found", httpErr.Message)
		assert.Equal(t, 0, server.refreshCount())
	})

	t.Run("should return a network error when the server is unreachable", func(t *testing.T) {
		server := newTestAPI(t, "T1")
		baseURL := server.URL
		server.Close()

		c, store := newTestClient(baseURL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		err := c.Request(http.MethodGet, "/api/v1/ping", api.RequestOptions{}, nil)

		var networkErr NetworkError
		assert.True(t, errors.As(err, &networkErr), "expected a network error but got: %v", err)
		assert.False(t, IsAuthError(err), "expected the session to be left alone")
		assert.Equal(t, "T1", store.Get(auth.KeyAccessToken))
	})

	t.Run("should not refresh a 401 for a request without auth", func(t *testing.T) {
		server := newTestAPI(t, "T2")
		server.protect("/api/v1/a", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		server.handleRefresh(func(w http.ResponseWriter, r *http.Request) (string, bool) {
			return "T2", true
		})

		c, store := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		err := c.Request(http.MethodGet, "/api/v1/a", api.RequestOptions{NoAuth: true}, nil)
		assert.Equal(t, HTTPError{StatusCode: http.StatusUnauthorized, Message: "invalid session"}, err)
		assert.Equal(t, 0, server.refreshCount())
		assert.Equal(t, []string{""}, server.headers("/api/v1/a"))
		assert.Equal(t, "T1", store.Get(auth.KeyAccessToken))
	})

	t.Run("should not refresh a 401 when refresh is prevented", func(t *testing.T) {
		server := newTestAPI(t, "T2")
		server.protect("/api/v1/a", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		server.handleRefresh(func(w http.ResponseWriter, r *http.Request) (string, bool) {
			return "T2", true
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		err := c.Request(http.MethodGet, "/api/v1/a", api.RequestOptions{PreventRefresh: true}, nil)
		assert.Equal(t, HTTPError{StatusCode: http.StatusUnauthorized, Message: "invalid session"}, err)
		assert.Equal(t, 0, server.refreshCount())
		assert.Equal(t, []string{"Bearer T1"}, server.headers("/api/v1/a"))
	})

	t.Run("should fail to decode a malformed response", func(t *testing.T) {
		server := newTestAPI(t, "T1")
		server.protect("/api/v1/broken", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("{not json"))
		})

		c, _ := newTestClient(server.URL, auth.Session{AccessToken: "T1", RefreshToken: "R1"}, ClientOptions{})

		var out map[string]string
		err := c.Request(http.MethodGet, "/api/v1/broken", api.RequestOptions{}, &out)
		assert.NotNil(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to decode response"), "unexpected error: %v", err)
	})
}
