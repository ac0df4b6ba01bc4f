package cercle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cercle-social/cercle-cli/internal/auth"
)

// testAPI is a fake Cercle API which accepts a single valid access token
type testAPI struct {
	*httptest.Server
	mux *http.ServeMux

	mu          sync.Mutex
	validToken  string
	authHeaders map[string][]string

	refreshCalls int32
}

func newTestAPI(t *testing.T, validToken string) *testAPI {
	t.Helper()

	api := &testAPI{
		mux:         http.NewServeMux(),
		validToken:  validToken,
		authHeaders: map[string][]string{},
	}
	api.Server = httptest.NewServer(api.mux)
	t.Cleanup(api.Close)
	return api
}

// protect registers a handler which responds with 401 unless the request
// carries the currently valid access token
func (api *testAPI) protect(path string, handler http.HandlerFunc) {
	api.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		api.mu.Lock()
		api.authHeaders[path] = append(api.authHeaders[path], header)
		valid := header == "Bearer "+api.validToken
		api.mu.Unlock()

		if !valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid session"})
			return
		}
		handler(w, r)
	})
}

// handleRefresh registers the refresh endpoint
// The handler runs before the new token is made valid
func (api *testAPI) handleRefresh(handler func(w http.ResponseWriter, r *http.Request) (string, bool)) {
	api.mux.HandleFunc(authRefreshPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&api.refreshCalls, 1)

		token, ok := handler(w, r)
		if !ok {
			return
		}

		api.mu.Lock()
		api.validToken = token
		api.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]string{"accessToken": token})
	})
}

func (api *testAPI) refreshCount() int {
	return int(atomic.LoadInt32(&api.refreshCalls))
}

func (api *testAPI) headers(path string) []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.authHeaders[path]...)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func decodeBody(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func newTestClient(baseURL string, session auth.Session, options ClientOptions) (*client, *auth.MemoryStore) {
	store := auth.NewMemoryStore()
	store.Update(map[string]string{
		auth.KeyAccessToken:  session.AccessToken,
		auth.KeyRefreshToken: session.RefreshToken,
		auth.KeyUser:         `{"id":"user-1","username":"ada"}`,
	})
	return NewAuthClient(baseURL, store, options).(*client), store
}

// waitForPending blocks until n callers are queued behind the in-flight refresh
func waitForPending(t *testing.T, c *client, n int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if refreshing, pending := c.refresher.inFlight(); refreshing && pending >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("timed out waiting for %d queued callers", n)
}
