package cercle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cercle-social/cercle-cli/internal/auth"
)

type refreshResult struct {
	token string
	err   error
}

// refresher ensures at most one session refresh is in flight per client
//
// The first caller to acquire while idle owns the refresh; callers arriving
// while it runs are queued and receive the owner's outcome in arrival order.
// The queue is only non-empty while refreshing is true and is drained
// under the same lock that clears the flag
type refresher struct {
	mu         sync.Mutex
	refreshing bool
	pending    []chan refreshResult
}

// acquire returns the access token to replay a request which was rejected
// while carrying staleToken
func (r *refresher) acquire(staleToken string, current func() string, refresh func() (string, error)) (string, error) {
	r.mu.Lock()

	if r.refreshing {
		ch := make(chan refreshResult, 1)
		r.pending = append(r.pending, ch)
		r.mu.Unlock()

		res := <-ch
		return res.token, res.err
	}

	// a refresh completed after the rejected request was sent
	if token := current(); token != "" && token != staleToken {
		r.mu.Unlock()
		return token, nil
	}

	r.refreshing = true
	r.mu.Unlock()

	return r.run(refresh)
}

func (r *refresher) run(refresh func() (string, error)) (token string, err error) {
	err = errRefreshAborted
	defer func() { r.settle(token, err) }()

	token, err = refresh()
	return token, err
}

func (r *refresher) settle(token string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.pending {
		ch <- refreshResult{token, err}
	}
	r.pending = nil
	r.refreshing = false
}

// inFlight reports whether a refresh is running and how many callers wait on it
func (r *refresher) inFlight() (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshing, len(r.pending)
}

func (c *client) refreshSession() (string, error) {
	refreshToken := c.store.Get(auth.KeyRefreshToken)
	if refreshToken == "" {
		return "", c.expireSession(ErrNoRefreshToken)
	}

	ctx := context.Background()
	if c.refreshTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.refreshTimeout)
		defer cancel()
	}

	session, err := c.refreshTokenContext(ctx, refreshToken)
	if err != nil {
		return "", c.expireSession(err)
	}
	if session.AccessToken == "" {
		return "", c.expireSession(errors.New("refresh response did not include an access token"))
	}

	values := map[string]string{auth.KeyAccessToken: session.AccessToken}
	if session.RefreshToken != "" {
		values[auth.KeyRefreshToken] = session.RefreshToken
	}
	c.store.Update(values)

	if err := c.store.Save(); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}
	return session.AccessToken, nil
}

// expireSession clears the stored session and notifies the session expired handler
func (c *client) expireSession(cause error) error {
	c.store.Clear()
	if saveErr := c.store.Save(); saveErr != nil {
		cause = fmt.Errorf("%w (failed to clear saved session: %s)", cause, saveErr)
	}

	err := AuthError{cause}
	if c.onSessionExpired != nil {
		c.onSessionExpired(err)
	}
	return err
}
