package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/telemetry"
	"github.com/cercle-social/cercle-cli/internal/terminal"
	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"
	"github.com/cercle-social/cercle-cli/internal/utils/test/mock"

	"github.com/spf13/pflag"
)

type testCommand struct {
	handler func(profile *user.Profile, ui terminal.UI, clients Clients) error
	page    int
}

func (cmd *testCommand) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.page, "page", 1, "the page")
}

func (cmd *testCommand) Handler(profile *user.Profile, ui terminal.UI, clients Clients) error {
	return cmd.handler(profile, ui, clients)
}

func newTestFactory(t *testing.T, profile *user.Profile) (*CommandFactory, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out, ui := mock.NewUI()
	events := new(bytes.Buffer)

	return &CommandFactory{
		profile:      profile,
		sessionStore: profile,
		ui:           ui,
		telemetryService: telemetry.NewService(telemetry.Config{
			Mode: telemetry.ModeStdout,
			Out:  events,
		}),
	}, out, events
}

func TestCommandFactoryBuild(t *testing.T) {
	factory, _, _ := newTestFactory(t, mock.NewProfile(t))

	cmd := factory.Build(CommandDefinition{
		Use:         "post",
		Description: "Manage your posts",
		SubCommands: []CommandDefinition{
			{
				Use:         "create",
				Display:     "post create",
				Description: "Create a post",
				Aliases:     []string{"new"},
				Command:     &testCommand{},
			},
		},
	})

	assert.Equal(t, "post", cmd.Use)
	assert.Equal(t, "Manage your posts", cmd.Short)
	assert.True(t, cmd.RunE == nil, "expected a command group to not run")

	subCommands := cmd.Commands()
	assert.Equal(t, 1, len(subCommands))

	create := subCommands[0]
	assert.Equal(t, []string{"new"}, create.Aliases)
	assert.True(t, create.RunE != nil, "expected the command to run")
	assert.NotNil(t, create.Flags().Lookup("page"))
}

func TestCommandFactoryRun(t *testing.T) {
	t.Run("should track the command start and completion", func(t *testing.T) {
		factory, _, events := newTestFactory(t, mock.NewProfile(t))

		err := factory.run("feed", &testCommand{handler: func(profile *user.Profile, ui terminal.UI, clients Clients) error {
			assert.NotNil(t, clients.Cercle)
			return nil
		}})
		assert.Nil(t, err)

		lines := strings.Split(strings.TrimSpace(events.String()), "\n")
		assert.Equal(t, 2, len(lines))
		assert.True(t, strings.Contains(lines[0], "COMMAND_START"), "unexpected event: %s", lines[0])
		assert.True(t, strings.Contains(lines[1], "COMMAND_COMPLETE"), "unexpected event: %s", lines[1])
	})

	t.Run("should track a failed command and disable its usage", func(t *testing.T) {
		factory, _, events := newTestFactory(t, mock.NewProfile(t))

		err := factory.run("feed", &testCommand{handler: func(profile *user.Profile, ui terminal.UI, clients Clients) error {
			return errors.New("something bad happened")
		}})
		assert.Equal(t, "feed failed: something bad happened", err.Error())

		var disableUsage DisableUsage
		assert.True(t, errors.As(err, &disableUsage), "expected usage to be disabled")

		assert.True(t, strings.Contains(events.String(), "COMMAND_ERROR"), "expected an error event")
	})

	t.Run("should suggest logging in again once the session expires", func(t *testing.T) {
		factory, _, _ := newTestFactory(t, mock.NewProfile(t))

		err := factory.run("whoami", &testCommand{handler: func(profile *user.Profile, ui terminal.UI, clients Clients) error {
			return NewWrapped("failed to get current user", cercle.AuthError{Err: cercle.ErrNoRefreshToken})
		}})

		var suggester CommandSuggester
		assert.True(t, errors.As(err, &suggester), "expected a command suggester")
		assert.Equal(t, []string{"cercle login"}, suggester.SuggestedCommands())
	})
}

func TestCommandFactoryClients(t *testing.T) {
	t.Run("should build a cercle client with the profile session", func(t *testing.T) {
		var mu sync.Mutex
		var authorization, userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			authorization = r.Header.Get("Authorization")
			userAgent = r.Header.Get("User-Agent")
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"user":{"id":"user-1","username":"ada"}}`)
		}))
		defer server.Close()

		profile := mock.NewProfileWithSession(t, auth.Session{AccessToken: "access", RefreshToken: "refresh"}, auth.User{ID: "user-1"})
		profile.Flags.BaseURL = server.URL

		factory, _, _ := newTestFactory(t, profile)

		u, err := factory.clients().Cercle.CurrentUser()
		assert.Nil(t, err)
		assert.Equal(t, "ada", u.Username)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "Bearer access", authorization)
		assert.True(t, strings.HasPrefix(userAgent, "cercle-cli/"), "unexpected user agent: %s", userAgent)
	})

	t.Run("should warn the user once the session expires", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		profile := mock.NewProfileWithSession(t, auth.Session{AccessToken: "access", RefreshToken: "refresh"}, auth.User{ID: "user-1"})
		profile.Flags.BaseURL = server.URL

		factory, out, events := newTestFactory(t, profile)

		_, err := factory.clients().Cercle.CurrentUser()
		assert.True(t, cercle.IsAuthError(err), "expected an auth error but got: %v", err)

		assert.Equal(t, "01:23:45 UTC WARN  "+msgSessionExpired+"\n", out.String())
		assert.True(t, strings.Contains(events.String(), "SESSION_EXPIRED"), "expected a session expired event")
		assert.Equal(t, auth.Session{}, profile.Session())
	})
}

func TestErrorLogs(t *testing.T) {
	t.Run("should print only the error without follow ups", func(t *testing.T) {
		out, ui := mock.NewUI()

		ui.Print(errorLogs(errors.New("something bad happened"))...)

		assert.Equal(t, "01:23:45 UTC ERROR something bad happened\n", out.String())
	})

	t.Run("should print the suggested commands of a wrapped error", func(t *testing.T) {
		out, ui := mock.NewUI()

		ui.Print(errorLogs(fmt.Errorf("whoami failed: %w", errDisableUsage{ErrNotLoggedIn}))...)

		assert.Equal(t, `01:23:45 UTC ERROR whoami failed: you are not logged in
01:23:45 UTC DEBUG Try running instead
  cercle login
  cercle register
`, out.String())
	})
}
