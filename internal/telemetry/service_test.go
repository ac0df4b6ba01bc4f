package telemetry

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"
)

const (
	testUser    = "user-1"
	testCommand = "feed"
	testVersion = "1.2.3"
	testXID     = "executionID"
)

func TestNewService(t *testing.T) {
	t.Run("should create the expected service", func(t *testing.T) {
		service := NewService(Config{Mode: ModeStdout, UserID: testUser, Command: testCommand, Version: testVersion})

		assert.Equal(t, testCommand, service.command)
		assert.True(t, service.executionID != "", "service execution id must not be blank")
		assert.Equal(t, testUser, service.userID)
		assert.Equal(t, testVersion, service.version)
	})

	for _, tc := range []struct {
		description string
		config      Config
		expected    Tracker
	}{
		{
			description: "should track nothing when telemetry is off",
			config:      Config{Mode: ModeOff, SentryDSN: "https://public@sentry.example.com/1"},
			expected:    &noopTracker{},
		},
		{
			description: "should track nothing when telemetry is on without a sentry dsn",
			config:      Config{Mode: ModeOn},
			expected:    &noopTracker{},
		},
		{
			description: "should track nothing by default without a sentry dsn",
			config:      Config{},
			expected:    &noopTracker{},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewService(tc.config).tracker)
		})
	}

	t.Run("should track with sentry when telemetry is on with a sentry dsn", func(t *testing.T) {
		service := NewService(Config{Mode: ModeOn, SentryDSN: "https://public@sentry.example.com/1"})

		_, ok := service.tracker.(*sentryTracker)
		assert.True(t, ok, "expected a sentry tracker but got: %T", service.tracker)
	})

	t.Run("should write events to the configured writer in stdout mode", func(t *testing.T) {
		out := new(bytes.Buffer)
		service := NewService(Config{Mode: ModeStdout, Command: testCommand, Out: out})

		service.TrackEvent(EventTypeCommandStart)
		service.Close()

		assert.True(t, strings.Contains(out.String(), "TELEM feed: COMMAND_START (execution_id="+service.executionID), "unexpected output: %s", out.String())
	})
}

func TestServiceTrackEvent(t *testing.T) {
	t.Run("should track the expected event", func(t *testing.T) {
		tracker := &testTracker{}
		service := &Service{
			command:     testCommand,
			userID:      testUser,
			version:     testVersion,
			executionID: testXID,
			tracker:     tracker,
		}

		service.TrackEvent(EventTypeCommandError, EventData{Key: EventDataKeyError, Value: errors.New("error")})

		assert.Equal(t, EventTypeCommandError, tracker.lastTrackedEvent.eventType)
		assert.Equal(t, testCommand, tracker.lastTrackedEvent.command)
		assert.Equal(t, testXID, tracker.lastTrackedEvent.executionID)
		assert.Equal(t, testUser, tracker.lastTrackedEvent.userID)
		assert.Equal(t, testVersion, tracker.lastTrackedEvent.version)
		assert.True(t, tracker.lastTrackedEvent.id != "", "event id must not be blank")
		assert.Equal(t, 1, len(tracker.lastTrackedEvent.data))
		assert.Equal(t, errors.New("error"), tracker.lastTrackedEvent.err())
	})

	t.Run("should give every event a new id", func(t *testing.T) {
		tracker := &testTracker{}
		service := &Service{tracker: tracker}

		service.TrackEvent(EventTypeCommandStart)
		first := tracker.lastTrackedEvent.id
		service.TrackEvent(EventTypeCommandComplete)

		assert.NotEqual(t, first, tracker.lastTrackedEvent.id)
	})
}

type testTracker struct {
	lastTrackedEvent event
	closed           bool
}

func (tracker *testTracker) Track(event event) {
	tracker.lastTrackedEvent = event
}

func (tracker *testTracker) Close() {
	tracker.closed = true
}
