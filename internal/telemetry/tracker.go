package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	sentryFlushTimeout = 2 * time.Second

	sentryTagCommand     = "command"
	sentryTagExecutionID = "execution_id"
	sentryTagVersion     = "version"
	sentryTagEventType   = "event_type"

	sentryCategory = "cli"
)

// Tracker logs events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}
func (tracker *noopTracker) Close()            {}

type stdoutTracker struct {
	w io.Writer
}

func (tracker *stdoutTracker) Track(event event) {
	fmt.Fprintf(
		tracker.w,
		"%s UTC TELEM %s: %s (execution_id=%s, event_id=%s)\n",
		event.time.In(time.UTC).Format("15:04:05"),
		event.command,
		event.eventType,
		event.executionID,
		event.id,
	)
}

func (tracker *stdoutTracker) Close() {}

// sentryTracker records the command lifecycle as breadcrumbs
// and reports command errors as exceptions
type sentryTracker struct {
	hub *sentry.Hub
}

func newSentryTracker(options sentry.ClientOptions) (*sentryTracker, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, err
	}
	return &sentryTracker{sentry.NewHub(client, sentry.NewScope())}, nil
}

func (tracker *sentryTracker) Track(event event) {
	tracker.hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag(sentryTagCommand, event.command)
		scope.SetTag(sentryTagExecutionID, event.executionID)
		scope.SetTag(sentryTagVersion, event.version)
		if event.userID != "" {
			scope.SetUser(sentry.User{ID: event.userID})
		}
	})

	switch event.eventType {
	case EventTypeCommandError:
		err := event.err()
		if err == nil {
			err = fmt.Errorf("%s failed", event.command)
		}
		tracker.hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag(sentryTagEventType, string(event.eventType))
			tracker.hub.CaptureException(err)
		})
	default:
		tracker.hub.AddBreadcrumb(&sentry.Breadcrumb{
			Category:  sentryCategory,
			Message:   string(event.eventType),
			Level:     sentry.LevelInfo,
			Timestamp: event.time,
			Data:      map[string]interface{}{"event_id": event.id},
		}, nil)
	}
}

func (tracker *sentryTracker) Close() {
	tracker.hub.Flush(sentryFlushTimeout)
}
