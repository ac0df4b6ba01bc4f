package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Config configures the telemetry service
type Config struct {
	Mode      Mode
	SentryDSN string
	UserID    string
	Command   string
	Version   string

	// Out receives the events in stdout mode
	Out io.Writer
}

// Service tracks telemetry events
type Service struct {
	userID      string
	command     string
	version     string
	executionID string
	tracker     Tracker
}

// NewService creates a new telemetry service
// Mode "on" without a Sentry DSN tracks nothing
func NewService(config Config) *Service {
	service := Service{
		userID:      config.UserID,
		command:     config.Command,
		version:     config.Version,
		executionID: primitive.NewObjectID().Hex(),
		tracker:     &noopTracker{},
	}

	switch config.Mode {
	case ModeEmpty, ModeOn:
		if config.SentryDSN == "" {
			break
		}
		tracker, err := newSentryTracker(sentry.ClientOptions{
			Dsn:              config.SentryDSN,
			Release:          config.Version,
			AttachStacktrace: true,
		})
		if err == nil {
			service.tracker = tracker
		}
	case ModeStdout:
		out := config.Out
		if out == nil {
			out = os.Stdout
		}
		service.tracker = &stdoutTracker{out}
	}

	return &service
}

// TrackEvent tracks events
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	service.tracker.Track(event{
		id:          primitive.NewObjectID().Hex(),
		eventType:   eventType,
		userID:      service.userID,
		time:        time.Now(),
		executionID: service.executionID,
		command:     service.command,
		version:     service.version,
		data:        data,
	})
}

// Close shuts down the Service
func (service *Service) Close() {
	service.tracker.Close()
}
