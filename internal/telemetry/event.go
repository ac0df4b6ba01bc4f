package telemetry

import (
	"time"
)

type event struct {
	id          string
	eventType   EventType
	userID      string
	time        time.Time
	executionID string
	command     string
	version     string
	data        []EventData
}

// EventData holds additional event information
type EventData struct {
	Key   EventDataKey
	Value interface{}
}

// EventType is a cli event type
type EventType string

// set of supported cli event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
	EventTypeSessionExpired  EventType = "SESSION_EXPIRED"
)

// EventDataKey used to pass data into the event data
type EventDataKey string

// set of supported event data keys
const (
	EventDataKeyError EventDataKey = "err"
)

func (e event) err() error {
	for _, d := range e.data {
		if d.Key != EventDataKeyError {
			continue
		}
		if err, ok := d.Value.(error); ok {
			return err
		}
	}
	return nil
}
