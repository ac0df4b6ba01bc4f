package terminal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iancoleman/orderedmap"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelDebug LogLevel = "debug"
)

var (
	allLogLevels = []LogLevel{LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelDebug}

	textLogFormat = func() string {
		var longest int
		for _, level := range allLogLevels {
			if len(level) > longest {
				longest = len(level)
			}
		}
		return fmt.Sprintf("%%s UTC %%-%ds %%s", longest)
	}()
)

// LogData produces the log data
type LogData interface {
	Message() (string, error)
	Payload() ([]string, map[string]interface{}, error)
}

// Log is a terminal log
type Log struct {
	Level LogLevel
	Time  time.Time
	Data  LogData
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewDebugLog creates a new debug log with a text message
func NewDebugLog(format string, args ...interface{}) Log {
	return newLog(LogLevelDebug, newTextMessage(format, args...))
}

// NewWarningLog creates a new warning log with a text message
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, newTextMessage(format, args...))
}

// NewJSONLog creates a new log with a JSON document
func NewJSONLog(data interface{}) Log {
	return newLog(LogLevelInfo, jsonDocument{data})
}

// NewTitledJSONLog creates a new log with a titled JSON document
func NewTitledJSONLog(title string, data interface{}) Log {
	return newLog(LogLevelInfo, titledJSONDocument{title, jsonDocument{data}})
}

// NewTableLog creates a new log with a table
func NewTableLog(message string, headers []string, data ...map[string]interface{}) Log {
	return newLog(LogLevelInfo, newTable(message, headers, data))
}

// NewListLog creates a new log with a list
func NewListLog(message string, data ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, data))
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

// set of follow up log messages
const (
	MsgSuggestedCommands = "Try running instead"
	MsgReferenceLinks    = "Refer to the following links for more information"
)

// NewFollowupLog creates a new debug log with a list of follow up items
func NewFollowupLog(message string, items ...interface{}) Log {
	return newLog(LogLevelDebug, newList(message, items))
}

func newLog(level LogLevel, data LogData) Log {
	return Log{level, time.Now(), data}
}

// Print produces the log output based on the specified format
func (l Log) Print(outputFormat OutputFormat) (string, error) {
	switch outputFormat {
	case OutputFormatText:
		return l.textOutput()
	case OutputFormatJSON:
		return l.jsonOutput()
	default:
		return "", fmt.Errorf("unsupported output format type: %s", outputFormat)
	}
}

func (l Log) textOutput() (string, error) {
	message, err := l.Data.Message()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		textLogFormat,
		l.Time.In(time.UTC).Format("15:04:05"),
		strings.ToUpper(string(l.Level)),
		message,
	), nil
}

const (
	logFieldLevel = "level"
	logFieldTime  = "time"
)

func (l Log) jsonOutput() (string, error) {
	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}

	out := orderedmap.New()
	out.Set(logFieldTime, l.Time.In(time.UTC))
	out.Set(logFieldLevel, l.Level)
	for _, key := range keys {
		out.Set(key, payload[key])
	}

	output, err := json.Marshal(out)
	return string(output), err
}
