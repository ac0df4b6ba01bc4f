package terminal

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestLogConstructor(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(jsonDocument{}), cmp.AllowUnexported(jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(titledJSONDocument{}), cmp.AllowUnexported(titledJSONDocument{}, jsonDocument{}))
	assert.RegisterOpts(reflect.TypeOf(list{}), cmp.AllowUnexported(list{}))

	// held in a variable so vet does not treat the literal % as a format verb
	percentMessage := "100% done"

	for _, tc := range []struct {
		ctor          string
		log           Log
		expectedLevel LogLevel
		expectedData  LogData
	}{
		{
			ctor:          "NewTextLog",
			log:           NewTextLog("posted %d times", 3),
			expectedLevel: LogLevelInfo,
			expectedData:  textMessage("posted 3 times"),
		},
		{
			ctor:          "NewWarningLog",
			log:           NewWarningLog("session expired"),
			expectedLevel: LogLevelWarn,
			expectedData:  textMessage("session expired"),
		},
		{
			ctor:          "NewDebugLog",
			log:           NewDebugLog(percentMessage),
			expectedLevel: LogLevelDebug,
			expectedData:  textMessage("100% done"),
		},
		{
			ctor:          "NewJSONLog",
			log:           NewJSONLog(map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  jsonDocument{map[string]interface{}{"a": "ayyy"}},
		},
		{
			ctor:          "NewTitledJSONLog",
			log:           NewTitledJSONLog("Test Title", map[string]interface{}{"a": "ayyy"}),
			expectedLevel: LogLevelInfo,
			expectedData:  titledJSONDocument{"Test Title", jsonDocument{map[string]interface{}{"a": "ayyy"}}},
		},
		{
			ctor:          "NewFollowupLog",
			log:           NewFollowupLog(MsgSuggestedCommands, "cercle login"),
			expectedLevel: LogLevelDebug,
			expectedData:  list{MsgSuggestedCommands, []string{"cercle login"}},
		},
	} {
		t.Run(fmt.Sprintf("%s should create the expected log", tc.ctor), func(t *testing.T) {
			assert.True(t, !tc.log.Time.IsZero(), "log must have a timestamp")
			assert.Equal(t, tc.expectedLevel, tc.log.Level)
			assert.Equal(t, tc.expectedData, tc.log.Data)
		})
	}

	t.Run("NewErrorLog should create an error log", func(t *testing.T) {
		log := NewErrorLog(errors.New("oh noz"))
		assert.Equal(t, LogLevelError, log.Level)

		message, err := log.Data.Message()
		assert.Nil(t, err)
		assert.Equal(t, "oh noz", message)
	})
}

func TestLogMessage(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	for _, tc := range []struct {
		level           LogLevel
		data            LogData
		expectedOutputs map[OutputFormat]string
	}{
		{
			level: LogLevelInfo,
			data:  textMessage("this is a test log"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC INFO  this is a test log",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","message":"this is a test log"}`,
			},
		},
		{
			level: LogLevelWarn,
			data:  textMessage("session expired"),
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC WARN  session expired",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"warn","message":"session expired"}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  jsonDocument{map[string]interface{}{"a": true, "b": 1, "c": "sea"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC INFO  {
  "a": true,
  "b": 1,
  "c": "sea"
}`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","doc":{"a":true,"b":1,"c":"sea"}}`,
			},
		},
		{
			level: LogLevelInfo,
			data:  titledJSONDocument{"Test Title", jsonDocument{map[string]interface{}{"a": true}}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC INFO  Test Title
{
  "a": true
}`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"info","title":"Test Title","doc":{"a":true}}`,
			},
		},
		{
			level: LogLevelDebug,
			data:  list{MsgSuggestedCommands, []string{"cercle login", "cercle register"}},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: `07:54:00 UTC DEBUG Try running instead
  cercle login
  cercle register`,
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"debug","message":"Try running instead","data":["cercle login","cercle register"]}`,
			},
		},
		{
			level: LogLevelError,
			data:  errorMessage{errors.New("something bad happened")},
			expectedOutputs: map[OutputFormat]string{
				OutputFormatText: "07:54:00 UTC ERROR something bad happened",
				OutputFormatJSON: `{"time":"1989-06-22T07:54:00Z","level":"error","err":"something bad happened"}`,
			},
		},
	} {
		for outputFormat, expectedOutput := range tc.expectedOutputs {
			t.Run(fmt.Sprintf("with %s output format, %T should print the expected output", outputFormat, tc.data), func(t *testing.T) {
				log := Log{
					tc.level,
					time.Date(1989, 6, 22, 7, 54, 0, 0, time.UTC),
					tc.data,
				}

				output, err := log.Print(outputFormat)
				assert.Nil(t, err)
				assert.Equal(t, expectedOutput, output)
			})
		}
	}

	t.Run("should return an error with an unknown output format", func(t *testing.T) {
		log := Log{LogLevelInfo, time.Now(), textMessage("this is a test log")}

		_, err := log.Print(OutputFormat("eggcorn"))
		assert.Equal(t, errors.New("unsupported output format type: eggcorn"), err)
	})

	for _, tc := range []OutputFormat{OutputFormatText, OutputFormatJSON} {
		t.Run(fmt.Sprintf("should propagate an error that occurs while producing %s output", tc), func(t *testing.T) {
			failLog := Log{LogLevelInfo, time.Now(), failMessage{}}
			_, err := failLog.Print(tc)
			assert.Equal(t, errFailMessage, err)
		})
	}
}

var errFailMessage = errors.New("something bad happened")

type failMessage struct{}

func (f failMessage) Message() (string, error) {
	return "", errFailMessage
}

func (f failMessage) Payload() ([]string, map[string]interface{}, error) {
	return nil, nil, errFailMessage
}
