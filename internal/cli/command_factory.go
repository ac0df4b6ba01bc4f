package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/telemetry"
	"github.com/cercle-social/cercle-cli/internal/terminal"
	"github.com/cercle-social/cercle-cli/internal/utils/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	msgSessionExpired = "Your session has expired, log in again to continue"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *user.Profile
	sessionStore     auth.Store
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         *os.File
	outWriter        *os.File
	errWriter        *os.File
	errLogger        *log.Logger
	telemetryService *telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() *CommandFactory {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := user.NewDefaultProfile()
	if profileErr != nil {
		errLogger.Fatal(profileErr)
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: errLogger,
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
			factory.ensureUI()
			c.SetIn(factory.inReader)
			c.SetOut(factory.outWriter)
			c.SetErr(factory.errWriter)

			if err := factory.prepare(display); err != nil {
				factory.ui.Print(terminal.NewErrorLog(err))
				os.Exit(1)
			}
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, err)
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			return factory.run(display, command.Command)
		}
	}

	return &cmd
}

// prepare resolves the profile flags and starts the services used by a command
func (factory *CommandFactory) prepare(display string) error {
	if err := factory.profile.ResolveFlags(); err != nil {
		return err
	}

	store, err := factory.profile.SessionStore()
	if err != nil {
		return err
	}
	factory.sessionStore = store

	storedUser, _ := auth.StoredUser(store)

	factory.telemetryService = telemetry.NewService(telemetry.Config{
		Mode:      factory.profile.Flags.TelemetryMode,
		SentryDSN: factory.profile.SentryDSN(),
		UserID:    storedUser.ID,
		Command:   display,
		Version:   Version,
		Out:       factory.outWriter,
	})
	return nil
}

func (factory *CommandFactory) run(display string, command Command) error {
	factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

	if err := command.Handler(factory.profile, factory.ui, factory.clients()); err != nil {
		factory.telemetryService.TrackEvent(
			telemetry.EventTypeCommandError,
			telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
		)
		if cercle.IsAuthError(err) {
			err = errSessionExpired{err}
		}
		return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
	}

	factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
	return nil
}

func (factory *CommandFactory) clients() Clients {
	return Clients{
		Cercle: cercle.NewAuthClient(
			factory.profile.Flags.BaseURL,
			factory.sessionStore,
			cercle.ClientOptions{
				RefreshTimeout:   factory.profile.RefreshTimeout(),
				OnSessionExpired: factory.onSessionExpired,
				UserAgent:        UserAgent(),
			},
		),
	}
}

func (factory *CommandFactory) onSessionExpired(err error) {
	factory.telemetryService.TrackEvent(
		telemetry.EventTypeSessionExpired,
		telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
	)
	factory.ui.Print(terminal.NewWarningLog(msgSessionExpired))
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if closer, ok := factory.sessionStore.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			factory.errLogger.Println(err)
		}
	}

	if factory.uiConfig.OutputTarget != "" {
		factory.outWriter.Close()
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Println(err)
			return 1
		}

		factory.ui.Print(errorLogs(err)...)
		return 1
	}
	return 0
}

// errorLogs produces the error log along with any follow up suggestions
func errorLogs(err error) []terminal.Log {
	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, items(suggester.SuggestedCommands())...))
	}

	var referrer LinkReferrer
	if errors.As(err, &referrer) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, items(referrer.ReferenceLinks())...))
	}

	return logs
}

func items(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.Var(&factory.profile.Flags.TelemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	flags.MarkHidden(fs, user.FlagBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	fmt.Println(cmd.UsageString())
}
