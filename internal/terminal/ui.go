package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(answer interface{}, prompt survey.Prompt) error
	Ask(answer interface{}, questions ...*survey.Question) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
	Spinner(message string, opts SpinnerOptions) Spinner
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in terminal.FileReader, out, err io.Writer) UI {
	color.NoColor = config.DisableColors || config.OutputFormat == OutputFormatJSON

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     terminal.FileReader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	return survey.AskOne(prompt, answer, ui.withStdio())
}

func (ui *ui) Ask(answer interface{}, questions ...*survey.Question) error {
	return survey.Ask(questions, answer, ui.withStdio())
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			fmt.Fprintf(ui.err, "failed to print %s log: %s\n", log.Level, err)
			continue
		}

		writer := ui.out
		if log.Level == LogLevelError {
			writer = ui.err
		}
		fmt.Fprintln(writer, output)
	}
}

// Spinner returns a spinner which animates only on an interactive text output
func (ui *ui) Spinner(message string, opts SpinnerOptions) Spinner {
	if ui.config.OutputFormat != OutputFormatText || ui.config.OutputTarget != "" {
		return noopSpinner{}
	}
	if _, ok := ui.out.(*os.File); !ok {
		return noopSpinner{}
	}
	return newUISpinner(ui.out, message, opts)
}

func (ui *ui) withStdio() survey.AskOpt {
	out, ok := ui.out.(terminal.FileWriter)
	if !ok {
		out = noopFdWriter{ui.out}
	}
	return survey.WithStdio(ui.in, out, ui.err)
}

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr {
	return 0
}
