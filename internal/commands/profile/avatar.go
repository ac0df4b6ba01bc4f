package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

var avatarExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// CommandAvatar is the `profile avatar` command
type CommandAvatar struct {
	inputs avatarInputs
}

type avatarInputs struct {
	File string
}

func (i *avatarInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.File == "" {
		if err := ui.Ask(i, &survey.Question{
			Name:     "file",
			Prompt:   &survey.Input{Message: "Path to your new avatar"},
			Validate: survey.Required,
		}); err != nil {
			return err
		}
	}

	if !avatarExtensions[strings.ToLower(filepath.Ext(i.File))] {
		return fmt.Errorf("unsupported avatar image: %s", filepath.Base(i.File))
	}
	return nil
}

// Flags is the command flags
func (cmd *CommandAvatar) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.File, flagFile, flagFileShort, "", flagFileUsage)
}

// Inputs is the command inputs
func (cmd *CommandAvatar) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAvatar) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	f, err := os.Open(cmd.inputs.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("avatar image not found: %s", cmd.inputs.File)
		}
		return err
	}
	defer f.Close()

	s := ui.Spinner("Uploading avatar...", terminal.SpinnerOptions{})
	s.Start()
	u, err := clients.Cercle.UploadAvatar(filepath.Base(cmd.inputs.File), f)
	s.Stop()
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated your avatar: %s", u.AvatarURL))
	return nil
}
