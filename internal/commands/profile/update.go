package profile

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandUpdate is the `profile update` command
type CommandUpdate struct {
	inputs updateInputs
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Username, flagUsername, "", flagUsernameUsage)
	fs.StringVar(&cmd.inputs.DisplayName, flagDisplayName, "", flagDisplayNameUsage)
	fs.StringVar(&cmd.inputs.Bio, flagBio, "", flagBioUsage)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	u, err := clients.Cercle.UpdateProfile(cmd.inputs.ProfileUpdate)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated the profile of %s", u.Username))
	return nil
}
