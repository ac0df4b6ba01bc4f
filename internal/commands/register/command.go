package register

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/commands/login"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.DisplayName, flagDisplayName, "", flagDisplayNameUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := login.ConfirmSessionChange(ui, clients.Cercle, cmd.inputs.Email)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	u, err := clients.Cercle.Register(cercle.Registration{
		Username:    cmd.inputs.Username,
		Email:       cmd.inputs.Email,
		Password:    cmd.inputs.Password,
		DisplayName: cmd.inputs.DisplayName,
	})
	if err != nil {
		return err
	}

	ui.Print(
		terminal.NewTextLog("Successfully registered as %s", u.Username),
		terminal.NewFollowupLog("Finish setting up your account", cli.CommandLine("onboarding")),
	)
	return nil
}
