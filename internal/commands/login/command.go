package login

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := ConfirmSessionChange(ui, clients.Cercle, cmd.inputs.Email)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	u, err := clients.Cercle.Login(cercle.Credentials{Email: cmd.inputs.Email, Password: cmd.inputs.Password})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged in as %s", u.Username))
	if !u.OnboardingCompleted {
		ui.Print(terminal.NewFollowupLog("Finish setting up your account", cli.CommandLine("onboarding")))
	}
	return nil
}

// ConfirmSessionChange asks the user to confirm replacing the session of
// a different logged in user
func ConfirmSessionChange(ui terminal.UI, client cercle.Client, email string) (bool, error) {
	if !client.IsAuthenticated() {
		return true, nil
	}

	existing, ok := client.StoredUser()
	if !ok || existing.Email == email {
		return true, nil
	}

	return ui.Confirm(
		"This action will terminate the existing session for user: %s (%s), would you like to proceed?",
		existing.Username,
		existing.RedactedEmail(),
	)
}
