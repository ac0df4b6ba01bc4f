package profile

import (
	"github.com/cercle-social/cercle-cli/internal/auth"
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandShow is the `profile show` command
type CommandShow struct {
	userID string
}

// Flags is the command flags
func (cmd *CommandShow) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.userID, flagUser, flagUserShort, "", flagUserUsage)
}

// Handler is the command handler
func (cmd *CommandShow) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	var u auth.User
	var err error
	if cmd.userID == "" {
		u, err = clients.Cercle.CurrentUser()
	} else {
		u, err = clients.Cercle.UserProfile(cmd.userID)
	}
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTitledJSONLog(profileTitle(u), newProfileOutput(u)))
	return nil
}
