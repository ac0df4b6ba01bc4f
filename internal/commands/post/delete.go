package post

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `post delete` command
type CommandDelete struct {
	inputs postInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ID, flagID, flagIDShort, "", flagIDUsage)
}

// Inputs is the command inputs
func (cmd *CommandDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := ui.Confirm("Are you sure you want to delete post %s? This cannot be undone", cmd.inputs.ID)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Cercle.DeletePost(cmd.inputs.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully deleted post: %s", cmd.inputs.ID))
	return nil
}
