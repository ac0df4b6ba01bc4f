package post

import (
	"fmt"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandLike is the `post like` command
type CommandLike struct {
	inputs postInputs
}

// Flags is the command flags
func (cmd *CommandLike) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ID, flagID, flagIDShort, "", flagIDUsage)
}

// Inputs is the command inputs
func (cmd *CommandLike) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandLike) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	post, err := clients.Cercle.LikePost(cmd.inputs.ID)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Liked post %s (%s)", post.ID, likes(post.LikesCount)))
	return nil
}

// CommandUnlike is the `post unlike` command
type CommandUnlike struct {
	inputs postInputs
}

// Flags is the command flags
func (cmd *CommandUnlike) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ID, flagID, flagIDShort, "", flagIDUsage)
}

// Inputs is the command inputs
func (cmd *CommandUnlike) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUnlike) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	post, err := clients.Cercle.UnlikePost(cmd.inputs.ID)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Unliked post %s (%s)", post.ID, likes(post.LikesCount)))
	return nil
}

func likes(n int) string {
	if n == 1 {
		return "1 like"
	}
	return fmt.Sprintf("%d likes", n)
}
