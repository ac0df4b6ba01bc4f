package comment

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandAdd is the `comment add` command
type CommandAdd struct {
	inputs inputs
}

// NewCommandAdd creates a new `comment add` command
func NewCommandAdd() *CommandAdd {
	return &CommandAdd{newPostInputs(true)}
}

// Flags is the command flags
func (cmd *CommandAdd) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ParentID, flagPost, flagPostShort, "", flagPostUsage)
	fs.StringVar(&cmd.inputs.Content, flagContent, "", flagContentUsage)
}

// Inputs is the command inputs
func (cmd *CommandAdd) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAdd) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	comment, err := clients.Cercle.CreateComment(cmd.inputs.ParentID, cmd.inputs.Content)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully commented on post %s: %s", cmd.inputs.ParentID, comment.ID))
	return nil
}

// CommandReply is the `comment reply` command
type CommandReply struct {
	inputs inputs
}

// NewCommandReply creates a new `comment reply` command
func NewCommandReply() *CommandReply {
	return &CommandReply{newCommentInputs(true)}
}

// Flags is the command flags
func (cmd *CommandReply) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ParentID, flagComment, flagCommentShort, "", flagCommentUsage)
	fs.StringVar(&cmd.inputs.Content, flagContent, "", flagContentUsage)
}

// Inputs is the command inputs
func (cmd *CommandReply) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandReply) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	reply, err := clients.Cercle.CreateReply(cmd.inputs.ParentID, cmd.inputs.Content)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully replied to comment %s: %s", cmd.inputs.ParentID, reply.ID))
	return nil
}
