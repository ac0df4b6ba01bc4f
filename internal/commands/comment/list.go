package comment

import (
	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"
	"github.com/cercle-social/cercle-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

// CommandList is the `comment list` command
type CommandList struct {
	inputs inputs
}

// NewCommandList creates a new `comment list` command
func NewCommandList() *CommandList {
	return &CommandList{newPostInputs(false)}
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ParentID, flagPost, flagPostShort, "", flagPostUsage)
}

// Inputs is the command inputs
func (cmd *CommandList) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	comments, err := clients.Cercle.Comments(cmd.inputs.ParentID)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		ui.Print(terminal.NewTextLog("No comments on post %s yet", cmd.inputs.ParentID))
		return nil
	}

	ui.Print(terminal.NewTableLog(countMessage(len(comments), "comment", "comments"), commentHeaders, commentRows(comments)...))
	ui.Print(terminal.NewFollowupLog(
		"To read the replies to a comment run",
		flags.Command(cli.CommandLine("comment replies"), flags.Arg{Name: flagComment, Value: comments[0].ID}),
	))
	return nil
}

// CommandReplies is the `comment replies` command
type CommandReplies struct {
	inputs inputs
}

// NewCommandReplies creates a new `comment replies` command
func NewCommandReplies() *CommandReplies {
	return &CommandReplies{newCommentInputs(false)}
}

// Flags is the command flags
func (cmd *CommandReplies) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ParentID, flagComment, flagCommentShort, "", flagCommentUsage)
}

// Inputs is the command inputs
func (cmd *CommandReplies) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandReplies) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	replies, err := clients.Cercle.Replies(cmd.inputs.ParentID)
	if err != nil {
		return err
	}

	if len(replies) == 0 {
		ui.Print(terminal.NewTextLog("No replies to comment %s yet", cmd.inputs.ParentID))
		return nil
	}

	ui.Print(terminal.NewTableLog(countMessage(len(replies), "reply", "replies"), commentHeaders, commentRows(replies)...))
	return nil
}
