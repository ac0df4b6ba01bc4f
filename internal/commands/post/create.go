package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cercle-social/cercle-cli/internal/cli"
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/cloud/cercle"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/spf13/pflag"
)

var errEmptyPost = errors.New("a post needs content or an image")

// CommandCreate is the `post create` command
type CommandCreate struct {
	inputs createInputs
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Content, flagContent, flagContentShort, "", flagContentUsage)
	fs.StringVar(&cmd.inputs.Image, flagImage, "", flagImageUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	newPost := cercle.NewPost{Content: cmd.inputs.Content}

	if cmd.inputs.Image != "" {
		f, err := os.Open(cmd.inputs.Image)
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer f.Close()

		newPost.ImageName = filepath.Base(cmd.inputs.Image)
		newPost.Image = f
	}

	s := ui.Spinner("Publishing post...", terminal.SpinnerOptions{})
	s.Start()
	post, err := clients.Cercle.CreatePost(newPost)
	s.Stop()
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully published post: %s", post.ID))
	return nil
}
