package post

import (
	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldID = "id"
)

type postInputs struct {
	ID string
}

func (i *postInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.ID != "" {
		return nil
	}
	return ui.Ask(i, &survey.Question{
		Name:     inputFieldID,
		Prompt:   &survey.Input{Message: "Post ID"},
		Validate: survey.Required,
	})
}
