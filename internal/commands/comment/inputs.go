package comment

import (
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldParentID = "parentid"
	inputFieldContent  = "content"
)

// inputs identify the post or comment being discussed
// and, when writing, the text of the new comment
type inputs struct {
	ParentID string
	Content  string

	parentPrompt string
	writes       bool
}

func newPostInputs(writes bool) inputs {
	return inputs{parentPrompt: "Post ID", writes: writes}
}

func newCommentInputs(writes bool) inputs {
	return inputs{parentPrompt: "Comment ID", writes: writes}
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.ParentID == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldParentID,
			Prompt:   &survey.Input{Message: i.parentPrompt},
			Validate: survey.Required,
		})
	}

	if i.writes && strings.TrimSpace(i.Content) == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldContent,
			Prompt:   &survey.Input{Message: "Comment"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}

	i.Content = strings.TrimSpace(i.Content)
	return nil
}
