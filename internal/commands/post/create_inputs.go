package post

import (
	"fmt"
	"os"
	"strings"

	"github.com/cercle-social/cercle-cli/internal/cli/user"
	"github.com/cercle-social/cercle-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldContent = "content"

	maxContentLength = 500
)

type createInputs struct {
	Content string
	Image   string
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Content == "" && i.Image == "" {
		if err := ui.Ask(i, &survey.Question{
			Name:     inputFieldContent,
			Prompt:   &survey.Input{Message: "What's on your mind?"},
			Validate: survey.ComposeValidators(survey.Required, survey.MaxLength(maxContentLength)),
		}); err != nil {
			return err
		}
	}

	i.Content = strings.TrimSpace(i.Content)
	if i.Content == "" && i.Image == "" {
		return errEmptyPost
	}
	if len([]rune(i.Content)) > maxContentLength {
		return fmt.Errorf("post content must be at most %d characters", maxContentLength)
	}

	if i.Image != "" {
		info, err := os.Stat(i.Image)
		if err != nil {
			return fmt.Errorf("failed to find image: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("image must be a file: %s", i.Image)
		}
	}
	return nil
}
